package achievements

// Set holds unlocked achievements. Entries are only ever added; Clear is
// the single way to drop them.
type Set map[ID]struct{}

// Has reports whether id is unlocked.
func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Add unlocks the given ids.
func (s Set) Add(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Clear removes every entry.
func (s Set) Clear() {
	clear(s)
}

// List returns the unlocked ids in display order.
func (s Set) List() []ID {
	var out []ID
	for _, id := range All() {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
