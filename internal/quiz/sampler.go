package quiz

import "fmt"

// Set is a set of structure names.
type Set map[string]struct{}

// NewSet builds a set from the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// InsufficientPoolError is returned when the pool minus the excluded names
// holds fewer candidates than requested.
type InsufficientPoolError struct {
	Need      int
	Available int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("insufficient distractor pool: need %d, have %d", e.Need, e.Available)
}

// Sample draws count distinct names from pool \ exclude, uniformly and
// without replacement. It never returns fewer than count names.
func Sample(r Rand, pool []string, exclude Set, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("sample: negative count %d", count)
	}

	seen := make(Set, len(pool))
	candidates := make([]string, 0, len(pool))
	for _, name := range pool {
		if exclude.Contains(name) || seen.Contains(name) {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}

	if len(candidates) < count {
		return nil, &InsufficientPoolError{Need: count, Available: len(candidates)}
	}

	// Partial Fisher-Yates: the first count slots end up uniformly drawn.
	for i := 0; i < count; i++ {
		j := i + r.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:count:count], nil
}
