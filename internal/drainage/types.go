package drainage

import "slices"

// Organ is a named anatomical structure with one or more drainage routes.
type Organ struct {
	Key    string  `json:"key" yaml:"key"`
	Name   string  `json:"name" yaml:"name"`
	Routes []Route `json:"routes" yaml:"routes"`

	// CaseTemplate is a text/template narrative used by clinical cases.
	// Organs without one are never drawn for that mode.
	CaseTemplate string `json:"caseTemplate,omitempty" yaml:"caseTemplate,omitempty"`

	// CaseStation is the path index a clinical case asks for. Zero tests
	// the first drainage station; the large intestine uses 2.
	CaseStation int `json:"caseStation,omitempty" yaml:"caseStation,omitempty"`
}

// HasCase reports whether the organ takes part in clinical cases.
func (o Organ) HasCase() bool {
	return o.CaseTemplate != ""
}

// Route is one ordered path from an organ to its venous terminal.
type Route struct {
	Label string   `json:"label" yaml:"label"`
	Path  []string `json:"path" yaml:"path"`
}

// Origin returns the first structure of the path.
func (r Route) Origin() string {
	return r.Path[0]
}

// Terminal returns the last structure of the path.
func (r Route) Terminal() string {
	return r.Path[len(r.Path)-1]
}

// NodeSet is the sorted, de-duplicated set of structure names.
type NodeSet struct {
	names []string
	index map[string]struct{}
}

func newNodeSet(organs []Organ) NodeSet {
	index := make(map[string]struct{})
	for _, o := range organs {
		for _, r := range o.Routes {
			for _, step := range r.Path {
				index[step] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	slices.Sort(names)
	return NodeSet{names: names, index: index}
}

// Contains reports whether name occurs in any route.
func (s NodeSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of distinct structures.
func (s NodeSet) Len() int {
	return len(s.names)
}

// Names returns the structures in sorted order. The slice is shared and
// must not be modified.
func (s NodeSet) Names() []string {
	return s.names
}
