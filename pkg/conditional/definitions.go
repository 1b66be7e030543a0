package conditional

import "sort"

// Definitions is the set of condition names that count as true
type Definitions map[string]struct{}

// NewDefinitions builds a set from names
func NewDefinitions(names ...string) Definitions {
	d := make(Definitions, len(names))
	for _, n := range names {
		d[n] = struct{}{}
	}
	return d
}

// Has reports whether name is defined
func (d Definitions) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Names returns the defined names in sorted order
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for n := range d {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets hold the same names
func (d Definitions) Equal(other Definitions) bool {
	if len(d) != len(other) {
		return false
	}
	for n := range d {
		if !other.Has(n) {
			return false
		}
	}
	return true
}
