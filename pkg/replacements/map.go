// Package replacements holds the ordered placeholder map applied to the
// instruction file and to every instantiated template.
package replacements

import "strings"

const (
	// OpenMarker and CloseMarker wrap a key inside template text
	OpenMarker  = "[$$"
	CloseMarker = "$$]"
)

// Map is a string map that remembers insertion order. The zero value is
// ready to use.
type Map struct {
	keys   []string
	values map[string]string
}

// New builds a map from alternating key, value pairs. A trailing key with
// no value is ignored.
func New(pairs ...string) *Map {
	m := &Map{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Set stores value under key. A new key goes to the end; an existing key
// keeps its position.
func (m *Map) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetIfAbsent stores value only when key is not present yet and reports
// whether it did
func (m *Map) SetIfAbsent(key, value string) bool {
	if m.Has(key) {
		return false
	}
	m.Set(key, value)
	return true
}

// Get returns the value for key
func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len is the number of keys
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Clone returns an independent copy
func (m *Map) Clone() *Map {
	c := &Map{}
	if m == nil {
		return c
	}
	for _, k := range m.keys {
		c.Set(k, m.values[k])
	}
	return c
}

// Merge adds the entries of other whose keys are not present yet, in
// other's order. Existing values win.
func (m *Map) Merge(other *Map) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		m.SetIfAbsent(k, v)
	}
}

// Equal reports whether both maps hold the same entries in the same order
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if other.keys[i] != k || other.values[k] != m.values[k] {
			return false
		}
	}
	return true
}

// ToMap returns the entries as a plain map
func (m *Map) ToMap() map[string]string {
	out := make(map[string]string, m.Len())
	for _, k := range m.Keys() {
		out[k] = m.values[k]
	}
	return out
}

// Placeholder wraps key in the placeholder markers
func Placeholder(key string) string {
	return OpenMarker + key + CloseMarker
}

// Apply replaces every placeholder of every key in text. Keys are applied
// one after the other in insertion order, so a value may introduce a
// placeholder that a later key then replaces.
func (m *Map) Apply(text string) string {
	for _, k := range m.Keys() {
		text = strings.ReplaceAll(text, Placeholder(k), m.values[k])
	}
	return text
}

// ApplyLines is Apply over each line
func (m *Map) ApplyLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = m.Apply(l)
	}
	return out
}
