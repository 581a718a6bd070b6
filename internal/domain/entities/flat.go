package entities

import "strings"

// FlatMap is an ordered mapping from dotted key to leaf value.
type FlatMap struct {
	keys   []string
	values map[string]Leaf
}

func NewFlatMap() *FlatMap {
	return &FlatMap{values: make(map[string]Leaf)}
}

// Set stores a text value under key, an existing key keeps its position.
func (m *FlatMap) Set(key, value string) {
	m.SetLeaf(key, Leaf{Value: value})
}

func (m *FlatMap) SetLeaf(key string, leaf Leaf) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = leaf
}

func (m *FlatMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v.Value, ok
}

func (m *FlatMap) Leaf(key string) (Leaf, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *FlatMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Union adds the entries of other whose keys are not present yet.
func (m *FlatMap) Union(other *FlatMap) {
	for _, k := range other.keys {
		if !m.Has(k) {
			m.SetLeaf(k, other.values[k])
		}
	}
}

// Keys returns the keys in insertion order.
func (m *FlatMap) Keys() []string {
	return m.keys
}

func (m *FlatMap) Len() int {
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *FlatMap) Each(fn func(key, value string)) {
	for _, k := range m.keys {
		fn(k, m.values[k].Value)
	}
}

// Filter returns a new map with the entries for which keep returns true.
func (m *FlatMap) Filter(keep func(key string, leaf Leaf) bool) *FlatMap {
	out := NewFlatMap()
	for _, k := range m.keys {
		if leaf := m.values[k]; keep(k, leaf) {
			out.SetLeaf(k, leaf)
		}
	}
	return out
}

// IsBlank reports whether text is empty or only whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// FilterEmpty keeps the entries of m whose value is empty (see Leaf.Empty).
func FilterEmpty(m *FlatMap) *FlatMap {
	return m.Filter(func(_ string, leaf Leaf) bool { return leaf.Empty() })
}
