package expr

import (
	"sort"
	"strings"
)

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Expr
	Value Expr
}

// Map is an associative container keyed by arbitrary expressions. Entries
// are kept sorted in the canonical expression order, which makes printing
// and hashing deterministic.
type Map struct {
	entries []MapEntry
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{}
}

// MapFromPairs builds a map from an even-length flat key/value slice,
// failing with DuplicateKey when two equal keys appear. This is the literal
// constructor the reader uses.
func MapFromPairs(exprs []Expr) (*Map, error) {
	m := NewMap()
	for i := 0; i+1 < len(exprs); i += 2 {
		k, v := exprs[i], exprs[i+1]
		if _, ok := m.Get(k); ok {
			return nil, &DuplicateKeyError{Key: k}
		}
		m.Set(k, v)
	}
	return m, nil
}

func (*Map) Order() Order { return OrderMap }

func (m *Map) String() string {
	var parts []string
	for _, e := range m.entries {
		parts = append(parts, e.Key.String(), e.Value.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Equal compares maps as unordered key sets with equal values.
func (m *Map) Equal(other Expr) bool {
	o, ok := other.(*Map)
	if !ok || len(m.entries) != len(o.entries) {
		return false
	}
	for _, e := range m.entries {
		v, ok := o.Get(e.Key)
		if !ok || !e.Value.Equal(v) {
			return false
		}
	}
	return true
}

func (m *Map) Hash() uint64 {
	var h uint64
	for _, e := range m.entries {
		h = mixHash(h, e.Key)
		h = mixHash(h, e.Value)
	}
	return h + uint64(OrderMap)
}

// Get looks a key up by structural equality.
func (m *Map) Get(key Expr) (Expr, bool) {
	for _, e := range m.entries {
		if e.Key.Equal(key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Set inserts or replaces a binding, keeping entries in canonical order.
func (m *Map) Set(key, val Expr) {
	for i, e := range m.entries {
		if e.Key.Equal(key) {
			m.entries[i].Value = val
			return
		}
	}
	at := sort.Search(len(m.entries), func(i int) bool {
		return Less(key, m.entries[i].Key)
	})
	m.entries = append(m.entries, MapEntry{})
	copy(m.entries[at+1:], m.entries[at:])
	m.entries[at] = MapEntry{Key: key, Value: val}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns the entries in canonical key order. The slice is shared;
// callers must not mutate it.
func (m *Map) Entries() []MapEntry { return m.entries }
