package util

import mapset "github.com/deckarep/golang-set/v2"

// SetMap maps each key to a set of values.
type SetMap[K, V comparable] map[K]mapset.Set[V]

func NewSetMap[K, V comparable](keys ...K) SetMap[K, V] {
	m := make(SetMap[K, V])
	for _, key := range keys {
		m[key] = mapset.NewSet[V]()
	}
	return m
}

// Add inserts value into the set for key, creating the set if needed.
func (m SetMap[K, V]) Add(key K, value V) {
	if _, ok := m[key]; !ok {
		m[key] = mapset.NewSet[V]()
	}
	m[key].Add(value)
}

func (m SetMap[K, V]) Contains(key K, value V) bool {
	s, ok := m[key]
	return ok && s.Contains(value)
}
