// SPDX-License-Identifier: MIT
// Package: eqpaths/core
//
// edgeset.go - EdgeSet, a set of canonical edge keys used for exclusions
// and for the edges of a path.

package core

import "sort"

// EdgeSet is a set of canonical edge keys. The zero value is an empty set
// that is safe to read; use NewEdgeSet (or Add on a made set) before writing.
type EdgeSet map[EdgeKey]struct{}

// NewEdgeSet returns a set holding keys.
func NewEdgeSet(keys ...EdgeKey) EdgeSet {
	s := make(EdgeSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}

	return s
}

// Add inserts k.
func (s EdgeSet) Add(k EdgeKey) { s[k] = struct{}{} }

// Has reports whether k is in the set. Safe on a nil set.
func (s EdgeSet) Has(k EdgeKey) bool {
	_, ok := s[k]

	return ok
}

// Len returns the number of keys.
func (s EdgeSet) Len() int { return len(s) }

// Merge adds every key of o to s.
func (s EdgeSet) Merge(o EdgeSet) {
	for k := range o {
		s[k] = struct{}{}
	}
}

// Intersects reports whether s and o share at least one key.
func (s EdgeSet) Intersects(o EdgeSet) bool {
	small, large := s, o
	if len(small) > len(large) {
		small, large = large, small
	}
	for k := range small {
		if large.Has(k) {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of s.
func (s EdgeSet) Clone() EdgeSet {
	c := make(EdgeSet, len(s))
	c.Merge(s)

	return c
}

// Keys returns the keys sorted by (Lo, Hi).
func (s EdgeSet) Keys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}
