// Copyright 2025 The ninjascan Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a B-tree-backed interval map.
//
// It is used by the diagnostic renderer to group annotated source spans by
// the lines they touch. Intervals may overlap freely.
package interval

import (
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is an interval in a [Map] together with its associated value.
// Both endpoints are inclusive.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains returns whether this entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Map is a collection of possibly-overlapping intervals, ordered by their
// start point. The zero value is not usable; call [New].
type Map[K Endpoint, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
	seq  int
}

// entry disambiguates intervals with identical endpoints, so that the
// underlying B-tree's set semantics do not drop duplicates.
type entry[K Endpoint, V any] struct {
	Entry[K, V]
	seq int
}

// New constructs an empty interval map.
func New[K Endpoint, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: btree.NewBTreeG(func(a, b entry[K, V]) bool {
			switch {
			case a.Start != b.Start:
				return a.Start < b.Start
			case a.End != b.End:
				return a.End < b.End
			default:
				return a.seq < b.seq
			}
		}),
	}
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Insert adds the interval [start, end] to the map. Inserting end < start
// inserts the empty interval [start, start].
func (m *Map[K, V]) Insert(start, end K, value V) {
	if end < start {
		end = start
	}
	m.seq++
	m.tree.Set(entry[K, V]{
		Entry: Entry[K, V]{Start: start, End: end, Value: value},
		seq:   m.seq,
	})
}

// Bounds returns the smallest interval containing every interval in the map.
// Returns ok == false if the map is empty.
func (m *Map[K, V]) Bounds() (start, end K, ok bool) {
	first, ok := m.tree.Min()
	if !ok {
		return start, end, false
	}
	start = first.Start

	end = first.End
	m.tree.Scan(func(e entry[K, V]) bool {
		end = max(end, e.End)
		return true
	})
	return start, end, true
}

// Overlapping returns the intervals that intersect [start, end], in order of
// their start points.
//
// Entries whose start point exceeds end are pruned by the tree order; entries
// that begin earlier but have already ended are filtered as they are seen.
func (m *Map[K, V]) Overlapping(start, end K) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		m.tree.Scan(func(e entry[K, V]) bool {
			if e.Start > end {
				return false
			}
			if e.End < start {
				return true
			}
			return yield(e.Entry)
		})
	}
}

// All returns every interval in the map, in order of start points.
func (m *Map[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		m.tree.Scan(func(e entry[K, V]) bool {
			return yield(e.Entry)
		})
	}
}
