// Copyright 2024 Ethan Tran
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package refset provides a reference ordered integer multiset backed by
// github.com/google/btree. Tests and benchmarks cross-check the core
// container against it; it is not part of the public surface.
package refset

import "github.com/google/btree"

// entry pairs a key with an insertion sequence number so that equal keys
// remain distinct inside the underlying tree, which keeps set semantics.
type entry struct {
	key int
	seq uint64
}

// Set is an ordered integer multiset.
type Set struct {
	tree *btree.BTreeG[entry]
	seq  uint64
}

// New creates a new empty multiset.
func New() *Set {
	return &Set{
		tree: btree.NewG(32, func(a, b entry) bool {
			if a.key == b.key {
				return a.seq < b.seq
			}
			return a.key < b.key
		}),
	}
}

// Insert adds another occurrence of key to the set.
func (s *Set) Insert(key int) {
	s.seq++
	s.tree.ReplaceOrInsert(entry{key: key, seq: s.seq})
}

// Remove removes one occurrence of key, reporting whether one was present.
func (s *Set) Remove(key int) bool {
	victim, ok := s.first(key)
	if !ok {
		return false
	}
	_, ok = s.tree.Delete(victim)
	return ok
}

// Has reports whether at least one occurrence of key is present.
func (s *Set) Has(key int) bool {
	_, ok := s.first(key)
	return ok
}

// first returns the earliest-inserted occurrence of key.
func (s *Set) first(key int) (out entry, ok bool) {
	s.tree.AscendGreaterOrEqual(entry{key: key}, func(e entry) bool {
		if e.key == key {
			out, ok = e, true
		}
		return false
	})
	return
}

// Len returns the number of occurrences in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Keys returns all occurrences as a sorted slice.
func (s *Set) Keys() []int {
	out := make([]int, 0, s.tree.Len())
	s.tree.Ascend(func(e entry) bool {
		out = append(out, e.key)
		return true
	})
	return out
}
