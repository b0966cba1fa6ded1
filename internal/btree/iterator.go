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

package btree

import "golang.org/x/exp/constraints"

// frame records a node on the descent path together with the index of the
// next key to yield at that node.
type frame[T constraints.Ordered] struct {
	node  *node[T]
	index int
}

// Iterator is a forward, single-pass cursor over the keys of a BTree in
// sorted order. It carries an explicit descent stack instead of recursing,
// so each step is amortized O(1).
//
// An Iterator is valid only while the tree structure is unchanged: Insert,
// Remove, Clear, and Move all invalidate every outstanding iterator, and
// using one afterwards is undefined. Separate iterators carry independent
// state and may be used by concurrent readers of an unchanging tree.
type Iterator[T constraints.Ordered] struct {
	stack []frame[T]
	key   T
	valid bool
}

// Iterator returns an iterator positioned at the smallest key of the tree.
// An iterator over an empty tree starts exhausted.
func (t *BTree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{stack: make([]frame[T], 0, 32)}
	if t.root != nil {
		it.pushLeftPath(t.root)
		it.Next()
	}
	return it
}

// Find returns an iterator positioned at an occurrence of the given key, or
// an exhausted iterator if the key is absent. With duplicates the occurrence
// is the one at the highest node where a match exists; advancing from it
// visits the remaining keys in sorted order.
func (t *BTree[T]) Find(key T) *Iterator[T] {
	it := &Iterator[T]{stack: make([]frame[T], 0, 32)}
	for n := t.root; n != nil; {
		i, found := n.keys.find(key)
		if found {
			it.stack = append(it.stack, frame[T]{node: n, index: i})
			it.yieldTop()
			return it
		}
		if n.leaf() {
			break
		}
		it.stack = append(it.stack, frame[T]{node: n, index: i})
		n = n.children[i]
	}
	it.stack = it.stack[:0]
	return it
}

// pushLeftPath pushes n and then each leftmost child down to a leaf.
func (it *Iterator[T]) pushLeftPath(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, frame[T]{node: n})
		if n.leaf() {
			break
		}
		n = n.children[0]
	}
}

// yieldTop yields the key under the top frame's index and readies the stack
// for the following step by descending into the subtree right of that key.
func (it *Iterator[T]) yieldTop() {
	top := &it.stack[len(it.stack)-1]
	n := top.node
	it.key = n.keys[top.index]
	it.valid = true
	top.index++
	if index := top.index; !n.leaf() && index < len(n.children) {
		it.pushLeftPath(n.children[index])
	}
}

// Next advances the iterator to the following key in sorted order. Once the
// keys are exhausted, Valid reports false and Next is a no-op.
func (it *Iterator[T]) Next() {
	for 0 < len(it.stack) {
		top := &it.stack[len(it.stack)-1]
		if top.index < len(top.node.keys) {
			it.yieldTop()
			return
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	var zero T
	it.key, it.valid = zero, false
}

// Valid reports whether the iterator is positioned at a key.
func (it *Iterator[T]) Valid() bool {
	return it.valid
}

// Key returns the key the iterator is positioned at. It must only be called
// while Valid reports true.
func (it *Iterator[T]) Key() T {
	return it.key
}
