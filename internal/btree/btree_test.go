// Copyright 2014 Google Inc.
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

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"sort"
	"testing"
	"time"

	"golang.org/x/exp/constraints"
)

func init() {
	seed := time.Now().Unix()
	fmt.Println(seed)
	rand.Seed(seed)
}

var btreeOrder = flag.Int("order", 16, "B-tree order")

// perm returns a random permutation of the keys in the range [0, n).
func perm(n int) []int {
	return rand.Perm(n)
}

// rang returns an ordered list of the keys in the range [0, n).
func rang(n int) (out []int) {
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return
}

// all extracts all keys from a tree in order as a slice.
func all[T constraints.Ordered](tr *BTree[T]) (out []T) {
	tr.ForEach(func(key T) error {
		out = append(out, key)
		return nil
	})
	return
}

// check validates every structural invariant of the tree: key order, fill
// bounds, fan-out, equal leaf depth, separator bounds, and the length
// counter.
func check[T constraints.Ordered](t *testing.T, tr *BTree[T]) {
	t.Helper()
	if tr.root == nil {
		if tr.length != 0 {
			t.Fatalf("empty tree with length %d", tr.length)
		}
		if h := tr.Height(); h != 0 {
			t.Fatalf("empty tree with height %d", h)
		}
		return
	}
	if len(tr.root.keys) == 0 {
		t.Fatal("root with no keys")
	}
	count, depth := checkNode(t, tr, tr.root, true)
	if count != tr.length {
		t.Fatalf("length %d, counted %d keys", tr.length, count)
	}
	if h := tr.Height(); h != depth {
		t.Fatalf("height %d, measured depth %d", h, depth)
	}
}

// checkNode validates the subtree rooted at n and returns its key count and
// depth.
func checkNode[T constraints.Ordered](t *testing.T, tr *BTree[T], n *node[T], root bool) (count, depth int) {
	t.Helper()
	if root {
		if tr.maxKeys() < len(n.keys) {
			t.Fatalf("root with %d keys, max %d", len(n.keys), tr.maxKeys())
		}
	} else if len(n.keys) < tr.minKeys() || tr.maxKeys() < len(n.keys) {
		t.Fatalf("node with %d keys, want %d..%d", len(n.keys), tr.minKeys(), tr.maxKeys())
	}
	for i := 1; i < len(n.keys); i++ {
		if n.keys[i] < n.keys[i-1] {
			t.Fatalf("keys out of order: %v", n.keys)
		}
	}
	count = len(n.keys)
	if n.leaf() {
		return count, 1
	}
	if len(n.children) != len(n.keys)+1 {
		t.Fatalf("node with %d keys and %d children", len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		c, d := checkNode(t, tr, child, false)
		count += c
		if depth == 0 {
			depth = d
		} else if d != depth {
			t.Fatal("leaves at different depths")
		}
		if i < len(n.keys) {
			if max := predecessor(child); n.keys[i] < max {
				t.Fatalf("separator %v below max %v of left subtree", n.keys[i], max)
			}
		}
		if 0 < i {
			if min := successor(child); min < n.keys[i-1] {
				t.Fatalf("separator %v above min %v of right subtree", n.keys[i-1], min)
			}
		}
	}
	return count, depth + 1
}

func TestBTree(t *testing.T) {
	tr := New[int](*btreeOrder)
	const treeSize = 10000
	for i := 0; i < 10; i++ {
		if _, err := tr.Min(); !errors.Is(err, ErrEmptyTree) {
			t.Fatalf("empty min, got err %v", err)
		}
		if _, err := tr.Max(); !errors.Is(err, ErrEmptyTree) {
			t.Fatalf("empty max, got err %v", err)
		}
		for _, key := range perm(treeSize) {
			tr.Insert(key)
		}
		if tr.Len() != treeSize {
			t.Fatalf("len: want %d, got %d", treeSize, tr.Len())
		}
		for _, key := range perm(treeSize) {
			if !tr.Has(key) {
				t.Fatal("has did not find key", key)
			}
		}
		for _, key := range perm(treeSize) {
			tr.Insert(key)
		}
		if tr.Len() != 2*treeSize {
			t.Fatalf("len after duplicates: want %d, got %d", 2*treeSize, tr.Len())
		}
		if min, err := tr.Min(); err != nil || min != 0 {
			t.Fatalf("min: want 0, got %v, %v", min, err)
		}
		if max, err := tr.Max(); err != nil || max != treeSize-1 {
			t.Fatalf("max: want %v, got %v, %v", treeSize-1, max, err)
		}
		check(t, tr)
		for _, key := range perm(treeSize) {
			if !tr.Remove(key) {
				t.Fatalf("didn't find %v", key)
			}
		}
		got := all(tr)
		want := rang(treeSize)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
		}
		for _, key := range perm(treeSize) {
			if !tr.Remove(key) {
				t.Fatalf("didn't find %v", key)
			}
		}
		if got = all(tr); 0 < len(got) {
			t.Fatalf("some left!: %v", got)
		}
		if !tr.Empty() || tr.Len() != 0 {
			t.Fatalf("tree not empty: len %d", tr.Len())
		}
		check(t, tr)
	}
}

func TestBadOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New[int](2)
}

func TestSequentialInsertSearch(t *testing.T) {
	tr := New[int](3)
	for i := 1; i <= 100; i++ {
		tr.Insert(i)
		check(t, tr)
	}
	if tr.Len() != 100 {
		t.Fatalf("len: want 100, got %d", tr.Len())
	}
	if h := tr.Height(); h < 4 || 7 < h {
		t.Fatalf("height: want 4..7, got %d", h)
	}
	if min, err := tr.Min(); err != nil || min != 1 {
		t.Fatalf("min: want 1, got %v, %v", min, err)
	}
	if max, err := tr.Max(); err != nil || max != 100 {
		t.Fatalf("max: want 100, got %v, %v", max, err)
	}
	for i := 1; i <= 100; i++ {
		if !tr.Has(i) {
			t.Fatalf("has did not find %d", i)
		}
	}
	if tr.Has(0) || tr.Has(101) {
		t.Fatal("has found absent key")
	}
	want := make([]int, 0, 100)
	for i := 1; i <= 100; i++ {
		want = append(want, i)
	}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestReverseInsert(t *testing.T) {
	tr := New[int](3)
	for i := 10; 1 <= i; i-- {
		tr.Insert(i)
		check(t, tr)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestRandomInsert(t *testing.T) {
	input := []int{50, 25, 75, 10, 30, 60, 80, 5, 15, 27, 35, 55, 65, 77, 90}
	tr := New[int](3)
	for _, key := range input {
		tr.Insert(key)
		check(t, tr)
	}
	if tr.Len() != len(input) {
		t.Fatalf("len: want %d, got %d", len(input), tr.Len())
	}
	for _, key := range input {
		if !tr.Has(key) {
			t.Fatalf("has did not find %d", key)
		}
	}
	if tr.Has(100) {
		t.Fatal("has found absent key")
	}
	want := append([]int(nil), input...)
	sort.Ints(want)
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestDeleteToEmpty(t *testing.T) {
	tr := New[int](3)
	for i := 1; i <= 15; i++ {
		tr.Insert(i)
	}
	for i := 1; i <= 15; i++ {
		if !tr.Remove(i) {
			t.Fatalf("didn't find %d", i)
		}
		check(t, tr)
	}
	if !tr.Empty() || tr.Len() != 0 {
		t.Fatalf("tree not empty: len %d", tr.Len())
	}
}

func TestBorrowAndMerge(t *testing.T) {
	tr := New[int](4)
	for i := 1; i <= 50; i++ {
		tr.Insert(i)
	}
	for i := 2; i <= 50; i += 2 {
		if !tr.Remove(i) {
			t.Fatalf("didn't find %d", i)
		}
		check(t, tr)
	}
	if tr.Len() != 25 {
		t.Fatalf("len: want 25, got %d", tr.Len())
	}
	want := make([]int, 0, 25)
	for i := 1; i <= 49; i += 2 {
		want = append(want, i)
	}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestDuplicates(t *testing.T) {
	tr := New[int](3)
	for i := 0; i < 100; i++ {
		tr.Insert(42)
		check(t, tr)
	}
	if tr.Len() != 100 {
		t.Fatalf("len: want 100, got %d", tr.Len())
	}
	for _, key := range tr.ToSlice() {
		if key != 42 {
			t.Fatalf("want 42, got %d", key)
		}
	}
	if !tr.Remove(42) {
		t.Fatal("didn't find 42")
	}
	if tr.Len() != 99 {
		t.Fatalf("len after remove: want 99, got %d", tr.Len())
	}
	for i := 0; i < 99; i++ {
		if !tr.Remove(42) {
			t.Fatal("didn't find 42")
		}
		check(t, tr)
	}
	if !tr.Empty() {
		t.Fatal("tree not empty")
	}
	if tr.Remove(42) {
		t.Fatal("remove found key in empty tree")
	}
}

func TestBoundaryValues(t *testing.T) {
	tr := New[int](3)
	tr.Insert(math.MinInt)
	tr.Insert(0)
	tr.Insert(math.MaxInt)
	if min, err := tr.Min(); err != nil || min != math.MinInt {
		t.Fatalf("min: got %v, %v", min, err)
	}
	if max, err := tr.Max(); err != nil || max != math.MaxInt {
		t.Fatalf("max: got %v, %v", max, err)
	}
	for _, key := range []int{math.MinInt, 0, math.MaxInt} {
		if !tr.Has(key) {
			t.Fatalf("has did not find %d", key)
		}
	}
}

func TestNegativeKeys(t *testing.T) {
	tr := New[int](4)
	for _, key := range []int{-5, 3, -10, 0, 7, -1} {
		tr.Insert(key)
	}
	want := []int{-10, -5, -1, 0, 3, 7}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestStringKeys(t *testing.T) {
	tr := New[string](3)
	for _, key := range []string{"banana", "apple", "cherry", "date", "apple"} {
		tr.Insert(key)
	}
	want := []string{"apple", "apple", "banana", "cherry", "date"}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
	if !tr.Remove("apple") {
		t.Fatal("didn't find apple")
	}
	if !tr.Has("apple") {
		t.Fatal("second apple should remain")
	}
}

func TestFloatKeys(t *testing.T) {
	tr := New[float64](5)
	for _, key := range []float64{3.14, 1.41, 2.72, 0.58, 1.62} {
		tr.Insert(key)
	}
	want := []float64{0.58, 1.41, 1.62, 2.72, 3.14}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

// TestOddOrderRandomDeletes exercises the post-merge overflow path that odd
// orders hit when a separator is pulled down between two minimal children.
func TestOddOrderRandomDeletes(t *testing.T) {
	for _, order := range []int{3, 4, 5, 7} {
		order := order
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			tr := New[int](order)
			keys := make([]int, 0, 512)
			for i := 0; i < 512; i++ {
				keys = append(keys, rand.Intn(128))
			}
			for _, key := range keys {
				tr.Insert(key)
			}
			check(t, tr)
			rand.Shuffle(len(keys), func(i, j int) {
				keys[i], keys[j] = keys[j], keys[i]
			})
			for _, key := range keys {
				if !tr.Remove(key) {
					t.Fatalf("didn't find %d", key)
				}
				check(t, tr)
			}
			if !tr.Empty() {
				t.Fatal("tree not empty")
			}
		})
	}
}

func TestRemoveAbsent(t *testing.T) {
	tr := New[int](3)
	for _, key := range []int{1, 3, 5, 7, 9} {
		tr.Insert(key)
	}
	before := tr.ToSlice()
	for _, key := range []int{0, 2, 4, 6, 8, 10} {
		if tr.Remove(key) {
			t.Fatalf("remove found absent key %d", key)
		}
	}
	if got := tr.ToSlice(); !reflect.DeepEqual(got, before) {
		t.Fatalf("contents changed:\n got: %v\nwant: %v", got, before)
	}
	check(t, tr)
}

// TestRemoveAbsentCollapsesRoot drives the descent into merging the root's
// last two children while looking for a key that is not there. The root
// empties out even though nothing was removed and must be collapsed.
func TestRemoveAbsentCollapsesRoot(t *testing.T) {
	tr := New[int](4)
	for _, key := range []int{1, 2, 3, 4} {
		tr.Insert(key)
	}
	if !tr.Remove(1) {
		t.Fatal("didn't find 1")
	}
	if tr.Remove(99) {
		t.Fatal("remove found absent key")
	}
	check(t, tr)
	if got, want := tr.ToSlice(), []int{2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestMultipleTrees(t *testing.T) {
	a := New[int](3)
	b := New[int](3)
	for i := 0; i < 32; i++ {
		a.Insert(i)
		b.Insert(-i)
	}
	if a.Len() != 32 || b.Len() != 32 {
		t.Fatalf("len: got %d and %d", a.Len(), b.Len())
	}
	if a.Has(-5) || !b.Has(-5) {
		t.Fatal("trees share state")
	}
}

func TestClear(t *testing.T) {
	f := NewFreeList[int](DefaultFreeListSize)
	tr := NewWithFreeList(3, f)
	for _, key := range perm(100) {
		tr.Insert(key)
	}
	tr.Clear(true)
	if !tr.Empty() || tr.Len() != 0 {
		t.Fatalf("tree not empty after clear: len %d", tr.Len())
	}
	if len(f.freelist) == 0 {
		t.Fatal("clear did not reclaim nodes")
	}
	check(t, tr)
	for _, key := range perm(100) {
		tr.Insert(key)
	}
	check(t, tr)
}

func TestMove(t *testing.T) {
	a := New[int](4)
	for _, key := range perm(100) {
		a.Insert(key)
	}
	want := a.ToSlice()
	b := a.Move()
	if !a.Empty() || a.Len() != 0 {
		t.Fatalf("source not empty after move: len %d", a.Len())
	}
	if got := b.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
	}
	check(t, a)
	check(t, b)
	a.Insert(7)
	if b.Len() != 100 {
		t.Fatal("trees share state after move")
	}
}

func TestClone(t *testing.T) {
	a := New[int](4)
	for _, key := range perm(100) {
		a.Insert(key)
	}
	b := a.Clone()
	if !reflect.DeepEqual(a.ToSlice(), b.ToSlice()) {
		t.Fatal("clone mismatch")
	}
	for i := 0; i < 50; i++ {
		if !b.Remove(i) {
			t.Fatalf("didn't find %d", i)
		}
	}
	if a.Len() != 100 || b.Len() != 50 {
		t.Fatalf("len: got %d and %d", a.Len(), b.Len())
	}
	check(t, a)
	check(t, b)
}

func TestTraverse(t *testing.T) {
	tr := New[int](3)
	var buf bytes.Buffer
	if err := tr.Traverse(&buf); err != nil || buf.Len() != 0 {
		t.Fatalf("empty traverse: %q, %v", buf.String(), err)
	}
	for _, key := range []int{3, 1, 2} {
		tr.Insert(key)
	}
	if err := tr.Traverse(&buf); err != nil {
		t.Fatal(err)
	}
	if want := "1 2 3 \n"; buf.String() != want {
		t.Fatalf("traverse: want %q, got %q", want, buf.String())
	}
}

// failWriter fails after a fixed number of writes.
type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("sink closed")
	}
	w.n--
	return len(p), nil
}

func TestTraverseSinkFailure(t *testing.T) {
	tr := New[int](3)
	for _, key := range perm(10) {
		tr.Insert(key)
	}
	if err := tr.Traverse(&failWriter{n: 3}); err == nil {
		t.Fatal("expected sink error")
	}
	check(t, tr)
}

func TestForEachError(t *testing.T) {
	tr := New[int](3)
	for _, key := range perm(10) {
		tr.Insert(key)
	}
	sentinel := errors.New("stop")
	visited := 0
	err := tr.ForEach(func(key int) error {
		if visited == 5 {
			return sentinel
		}
		visited++
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel error, got %v", err)
	}
	if visited != 5 {
		t.Fatalf("visited %d keys before stopping", visited)
	}
	check(t, tr)
}

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := New[int](*btreeOrder)
		for _, key := range insertP {
			tr.Insert(key)
			i++
			if b.N <= i {
				return
			}
		}
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	b.StopTimer()
	insertP := rang(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := New[int](*btreeOrder)
		for _, key := range insertP {
			tr.Insert(key)
			i++
			if b.N <= i {
				return
			}
		}
	}
}

func BenchmarkHas(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	probeP := perm(benchmarkTreeSize)
	tr := New[int](*btreeOrder)
	for _, key := range insertP {
		tr.Insert(key)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Has(probeP[i%benchmarkTreeSize])
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	removeP := perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		tr := New[int](*btreeOrder)
		for _, v := range insertP {
			tr.Insert(v)
		}
		b.StartTimer()
		for _, key := range removeP {
			tr.Remove(key)
			i++
			if b.N <= i {
				return
			}
		}
		if 0 < tr.Len() {
			panic(tr.Len())
		}
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	tr := New[int](*btreeOrder)
	for _, key := range insertP {
		tr.Insert(key)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Remove(insertP[i%benchmarkTreeSize])
		tr.Insert(insertP[i%benchmarkTreeSize])
	}
}

func BenchmarkIterate(b *testing.B) {
	arr := perm(benchmarkTreeSize)
	tr := New[int](*btreeOrder)
	for _, v := range arr {
		tr.Insert(v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		for it := tr.Iterator(); it.Valid(); it.Next() {
			if it.Key() != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], it.Key())
			}
			j++
		}
	}
}

func BenchmarkForEach(b *testing.B) {
	arr := perm(benchmarkTreeSize)
	tr := New[int](*btreeOrder)
	for _, v := range arr {
		tr.Insert(v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		tr.ForEach(func(key int) error {
			if key != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], key)
			}
			j++
			return nil
		})
	}
}

func BenchmarkOrders(b *testing.B) {
	insertP := perm(benchmarkTreeSize)
	for _, order := range []int{3, 5, 16, 64, 128} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			i := 0
			for i < b.N {
				tr := New[int](order)
				for _, key := range insertP {
					tr.Insert(key)
					i++
					if b.N <= i {
						return
					}
				}
			}
		})
	}
}
