// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package unionfind provides a disjoint-set forest (union-find) over the
// integers 0..n inclusive. Find uses path compression and Join uses union
// by size, giving amortized near constant time per operation.
//
// A T is not safe for concurrent use.
package unionfind

import (
	"fmt"
	"iter"
	"strings"

	"cloudeng.io/dsalgo/dserrors"
)

// MaxElements is the largest n accepted by New.
const MaxElements = 1 << 30

// T represents a partition of {0,...,n} into disjoint sets.
type T struct {
	parent []int // parent[x] == x for roots.
	size   []int // only meaningful for roots.
	count  int   // number of disjoint sets.
}

// New returns a forest of n+1 singleton sets, {0}, {1}, ... {n}.
func New(n int) (*T, error) {
	if n < 0 || n > MaxElements {
		return nil, dserrors.InvalidArgument("unionfind.New", "n %d not within [0, %d]", n, MaxElements)
	}
	u := &T{
		parent: make([]int, n+1),
		size:   make([]int, n+1),
		count:  n + 1,
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u, nil
}

// Len returns the number of elements, ie. n+1.
func (u *T) Len() int {
	return len(u.parent)
}

// Count returns the number of disjoint sets.
func (u *T) Count() int {
	return u.count
}

func (u *T) check(op string, ids ...int) error {
	for _, x := range ids {
		if x < 0 || x >= len(u.parent) {
			return dserrors.IndexOutOfRange(op, "%d not within [0, %d]", x, len(u.parent)-1)
		}
	}
	return nil
}

func (u *T) root(x int) int {
	r := x
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[x] != r {
		x, u.parent[x] = u.parent[x], r
	}
	return r
}

// Find returns the representative of the set containing x.
func (u *T) Find(x int) (int, error) {
	if err := u.check("unionfind.Find", x); err != nil {
		return -1, err
	}
	return u.root(x), nil
}

// Join merges the sets containing x and y. Joining two elements that
// are already in the same set has no effect. The root of the smaller
// set is attached to the root of the larger one; when both sets have
// the same size the root of x's set is attached to the root of y's.
func (u *T) Join(x, y int) error {
	if err := u.check("unionfind.Join", x, y); err != nil {
		return err
	}
	px, py := u.root(x), u.root(y)
	if px == py {
		return nil
	}
	if u.size[px] > u.size[py] {
		px, py = py, px
	}
	u.parent[px] = py
	u.size[py] += u.size[px]
	u.count--
	return nil
}

// Size returns the number of elements in the set containing x.
func (u *T) Size(x int) (int, error) {
	if err := u.check("unionfind.Size", x); err != nil {
		return 0, err
	}
	return u.size[u.root(x)], nil
}

// Connected returns true if x and y are in the same set.
func (u *T) Connected(x, y int) (bool, error) {
	if err := u.check("unionfind.Connected", x, y); err != nil {
		return false, err
	}
	return u.root(x) == u.root(y), nil
}

// Roots returns an iterator over the representatives of all sets in
// ascending order.
func (u *T) Roots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, p := range u.parent {
			if i == p {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// Sets returns the members of each set. Each set is sorted and the sets
// are ordered by their smallest member.
func (u *T) Sets() [][]int {
	index := make(map[int]int, u.count)
	out := make([][]int, 0, u.count)
	for i := range u.parent {
		r := u.root(i)
		idx, ok := index[r]
		if !ok {
			idx = len(out)
			index[r] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], i)
	}
	return out
}

// String implements fmt.Stringer.
func (u *T) String() string {
	out := &strings.Builder{}
	out.WriteString("{")
	for i, set := range u.Sets() {
		if i > 0 {
			out.WriteString(" ")
		}
		fmt.Fprintf(out, "%v", set)
	}
	out.WriteString("}")
	return out.String()
}
