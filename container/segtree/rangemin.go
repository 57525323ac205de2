// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package segtree provides array backed segment trees.
package segtree

import (
	"math/bits"

	"cloudeng.io/dsalgo/dserrors"
	"golang.org/x/exp/constraints"
)

// MaxLength is the largest sequence length accepted by NewRangeMin.
const MaxLength = 1 << 28

// RangeMin is a segment tree over a fixed length sequence of integers
// that supports range minimum queries and point updates, both in
// O(log N) time. Nodes are numbered as for a binary heap, the root is 0
// and the children of node i are 2i+1 and 2i+2. Node i holds the minimum
// of the range it covers, ranges are split at low+(high-low)/2.
//
// A RangeMin must be built exactly once, via Build, before it can be
// queried or updated. It is not safe for concurrent use.
type RangeMin[T constraints.Integer] struct {
	nodes []T
	n     int
	built bool
	stack []frame
}

type frame struct {
	node, low, high int
	expanded        bool
}

func mid(low, high int) int {
	return low + (high-low)/2
}

// NewRangeMin returns an unbuilt RangeMin for a sequence of length n.
func NewRangeMin[T constraints.Integer](n int) (*RangeMin[T], error) {
	if n < 0 || n > MaxLength {
		return nil, dserrors.InvalidArgument("segtree.NewRangeMin", "length %d not within [0, %d]", n, MaxLength)
	}
	return &RangeMin[T]{
		nodes: make([]T, 4*n),
		n:     n,
		stack: make([]frame, 0, 2*(bits.Len(uint(n))+2)),
	}, nil
}

// NewRangeMinFrom returns a RangeMin built from seq.
func NewRangeMinFrom[T constraints.Integer](seq []T) (*RangeMin[T], error) {
	rm, err := NewRangeMin[T](len(seq))
	if err != nil {
		return nil, err
	}
	if err := rm.Build(seq); err != nil {
		return nil, err
	}
	return rm, nil
}

// Len returns the length of the underlying sequence.
func (rm *RangeMin[T]) Len() int {
	return rm.n
}

// Built returns true once Build has been called successfully.
func (rm *RangeMin[T]) Built() bool {
	return rm.built
}

// Build populates the tree from the first Len() values of seq, which
// are copied. It may only be called once.
func (rm *RangeMin[T]) Build(seq []T) error {
	if rm.built {
		return dserrors.InvalidState("segtree.Build", "already built")
	}
	if len(seq) < rm.n {
		return dserrors.InvalidArgument("segtree.Build", "sequence length %d < %d", len(seq), rm.n)
	}
	if rm.n > 0 {
		rm.build(seq)
	}
	rm.built = true
	return nil
}

// build visits nodes in post order so that both children are
// computed before their parent.
func (rm *RangeMin[T]) build(seq []T) {
	stack := append(rm.stack[:0], frame{node: 0, low: 0, high: rm.n - 1})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.low == f.high {
			rm.nodes[f.node] = seq[f.low]
			continue
		}
		l, r := 2*f.node+1, 2*f.node+2
		if f.expanded {
			rm.nodes[f.node] = min(rm.nodes[l], rm.nodes[r])
			continue
		}
		m := mid(f.low, f.high)
		f.expanded = true
		stack = append(stack,
			f,
			frame{node: r, low: m + 1, high: f.high},
			frame{node: l, low: f.low, high: m})
	}
	rm.stack = stack[:0]
}

// Query returns the minimum value in the inclusive range [l, r].
func (rm *RangeMin[T]) Query(l, r int) (T, error) {
	if !rm.built {
		return 0, dserrors.InvalidState("segtree.Query", "not built")
	}
	if l < 0 || r >= rm.n || l > r {
		return 0, dserrors.IndexOutOfRange("segtree.Query", "[%d, %d] not within [0, %d]", l, r, rm.n-1)
	}
	return rm.query(l, r), nil
}

func (rm *RangeMin[T]) query(l, r int) T {
	var result T
	found := false
	stack := append(rm.stack[:0], frame{node: 0, low: 0, high: rm.n - 1})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case r < f.low || f.high < l:
			// No overlap, contributes nothing.
		case l <= f.low && f.high <= r:
			if v := rm.nodes[f.node]; !found || v < result {
				result, found = v, true
			}
		default:
			m := mid(f.low, f.high)
			stack = append(stack,
				frame{node: 2*f.node + 2, low: m + 1, high: f.high},
				frame{node: 2*f.node + 1, low: f.low, high: m})
		}
	}
	rm.stack = stack[:0]
	return result
}

// At returns the value at index i, it is equivalent to Query(i, i).
func (rm *RangeMin[T]) At(i int) (T, error) {
	if !rm.built {
		return 0, dserrors.InvalidState("segtree.At", "not built")
	}
	if i < 0 || i >= rm.n {
		return 0, dserrors.IndexOutOfRange("segtree.At", "%d not within [0, %d]", i, rm.n-1)
	}
	return rm.query(i, i), nil
}

// Update sets the value at index i to v.
func (rm *RangeMin[T]) Update(i int, v T) error {
	if !rm.built {
		return dserrors.InvalidState("segtree.Update", "not built")
	}
	if i < 0 || i >= rm.n {
		return dserrors.IndexOutOfRange("segtree.Update", "%d not within [0, %d]", i, rm.n-1)
	}
	// Descend to the leaf recording the path, then recompute each
	// ancestor on the way back up.
	path := rm.stack[:0]
	node, low, high := 0, 0, rm.n-1
	for low != high {
		path = append(path, frame{node: node, low: low, high: high})
		if m := mid(low, high); i <= m {
			node, high = 2*node+1, m
		} else {
			node, low = 2*node+2, m+1
		}
	}
	rm.nodes[node] = v
	for j := len(path) - 1; j >= 0; j-- {
		p := path[j].node
		rm.nodes[p] = min(rm.nodes[2*p+1], rm.nodes[2*p+2])
	}
	rm.stack = path[:0]
	return nil
}
