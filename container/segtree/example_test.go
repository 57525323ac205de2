// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package segtree_test

import (
	"fmt"

	"cloudeng.io/dsalgo/container/segtree"
)

func ExampleRangeMin() {
	rm, _ := segtree.NewRangeMin[int](5)
	_ = rm.Build([]int{4, 3, 5, 2, 1})
	m, _ := rm.Query(1, 3)
	fmt.Println(m)
	_ = rm.Update(2, 0)
	m, _ = rm.Query(0, 4)
	fmt.Println(m)
	_, err := rm.Query(3, 9)
	fmt.Println(err)
	// Output:
	// 2
	// 0
	// segtree.Query: index out of range: [3, 9] not within [0, 4]
}
