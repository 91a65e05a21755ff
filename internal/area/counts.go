// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package area

import (
	"github.com/google/btree"
	"github.com/specialistvlad/electra/internal/geom"
)

const degree = 8

type entry[T geom.Coord] struct {
	key   T
	count int
}

func lessEntry[T geom.Coord](a, b entry[T]) bool {
	return a.key < b.key
}

// counts is an ordered multiset of coordinates. A key is stored only while
// its count is positive.
type counts[T geom.Coord] struct {
	tree *btree.BTreeG[entry[T]]
}

func (c *counts[T]) lazyInit() {
	if c.tree == nil {
		c.tree = btree.NewG(degree, lessEntry[T])
	}
}

func (c *counts[T]) get(k T) int {
	if c.tree == nil {
		return 0
	}
	e, ok := c.tree.Get(entry[T]{key: k})
	if !ok {
		return 0
	}
	return e.count
}

func (c *counts[T]) add(k T, n int) {
	c.lazyInit()
	c.tree.ReplaceOrInsert(entry[T]{key: k, count: c.get(k) + n})
}

// sub decrements k by n. The caller guarantees the count is at least n.
func (c *counts[T]) sub(k T, n int) {
	have := c.get(k)
	if have < n {
		panic("area: count underflow")
	}
	if have == n {
		c.tree.Delete(entry[T]{key: k})
		return
	}
	c.tree.ReplaceOrInsert(entry[T]{key: k, count: have - n})
}

func (c *counts[T]) bounds() (lo, hi T, ok bool) {
	if c.tree == nil || c.tree.Len() == 0 {
		return 0, 0, false
	}
	minE, _ := c.tree.Min()
	maxE, _ := c.tree.Max()
	return minE.key, maxE.key, true
}

func (c *counts[T]) len() int {
	if c.tree == nil {
		return 0
	}
	return c.tree.Len()
}

func (c *counts[T]) entries() []entry[T] {
	if c.tree == nil {
		return nil
	}
	out := make([]entry[T], 0, c.tree.Len())
	c.tree.Ascend(func(e entry[T]) bool {
		out = append(out, e)
		return true
	})
	return out
}

func (c *counts[T]) reset() {
	if c.tree != nil {
		c.tree.Clear(false)
	}
}
