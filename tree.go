// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package critbit implements an ordered set of byte strings as a
// crit-bit tree: a binary radix trie whose internal nodes each record
// the single bit position at which two groups of keys first diverge.
// Membership tests, inserts and deletes cost O(len(key)) node visits
// regardless of how many keys the tree holds, and depth-first traversal
// yields keys in byte-lexicographic order.
package critbit

import (
	"bytes"
	"errors"
)

// ErrAllocFailed reports that the tree's allocator returned no memory.
// The failed operation leaves the tree unmodified.
var ErrAllocFailed = errors.New("critbit: allocation failed")

// Tree is an ordered set of byte strings. Keys are copied on insert and
// never mutated afterwards.
//
// A Tree is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Tree struct {
	root  child
	alloc AllocFunc
	free  FreeFunc
	baton any
	size  int
}

// New returns an empty tree using the default allocator pair.
func New() *Tree {
	return NewWithAllocator(DefaultAlloc, DefaultFree, nil)
}

// NewWithAllocator returns an empty tree whose leaf blocks are obtained
// and released through the given pair. baton is handed through to every
// allocator call.
func NewWithAllocator(alloc AllocFunc, free FreeFunc, baton any) *Tree {
	return &Tree{alloc: alloc, free: free, baton: baton}
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Contains reports whether key is in the tree. Descent alone only
// proves the bits the visited nodes tested, so the leaf it lands on is
// compared against key in full.
func (t *Tree) Contains(key []byte) bool {
	c := t.root
	if c == nil {
		return false
	}
	for {
		n, ok := c.(*node)
		if !ok {
			break
		}
		c = n.children[n.direction(key)]
	}
	return bytes.Equal(c.(*Block).key, key)
}

// Clear releases every block and resets the tree to empty. Internal
// nodes occupy spare cells inside the blocks, so freeing the blocks
// covers them too. The walk keeps its own stack; tree depth grows with
// key length and must not be able to overflow the goroutine stack.
func (t *Tree) Clear() {
	if t.root == nil {
		return
	}
	stack := []child{t.root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := c.(type) {
		case *node:
			stack = append(stack, v.children[0], v.children[1])
		case *Block:
			t.free(v, t.baton)
		}
	}
	t.root = nil
	t.size = 0
}
