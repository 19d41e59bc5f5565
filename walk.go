// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package critbit

import "bytes"

// WalkFn is called with each visited key, returning if the walk should
// be terminated. The key bytes are owned by the tree and only valid for
// the duration of the call.
type WalkFn func(key []byte) bool

// Walk visits every key in lexicographic order. It reports whether the
// walk ran to completion.
func (t *Tree) Walk(fn WalkFn) bool {
	if t.root == nil {
		return true
	}
	return !recursiveWalk(t.root, fn)
}

// WalkPrefix visits, in lexicographic order, exactly the keys that
// begin with prefix. It reports whether the walk ran to completion.
func (t *Tree) WalkPrefix(prefix []byte, fn WalkFn) bool {
	if t.root == nil {
		return true
	}

	// Descend with prefix, tracking the branch taken at the deepest
	// node that examined a byte inside the prefix: that branch roots
	// the smallest subtree holding every possible match. Nodes past the
	// prefix cannot separate matches from non-matches, but descent
	// continues through them to reach a concrete leaf for verification.
	top := t.root
	c := t.root
	for {
		n, ok := c.(*node)
		if !ok {
			break
		}
		c = n.children[n.direction(prefix)]
		if n.offset < len(prefix) {
			top = c
		}
	}
	if !bytes.HasPrefix(c.(*Block).key, prefix) {
		return true
	}
	return !recursiveWalk(top, fn)
}

// recursiveWalk does a depth-first walk under c, returning true if fn
// terminated it.
func recursiveWalk(c child, fn WalkFn) bool {
	if n, ok := c.(*node); ok {
		return recursiveWalk(n.children[0], fn) || recursiveWalk(n.children[1], fn)
	}
	return fn(c.(*Block).key)
}
