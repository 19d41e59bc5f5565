// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package critbit

import "bytes"

// Delete removes key from the tree, reporting whether it was present.
//
// Removing a leaf collapses its parent node by promoting the sibling
// child into the parent's slot. The leaf's block cannot be released
// while its spare cell still holds a live node elsewhere in the tree,
// so the salvage step below may first relocate that node into the
// collapsed parent's cell, which is node-sized and about to go unused.
func (t *Tree) Delete(key []byte) bool {
	if t.root == nil {
		return false
	}

	// Descend tracking the parent node p, the direction taken from it,
	// and the grandparent slot that references p.
	wherep := &t.root
	var whereq *child
	var p *node
	dir := 0
	for {
		q, ok := (*wherep).(*node)
		if !ok {
			break
		}
		whereq = wherep
		p = q
		dir = q.direction(key)
		wherep = &q.children[dir]
	}

	blk := (*wherep).(*Block)
	if !bytes.Equal(blk.key, key) {
		return false
	}

	if whereq == nil {
		// The leaf was the whole tree.
		t.root = nil
		t.free(blk, t.baton)
		t.size--
		return true
	}

	spare := &blk.spare
	sibling := p.children[1-dir]
	switch {
	case spare == p:
		// The collapsing parent is this block's own spare cell, so the
		// block can be freed outright.
		*whereq = sibling
	case !spare.inUse:
		// Vacant spare: the block holds nothing but the leaf. The
		// collapsed parent cell belongs to another live block; vacate
		// it so that block's own deletion sees an unused spare.
		*whereq = sibling
		p.vacate()
	default:
		// The spare holds a live node. A claimed cell always sits on
		// the search path toward its own leaf, so following key from
		// the root finds the one slot referencing it. Locate that slot
		// before the collapse; the collapse may rewrite a child of the
		// spare itself, and the relocation must copy the rewritten
		// contents.
		slot := t.findNodeSlot(spare, key)
		*whereq = sibling
		relocate(spare, p, slot)
	}
	t.free(blk, t.baton)
	t.size--
	return true
}

// findNodeSlot returns the child slot referencing s, located by
// following key down from the root. s must be an ancestor on key's
// search path.
func (t *Tree) findNodeSlot(s *node, key []byte) *child {
	slot := &t.root
	for {
		q, ok := (*slot).(*node)
		if !ok {
			panic("critbit: claimed spare cell not on its key's search path")
		}
		if q == s {
			return slot
		}
		slot = &q.children[q.direction(key)]
	}
}
