// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package critbit

// Block is the unit of allocation: the bytes of one key together with a
// spare internal node cell. The spare starts vacant; the split that
// later separates this leaf from a new key claims it, so inserting a
// key costs a single allocation.
type Block struct {
	spare node
	key   []byte
}

func (b *Block) kind() childKind { return kindLeaf }

// claim turns the vacant spare cell into the live internal node created
// when this block's key splits off an existing leaf.
func (b *Block) claim(offset int, mask byte) *node {
	b.spare = node{offset: offset, mask: mask, inUse: true}
	return &b.spare
}

// vacate returns a cell to the vacant state after the node it held was
// collapsed out of the tree. Dropping the child references matters: the
// cell outlives them, inside a block that stays allocated as long as
// its own leaf does.
func (n *node) vacate() {
	*n = node{}
}

// relocate moves the live node occupying src into the cell dst and
// repoints slot, the one reference to src, at dst instead. Deletion is
// the only caller; it uses this to empty a spare cell that must be
// freed while the node occupying it is still part of the tree.
func relocate(src, dst *node, slot *child) {
	*dst = *src
	*slot = dst
}

// AllocFunc obtains one Block able to hold a key of keyLen bytes. A nil
// return reports allocation failure. FreeFunc releases a block obtained
// from the paired AllocFunc. The baton supplied at tree construction is
// passed through to every call uninterpreted, so allocators can carry
// counters, pools or fault injection without package-level state.
type AllocFunc func(keyLen int, baton any) *Block

// FreeFunc is the release half of an allocator pair.
type FreeFunc func(b *Block, baton any)

// Default allocator pair used by New. Process-wide configuration:
// replace at startup before any tree is created, or not at all.
var (
	DefaultAlloc AllocFunc = func(keyLen int, _ any) *Block {
		return &Block{key: make([]byte, keyLen)}
	}
	DefaultFree FreeFunc = func(*Block, any) {}
)
