// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package critbit

// A child is one branch of an internal node: either another internal
// node or a leaf block. The root of a tree is a child slot as well,
// with nil meaning the tree is empty.
type child interface {
	kind() childKind
}

type childKind int

const (
	kindNode childKind = iota
	kindLeaf
)

// prefixMask is the divergence descriptor of a prefix node: an internal
// node that separates a key from its strict extensions by length
// instead of testing a bit. It sorts before every bit test at the same
// offset.
const prefixMask = 0xff

// node is one branching decision: inspect the byte at offset and pick a
// child. A bit-test node stores every bit set except the critical one
// in mask; a prefix node stores prefixMask and its offset is the length
// of the shorter key.
//
// Every node lives inside the spare cell of some leaf block; inUse
// distinguishes a live node from a vacant cell.
type node struct {
	children [2]child
	offset   int
	mask     byte
	inUse    bool
}

func (n *node) kind() childKind { return kindNode }

// direction returns the child index to follow for key. For a bit test,
// mask|c carries into bit 8 exactly when the critical bit of c is set,
// so the shift yields 0 or 1 with no branching on the bit itself. Keys
// shorter than the offset read as a zero byte and go left; under a
// prefix node every key extending past the offset goes right.
func (n *node) direction(key []byte) int {
	if n.offset < len(key) {
		return (1 + int(n.mask|key[n.offset])) >> 8
	}
	return 0
}

// maskRank maps a divergence descriptor to its sort position among
// nodes with the same offset. The prefix mask ranks before any bit
// test, and a more significant critical bit ranks before a less
// significant one.
func maskRank(mask byte) int {
	return (int(mask) + 1) & 0xff
}

// critMask builds the descriptor for the most significant bit at which
// two differing bytes disagree: fold the top set bit of the XOR across
// all lower positions, then keep every bit but that one.
func critMask(a, b byte) byte {
	bits := a ^ b
	bits |= bits >> 1
	bits |= bits >> 2
	bits |= bits >> 4
	return (bits ^ 0xff) | (bits >> 1)
}
