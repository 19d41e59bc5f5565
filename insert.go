// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package critbit

// Insert adds key to the tree. It returns (true, nil) when the key was
// added, (false, nil) when an equal key was already present, and
// (false, ErrAllocFailed) when the allocator failed; in the latter two
// cases the tree is unchanged.
func (t *Tree) Insert(key []byte) (bool, error) {
	if t.root == nil {
		blk := t.newBlock(key)
		if blk == nil {
			return false, ErrAllocFailed
		}
		t.root = blk
		t.size++
		return true, nil
	}

	// Probe to the leaf the existing nodes steer key toward. Along the
	// way every visited node already agrees with key on its tested bit,
	// so this leaf is the one whose comparison against key produces the
	// correct new branching decision.
	c := t.root
	for {
		n, ok := c.(*node)
		if !ok {
			break
		}
		c = n.children[n.direction(key)]
	}
	leaf := c.(*Block).key

	// Find the first divergence between key and the probed leaf.
	// leafdir is the side of the new node the existing leaf falls on.
	offset, limit := 0, min(len(key), len(leaf))
	var mask byte
	var leafdir int
	for ; offset < limit; offset++ {
		if leaf[offset] != key[offset] {
			mask = critMask(leaf[offset], key[offset])
			leafdir = (1 + int(mask|leaf[offset])) >> 8
			break
		}
	}
	if offset == limit {
		if len(key) == len(leaf) {
			return false, nil
		}
		// One key strictly extends the other: branch on length at the
		// shorter key's end. The shorter key sits left of the prefix
		// node, all extensions right.
		mask = prefixMask
		leafdir = 0
		if len(leaf) > len(key) {
			leafdir = 1
		}
	}

	blk := t.newBlock(key)
	if blk == nil {
		return false, ErrAllocFailed
	}
	nn := blk.claim(offset, mask)
	nn.children[1-leafdir] = blk

	// Walk down again and stop at the first slot whose branching
	// decision sorts after the new node's (offset primary, then rank
	// within the offset). That slot is the splice point: whatever hangs
	// there moves under the new node, on the side the probed leaf
	// lives on.
	wherep := &t.root
	newRank := maskRank(mask)
	for {
		q, ok := (*wherep).(*node)
		if !ok {
			break
		}
		if q.offset > offset || (q.offset == offset && maskRank(q.mask) > newRank) {
			break
		}
		wherep = &q.children[q.direction(key)]
	}
	nn.children[leafdir] = *wherep
	*wherep = nn

	t.size++
	return true, nil
}

// newBlock allocates a block and copies key into it.
func (t *Tree) newBlock(key []byte) *Block {
	blk := t.alloc(len(key), t.baton)
	if blk == nil {
		return nil
	}
	blk.key = blk.key[:len(key)]
	copy(blk.key, key)
	return blk
}
