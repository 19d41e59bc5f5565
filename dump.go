// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package critbit

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/bits"
	"strconv"
)

// Dump writes a human-readable sketch of the tree structure to w. It is
// a diagnostic aid with no bearing on the tree's behavior.
func (t *Tree) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	dumpChild(w, t.root, false, "")
}

func dumpChild(w io.Writer, c child, right bool, prefix string) {
	myprefix := prefix
	if right {
		myprefix = prefix[:len(prefix)-1] + "`"
	}

	switch v := c.(type) {
	case *node:
		if v.mask == prefixMask {
			fmt.Fprintf(w, "%s-- off=%d prefix\n", myprefix, v.offset)
		} else {
			// Bit positions count from the most significant side, the
			// order in which branching resolves them.
			bit := 7 - bits.TrailingZeros8(^v.mask)
			fmt.Fprintf(w, "%s-- off=%d bit=%d\n", myprefix, v.offset, bit)
		}
		dumpChild(w, v.children[0], false, prefix+" |")
		dumpChild(w, v.children[1], true, prefix+"  ")
	case *Block:
		fmt.Fprintf(w, "%s-- %s\n", myprefix, quoteKey(v.key))
	}
}

// quoteKey renders a key, falling back to hex when it contains
// non-printable bytes.
func quoteKey(key []byte) string {
	for _, b := range key {
		if !strconv.IsPrint(rune(b)) {
			return "0x" + hex.EncodeToString(key)
		}
	}
	return strconv.Quote(string(key))
}
