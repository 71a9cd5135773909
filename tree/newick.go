// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"math"
	"strconv"
	"strings"
)

// Newick returns the tree rooted at n
// as a Newick string.
// Holes and non-finite branch lengths
// are not written.
func (n *Node) Newick() string {
	var b strings.Builder
	writeNewick(&b, n)
	b.WriteByte(';')
	return b.String()
}

func writeNewick(b *strings.Builder, n *Node) {
	if !n.IsLeaf() {
		b.WriteByte('(')
		first := true
		for _, c := range n.children {
			if c == nil {
				continue
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			writeNewick(b, c)
		}
		b.WriteByte(')')
	}
	b.WriteString(n.name)
	if n.hasLen && !math.IsNaN(n.length) && !math.IsInf(n.length, 0) {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.length, 'g', -1, 64))
	}
}
