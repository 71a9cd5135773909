// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements the node model
// of a phylogenetic tree
// as read from a Newick string
// or from a hierarchical JSON document.
//
// A node is either a leaf
// (a node without children)
// or an internal node.
// Trees are built once
// and then frozen:
// freezing records the canonical name of each node,
// and any further attempt to modify the node
// is a programming error.
package tree

import (
	"math"
	"slices"
	"strconv"
)

// Kind is the kind of a node.
type Kind int

// Valid node kinds.
const (
	// A Leaf is a node without children.
	Leaf Kind = iota

	// An Internal node is a node with at least one child.
	Internal
)

// String returns the name of the kind.
func (k Kind) String() string {
	if k == Internal {
		return "internal"
	}
	return "leaf"
}

// A Node is a node of a phylogenetic tree.
type Node struct {
	kind     Kind
	name     string
	length   float64
	hasLen   bool
	children []*Node

	original string
	frozen   bool
}

// New creates a new leaf node
// with the given name.
func New(name string) *Node {
	return &Node{
		kind: Leaf,
		name: name,
	}
}

// Add adds a child to a node.
// A leaf becomes an internal node
// after its first child is added.
//
// A nil child is kept as a hole
// so readers of malformed input can report it;
// walks skip holes.
func (n *Node) Add(child *Node) {
	n.mustEdit()
	n.children = append(n.children, child)
	n.kind = Internal
}

// SetName sets the name of a node.
func (n *Node) SetName(name string) {
	n.mustEdit()
	n.name = name
}

// SetLength sets the length of the branch
// that connects a node with its parent.
// The value is stored as given,
// including non-finite values.
func (n *Node) SetLength(l float64) {
	n.mustEdit()
	n.length = l
	n.hasLen = true
}

func (n *Node) mustEdit() {
	if n.frozen {
		panic("tree: modification of a frozen node")
	}
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsLeaf returns true if the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.kind == Leaf
}

// Name returns the name of the node.
func (n *Node) Name() string {
	return n.name
}

// OriginalName returns the canonical name of the node,
// i.e., the name it had when the tree was frozen.
// Before the tree is frozen
// it returns the current name.
func (n *Node) OriginalName() string {
	if !n.frozen {
		return n.name
	}
	return n.original
}

// Len returns the branch length of the node.
// If the length is not defined
// it returns 0.
// A length that was not a number
// in the input is returned as NaN.
func (n *Node) Len() float64 {
	if !n.hasLen {
		return 0
	}
	return n.length
}

// HasLength returns true if the branch length
// was defined for the node.
func (n *Node) HasLength() bool {
	return n.hasLen
}

// Children returns the children of the node.
// Holes left by malformed input are returned as nil.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Frozen returns true if the node is frozen.
func (n *Node) Frozen() bool {
	return n.frozen
}

// Freeze records the canonical name of every node
// in the tree rooted at n
// and locks the nodes against modification.
// Freezing a frozen node has no effect,
// so the canonical name is copied only once.
func Freeze(root *Node) {
	Walk(root, func(n *Node) bool {
		if n.frozen {
			return false
		}
		n.original = n.name
		n.frozen = true
		return true
	})
}

// Walk visits the nodes of a tree
// in depth-first pre-order.
// If fn returns false
// the descendants of the visited node
// are skipped.
func Walk(root *Node, fn func(n *Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, c := range root.children {
		Walk(c, fn)
	}
}

// Leaves returns the leaves of a tree
// in document order.
func Leaves(root *Node) []*Node {
	var ls []*Node
	Walk(root, func(n *Node) bool {
		if n.IsLeaf() {
			ls = append(ls, n)
		}
		return true
	})
	return ls
}

// Size returns the number of nodes in a tree.
func Size(root *Node) int {
	var s int
	Walk(root, func(n *Node) bool {
		s++
		return true
	})
	return s
}

// Height returns the largest sum of branch lengths
// between the root and any leaf.
// The length of the root is not counted
// and non-finite lengths are ignored.
func Height(root *Node) float64 {
	if root == nil {
		return 0
	}
	var h float64
	for _, c := range root.children {
		if c == nil {
			continue
		}
		d := height(c)
		if d > h {
			h = d
		}
	}
	return h
}

func height(n *Node) float64 {
	l := n.Len()
	if math.IsNaN(l) || math.IsInf(l, 0) {
		l = 0
	}
	return l + Height(n)
}

// NameInner returns a copy of a tree
// in which each unnamed internal node
// receives a name made of the prefix
// and a counter that starts at 1,
// assigned in pre-order.
// The copy is frozen.
func NameInner(root *Node, prefix string) *Node {
	var count int
	cp := copyTree(root, func(n *Node) {
		if n.IsLeaf() || n.name != "" {
			return
		}
		count++
		n.name = prefix + strconv.Itoa(count)
	})
	Freeze(cp)
	return cp
}

func copyTree(n *Node, fn func(*Node)) *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		kind:   n.kind,
		name:   n.name,
		length: n.length,
		hasLen: n.hasLen,
	}
	fn(cp)
	for _, c := range n.children {
		cp.children = append(cp.children, copyTree(c, fn))
	}
	return cp
}
