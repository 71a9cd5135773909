// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// jsonNode is the hierarchical JSON shape of a node.
// Branchset is the key used by some viewers
// for the children of a node.
type jsonNode struct {
	Name      string      `json:"name,omitempty"`
	Length    *float64    `json:"length,omitempty"`
	Children  []*jsonNode `json:"children,omitempty"`
	Branchset []*jsonNode `json:"branchset,omitempty"`
}

// ReadJSON reads a tree from a hierarchical JSON document.
//
// Each node is an object with the following fields:
//
//   - name, the name of the node (optional)
//   - length, the branch length (optional)
//   - children, the descendants of the node (optional);
//     "branchset" is accepted as an alias
//
// Here is an example:
//
//	{
//		"name": "Inner1",
//		"children": [
//			{"name": "GCA_000001405", "length": 0.1},
//			{"name": "GCA_000002035", "length": 0.2}
//		]
//	}
//
// A null child is kept as a hole in the tree.
// The returned tree is frozen.
func ReadJSON(r io.Reader) (*Node, error) {
	var jn *jsonNode
	if err := json.NewDecoder(r).Decode(&jn); err != nil {
		return nil, fmt.Errorf("while decoding tree: %v", err)
	}
	if jn == nil {
		return nil, fmt.Errorf("empty tree")
	}

	root := fromJSON(jn)
	Freeze(root)
	return root, nil
}

func fromJSON(jn *jsonNode) *Node {
	n := New(jn.Name)
	if jn.Length != nil {
		n.SetLength(*jn.Length)
	}
	children := jn.Children
	if len(children) == 0 {
		children = jn.Branchset
	}
	for _, c := range children {
		if c == nil {
			n.Add(nil)
			continue
		}
		n.Add(fromJSON(c))
	}
	return n
}

// WriteJSON writes a tree as a hierarchical JSON document.
// Non-finite branch lengths are not written.
func (n *Node) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(toJSON(n)); err != nil {
		return fmt.Errorf("while encoding tree: %v", err)
	}
	return nil
}

func toJSON(n *Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{Name: n.name}
	if n.hasLen && !math.IsNaN(n.length) && !math.IsInf(n.length, 0) {
		l := n.length
		jn.Length = &l
	}
	for _, c := range n.children {
		jn.Children = append(jn.Children, toJSON(c))
	}
	return jn
}
