// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phypan/tree"
)

// newTree builds the tree (A:0.1,(B:0.2,C:0.3):0.4)Root
func newTree() *tree.Node {
	root := tree.New("Root")
	a := tree.New("A")
	a.SetLength(0.1)
	root.Add(a)

	in := tree.New("")
	in.SetLength(0.4)
	b := tree.New("B")
	b.SetLength(0.2)
	c := tree.New("C")
	c.SetLength(0.3)
	in.Add(b)
	in.Add(c)
	root.Add(in)

	tree.Freeze(root)
	return root
}

func names(ns []*tree.Node) []string {
	var s []string
	for _, n := range ns {
		s = append(s, n.Name())
	}
	return s
}

func TestWalk(t *testing.T) {
	root := newTree()

	var visited []string
	tree.Walk(root, func(n *tree.Node) bool {
		visited = append(visited, n.Name())
		return true
	})
	want := []string{"Root", "A", "", "B", "C"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("walk: got %q, want %q", visited, want)
	}

	visited = visited[:0]
	tree.Walk(root, func(n *tree.Node) bool {
		visited = append(visited, n.Name())
		return n.Name() != ""
	})
	want = []string{"Root", "A", ""}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("pruned walk: got %q, want %q", visited, want)
	}

	if s := tree.Size(root); s != 5 {
		t.Errorf("size: got %d, want %d", s, 5)
	}
}

func TestLeaves(t *testing.T) {
	root := newTree()

	want := []string{"A", "B", "C"}
	if got := names(tree.Leaves(root)); !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %q, want %q", got, want)
	}

	if root.Kind() != tree.Internal {
		t.Errorf("root kind: got %s, want %s", root.Kind(), tree.Internal)
	}
	if k := root.Children()[0].Kind(); k != tree.Leaf {
		t.Errorf("child kind: got %s, want %s", k, tree.Leaf)
	}
}

func TestFreeze(t *testing.T) {
	n := tree.New("GCA_1")
	tree.Freeze(n)
	tree.Freeze(n)
	if n.OriginalName() != "GCA_1" {
		t.Errorf("original name: got %q, want %q", n.OriginalName(), "GCA_1")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("set name on frozen node: expecting panic")
		}
	}()
	n.SetName("other")
}

func TestLength(t *testing.T) {
	n := tree.New("A")
	if n.Len() != 0 || n.HasLength() {
		t.Errorf("undefined length: got %f (%v), want 0", n.Len(), n.HasLength())
	}
	n.SetLength(math.NaN())
	if !math.IsNaN(n.Len()) {
		t.Errorf("NaN length: got %f", n.Len())
	}

	root := tree.New("R")
	root.Add(n)
	b := tree.New("B")
	b.SetLength(0.5)
	root.Add(b)
	if h := tree.Height(root); h != 0.5 {
		t.Errorf("height: got %f, want %f", h, 0.5)
	}
	if h := tree.Height(newTree()); math.Abs(h-0.7) > 1e-9 {
		t.Errorf("height: got %f, want %f", h, 0.7)
	}
}

func TestNewick(t *testing.T) {
	root := newTree()
	want := "(A:0.1,(B:0.2,C:0.3):0.4)Root;"
	if got := root.Newick(); got != want {
		t.Errorf("newick: got %q, want %q", got, want)
	}
}

func TestNameInner(t *testing.T) {
	root := tree.New("")
	in := tree.New("")
	in.Add(tree.New("B"))
	in.Add(tree.New("C"))
	root.Add(tree.New("A"))
	root.Add(in)

	cp := tree.NameInner(root, "Inner")
	if got := cp.Newick(); got != "(A,(B,C)Inner2)Inner1;" {
		t.Errorf("named inner: got %q", got)
	}
	if root.Name() != "" {
		t.Errorf("source tree modified: root name %q", root.Name())
	}
}

func TestJSON(t *testing.T) {
	root := newTree()

	var buf bytes.Buffer
	if err := root.WriteJSON(&buf); err != nil {
		t.Fatalf("unable to write JSON: %v", err)
	}
	t.Logf("output:\n%s\n", buf.String())

	nt, err := tree.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("unable to read JSON: %v", err)
	}
	if got, want := nt.Newick(), root.Newick(); got != want {
		t.Errorf("json: got %q, want %q", got, want)
	}
	if !nt.Frozen() {
		t.Errorf("json: tree not frozen")
	}
}

func TestJSONBranchset(t *testing.T) {
	in := `{"name": "R", "branchset": [{"name": "A"}, null, {"name": "B", "length": 1.5}]}`
	root, err := tree.ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read JSON: %v", err)
	}

	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("children: got %d, want %d", len(children), 3)
	}
	if children[1] != nil {
		t.Errorf("null child: got %v, want nil", children[1])
	}
	want := []string{"A", "B"}
	if got := names(tree.Leaves(root)); !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %q, want %q", got, want)
	}
	if got := root.Newick(); got != "(A,B:1.5)R;" {
		t.Errorf("newick: got %q", got)
	}
}
