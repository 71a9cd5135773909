// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxon

import (
	"fmt"
	"strings"

	"github.com/js-arias/phypan/tree"
)

// A Qualifier decides
// if a node of a tree is a taxon.
type Qualifier interface {
	Qualifies(n *tree.Node) bool
}

// Mode is the name of a qualification strategy.
type Mode string

// Valid modes.
const (
	// Prefix qualifies the nodes
	// with a name that starts with an accession prefix.
	Prefix Mode = "prefix"

	// Leaf qualifies every leaf of the tree.
	Leaf Mode = "leaf"
)

// DefaultPrefix is the accession prefix
// used when no prefix is given.
const DefaultPrefix = "GCA"

type byPrefix []string

func (bp byPrefix) Qualifies(n *tree.Node) bool {
	name := n.OriginalName()
	for _, p := range bp {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// ByPrefix returns a qualifier
// that accepts any node,
// leaf or internal,
// with a name that starts with one of the given prefixes.
// If no prefix is given,
// DefaultPrefix is used.
func ByPrefix(prefixes ...string) Qualifier {
	var bp byPrefix
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		bp = append(bp, p)
	}
	if len(bp) == 0 {
		bp = byPrefix{DefaultPrefix}
	}
	return bp
}

type byLeaf struct{}

func (byLeaf) Qualifies(n *tree.Node) bool {
	return n.IsLeaf()
}

// ByLeaf returns a qualifier
// that accepts every leaf.
func ByLeaf() Qualifier {
	return byLeaf{}
}

// NewQualifier returns the qualifier for a mode.
// The prefixes are only used with the Prefix mode.
func NewQualifier(m Mode, prefixes ...string) (Qualifier, error) {
	switch Mode(strings.ToLower(string(m))) {
	case Prefix:
		return ByPrefix(prefixes...), nil
	case Leaf:
		return ByLeaf(), nil
	}
	return nil, fmt.Errorf("unknown taxon mode %q", m)
}
