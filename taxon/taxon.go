// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxon extracts the taxa
// (i.e., the sequenced genomes)
// from a phylogenetic tree.
package taxon

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/phypan/tree"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// A Taxon is a terminal of a tree
// that represents a genome.
type Taxon struct {
	// Name is the display form of the taxon name.
	Name string

	// OriginalName is the canonical name,
	// used as the identity of the taxon.
	OriginalName string
}

// DisplayName returns the default display form
// of a canonical taxon name.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// An ExtractionError is produced
// when a malformed node is found
// while extracting the taxa of a tree.
type ExtractionError struct {
	// Path is the position of the node
	// as a sequence of child indexes
	// starting at the root.
	Path string

	Msg string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("taxon: node %s: %s", e.Path, e.Msg)
}

// Extract returns the taxa of a tree
// sorted by their display name.
//
// Malformed nodes do not stop the extraction:
// they are reported as ExtractionError values
// joined in the returned error,
// and the taxa collected from the rest of the tree
// are returned.
func Extract(root *tree.Node, q Qualifier) ([]Taxon, error) {
	if root == nil {
		return nil, &ExtractionError{Path: "root", Msg: "empty tree"}
	}

	var taxa []Taxon
	var errs []error
	var visit func(n *tree.Node, path string)
	visit = func(n *tree.Node, path string) {
		if q.Qualifies(n) {
			name := n.OriginalName()
			if name == "" {
				errs = append(errs, &ExtractionError{Path: path, Msg: "terminal without name"})
			} else {
				taxa = append(taxa, Taxon{
					Name:         DisplayName(name),
					OriginalName: name,
				})
			}
		}
		for i, c := range n.Children() {
			cp := path + "/" + strconv.Itoa(i)
			if c == nil {
				errs = append(errs, &ExtractionError{Path: cp, Msg: "null child"})
				continue
			}
			visit(c, cp)
		}
	}
	visit(root, "root")

	Sort(taxa)
	return taxa, errors.Join(errs...)
}

// Sort sorts a list of taxa
// by display name,
// using a locale-aware collation.
// Taxa with the same display name
// are sorted by their canonical name.
func Sort(taxa []Taxon) {
	// a collator is not safe for concurrent use
	col := collate.New(language.Und)
	slices.SortFunc(taxa, func(a, b Taxon) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.OriginalName, b.OriginalName)
	})
}

// IDs returns the canonical names
// of a list of taxa.
func IDs(taxa []Taxon) []string {
	ids := make([]string, 0, len(taxa))
	for _, tx := range taxa {
		ids = append(ids, tx.OriginalName)
	}
	return ids
}
