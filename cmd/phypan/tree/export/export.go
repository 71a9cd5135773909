// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the tree of a PhyPan project
// as a time-calibrated tree.
package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/tree"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `export [-o|--output <file>] [--name <tree-name>]
	[--age <value>] <project-file>`,
	Short: "export the tree as a time-calibrated tree file",
	Long: `
Command export reads the tree of a PhyPan project and writes it as a
tab-delimited time-calibrated tree file, the format used by PhyGeo and other
tools that use the timetree package.

The argument of the command is the name of the project file.

Branch lengths are interpreted as million years. By default the age of the
root will be calculated from the largest distance between any terminal and
the root. To set a different root age, use the flag --age, with a value in
million years. Missing or invalid branch lengths are exported as 0, and names
of internal nodes are ignored.

By default the tree will be named after the project file. Use the flag --name
to set a different name.

By default the tree will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

// millionYears is the number of years in a million years.
const millionYears = 1_000_000

var output string
var treeName string
var rootAge float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	root, _, err := p.Tree()
	if err != nil {
		return err
	}

	if treeName == "" {
		treeName = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	tc, err := timetree.Newick(strings.NewReader(timeNewick(root)), treeName, int64(rootAge*millionYears))
	if err != nil {
		return fmt.Errorf("on project %q: unable to build time tree: %v", args[0], err)
	}
	if t := tc.Tree(treeName); t != nil {
		fmt.Fprintf(c.Stderr(), "tree %q: %d terminals\n", treeName, len(t.Terms()))
	}

	if output == "" {
		return tc.TSV(c.Stdout())
	}
	return writeCollection(output, tc)
}

func writeCollection(name string, tc *timetree.Collection) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

// timeNewick returns a parenthetical representation of a tree
// with only terminal names,
// and a branch length on every node.
func timeNewick(root *tree.Node) string {
	var b strings.Builder
	writeNode(&b, root)
	b.WriteString(";\n")
	return b.String()
}

func writeNode(w io.StringWriter, n *tree.Node) {
	var children []*tree.Node
	for _, c := range n.Children() {
		if c != nil {
			children = append(children, c)
		}
	}
	if len(children) > 0 {
		w.WriteString("(")
		for i, c := range children {
			if i > 0 {
				w.WriteString(",")
			}
			writeNode(w, c)
		}
		w.WriteString(")")
	} else {
		w.WriteString(n.Name())
	}

	l := n.Len()
	if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
		l = 0
	}
	w.WriteString(":")
	w.WriteString(strconv.FormatFloat(l, 'f', -1, 64))
}
