// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package jsoncmd implements a command to write
// the tree of a PhyPan project
// in hierarchical JSON format.
package jsoncmd

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/tree"
)

var Command = &command.Command{
	Usage: `json [-o|--output <file>] [--prefix <name>]
	[--newick] <project-file>`,
	Short: "write the tree in JSON format",
	Long: `
Command json reads the tree of a PhyPan project and writes it in hierarchical
JSON format. Internal nodes without a name are named with a prefix followed
by their position in a pre-order traversal of the tree.

The argument of the command is the name of the project file.

By default the prefix of the internal nodes is "Inner". Use the flag --prefix
to set a different prefix.

If the flag --newick is set, the tree with the named internal nodes will be
written in Newick format. Invalid branch lengths are not written.

By default the tree will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var prefix string
var newickFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&prefix, "prefix", "Inner", "")
	c.Flags().BoolVar(&newickFlag, "newick", false, "")
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
	named := tree.NameInner(root, prefix)

	if output == "" {
		return write(c.Stdout(), named)
	}
	return writeTree(output, named)
}

func write(w io.Writer, root *tree.Node) error {
	if newickFlag {
		_, err := fmt.Fprintf(w, "%s\n", root.Newick())
		return err
	}
	return root.WriteJSON(w)
}

func writeTree(name string, root *tree.Node) (err error) {
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

	if err := write(f, root); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
