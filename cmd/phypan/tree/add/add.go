// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a tree
// to a PhyPan project.
package add

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/newick"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/tree"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>] [--json]
	<project-file> [<tree-file>]`,
	Short: "add a phylogenetic tree to a PhyPan project",
	Long: `
Command add reads a phylogenetic tree from a tree file, and adds the tree to a
PhyPan project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the tree file. If no file is given the tree will be
read from the standard input.

By default, the input is expected to be a tree in parenthetical (Newick)
format. Branch lengths that are not numbers are reported as warnings in the
standard error. To import a tree in hierarchical JSON format use the flag
--json. See 'phypan help tree-files' for a description of the tree formats.

By default the tree will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'tree.nwk' (or 'tree.json' if the --json flag is used). A
different tree file name can be defined using the flag --file, or -f. Any
previous tree of the project will be replaced. The tree is stored as found in
the input, so invalid branch lengths are reported again each time the tree is
read.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var jsonFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().BoolVar(&jsonFlag, "json", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	var r io.Reader = c.Stdin()
	in := "stdin"
	if len(args) > 1 && args[1] != "-" {
		in = args[1]
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, warns, err := readTree(r, jsonFlag)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", in, err)
	}
	for _, w := range warns {
		fmt.Fprintf(c.Stderr(), "WARNING: on file %q: %s\n", in, w)
	}

	set, def := project.Tree, "tree.nwk"
	if jsonFlag {
		set, def = project.TreeJSON, "tree.json"
	}
	if treeFile == "" {
		treeFile = p.Path(set)
		if treeFile == "" {
			treeFile = def
		}
	}

	if err := writeTree(treeFile, data); err != nil {
		return err
	}
	p.Add(set, treeFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

// readTree reads a tree and validates it.
// It returns the tree as found in the input.
func readTree(r io.Reader, isJSON bool) ([]byte, []newick.Warning, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	if isJSON {
		if _, err := tree.ReadJSON(bytes.NewReader(data)); err != nil {
			return nil, nil, err
		}
		return data, nil, nil
	}

	_, warns, err := newick.ParseWarn(string(data))
	if err != nil {
		return nil, nil, err
	}
	return data, warns, nil
}

func writeTree(name string, data []byte) (err error) {
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

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
