// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of the taxa in the tree of a PhyPan project.
package taxa

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/taxon"
)

var Command = &command.Command{
	Usage: `taxa [--mode <mode>] [--prefix <prefix-list>] [--canon]
	<project-file>`,
	Short: "print a list of tree taxa",
	Long: `
Command taxa reads the tree of a PhyPan project and prints the taxa of the
tree in the standard output, sorted by their display name. Each line contains
the canonical name of the taxon (its name in the tree) and its display name,
separated by a tab.

The argument of the command is the name of the project file.

By default the taxa are detected with the analysis parameters of the project.
The flag --mode sets a different strategy, either "prefix" or "leaf". The flag
--prefix sets a comma-separated list of accession prefixes used to detect the
taxa.

If the flag --canon is set, only the canonical names are printed.

Nodes that qualify as taxa but have no name are reported in the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var modeFlag string
var prefixFlag string
var canonFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&modeFlag, "mode", "", "")
	c.Flags().StringVar(&prefixFlag, "prefix", "", "")
	c.Flags().BoolVar(&canonFlag, "canon", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	root, warns, err := p.Tree()
	if err != nil {
		return err
	}
	for _, w := range warns {
		fmt.Fprintf(c.Stderr(), "WARNING: %s\n", w)
	}

	ps, err := p.Params()
	if err != nil {
		return err
	}
	if modeFlag != "" {
		if err := ps.SetMode(taxon.Mode(modeFlag)); err != nil {
			return err
		}
	}
	if prefixFlag != "" {
		ps.SetPrefixes(strings.Split(prefixFlag, ",")...)
	}

	taxa, err := taxon.Extract(root, ps.Qualifier())
	if err != nil {
		fmt.Fprintf(c.Stderr(), "WARNING: %v\n", err)
	}
	taxon.Sort(taxa)

	if canonFlag {
		for _, tx := range taxa {
			fmt.Fprintf(c.Stdout(), "%s\n", tx.OriginalName)
		}
		return nil
	}

	m, err := p.CustomNames(taxa)
	if err != nil {
		return err
	}
	for _, tx := range taxa {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", tx.OriginalName, m.Apply(tx.OriginalName))
	}
	return nil
}
