// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/genefam"
	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/tree"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PhyPan project and prints the information of the different
project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ps, err := p.Params()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "Parameters:\n")
	if name := p.Path(project.Params); name != "" {
		fmt.Fprintf(c.Stdout(), "\tfile: %s\n", name)
	}
	fmt.Fprintf(c.Stdout(), "\tmode: %s\n", ps.Mode())
	fmt.Fprintf(c.Stdout(), "\tprefixes: %s\n", strings.Join(ps.Prefixes(), ","))
	fmt.Fprintf(c.Stdout(), "\tsingleton: %d\n", ps.Singleton())
	fmt.Fprintf(c.Stdout(), "\tcore: %d\n", ps.Core())
	fmt.Fprintf(c.Stdout(), "\n")

	if p.Path(project.Tree) != "" || p.Path(project.TreeJSON) != "" {
		if err := readTree(c.Stdout(), p); err != nil {
			return err
		}
	}

	if p.Path(project.Families) != "" {
		t, err := p.Families()
		if err != nil {
			return err
		}
		printFamilies(c.Stdout(), p.Path(project.Families), t)
	}

	for _, set := range []project.Dataset{project.Names, project.UserNames} {
		name := p.Path(set)
		if name == "" {
			continue
		}
		m, err := p.Names()
		if set == project.UserNames {
			m, err = p.UserNames()
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "Custom names [%s]:\n", set)
		fmt.Fprintf(c.Stdout(), "\tfile: %s\n", name)
		fmt.Fprintf(c.Stdout(), "\tnames: %d\n", m.Len())
		fmt.Fprintf(c.Stdout(), "\n")
	}

	return nil
}

func readTree(w io.Writer, p *project.Project) error {
	taxa, warns, err := p.Taxa()
	if err != nil && taxa == nil {
		return err
	}
	root, _, rErr := p.Tree()
	if rErr != nil {
		return rErr
	}

	name := p.Path(project.Tree)
	if name == "" {
		name = p.Path(project.TreeJSON)
	}
	fmt.Fprintf(w, "Tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tnodes: %d\n", tree.Size(root))
	fmt.Fprintf(w, "\tterminals: %d\n", len(tree.Leaves(root)))
	fmt.Fprintf(w, "\ttaxa: %d\n", len(taxa))
	fmt.Fprintf(w, "\theight: %.6f\n", tree.Height(root))
	if len(warns) > 0 {
		fmt.Fprintf(w, "\tinvalid branch lengths: %d\n", len(warns))
	}
	if err != nil {
		fmt.Fprintf(w, "\textraction errors: %v\n", err)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printFamilies(w io.Writer, name string, t genefam.Table) {
	var genes int
	for _, g := range t {
		genes += len(g)
	}

	fmt.Fprintf(w, "Gene families:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tfamilies: %d\n", len(t))
	fmt.Fprintf(w, "\tgenes: %d\n", genes)
	fmt.Fprintf(w, "\tgenomes: %d\n", pangenome.TotalGenomes(t))
	fmt.Fprintf(w, "\n")
}
