// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package summary implements a command to print
// a summary of the diffusivity
// of the gene families of a PhyPan project.
package summary

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: "summary [--hist] <project-file>",
	Short: "print a summary of family diffusivity",
	Long: `
Command summary reads the gene families of a PhyPan project and prints a
summary of the diffusivity of the families: the number of families and
genomes, the mean, the quartiles, and the maximum diffusivity.

The argument of the command is the name of the project file.

If the flag --hist is set, the number of families for each diffusivity value
will be printed as a tab-delimited table.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var histFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&histFlag, "hist", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Families()
	if err != nil {
		return err
	}

	rank := pangenome.Rank(t)
	if histFlag {
		fmt.Fprintf(c.Stdout(), "diffusivity\tfamilies\n")
		for _, b := range pangenome.Histogram(rank) {
			fmt.Fprintf(c.Stdout(), "%d\t%d\n", b.Diffusivity, b.Families)
		}
		return nil
	}

	s := pangenome.Summarize(rank)
	fmt.Fprintf(c.Stdout(), "families: %d\n", s.Families)
	fmt.Fprintf(c.Stdout(), "genomes: %d\n", pangenome.TotalGenomes(t))
	fmt.Fprintf(c.Stdout(), "diffusivity:\n")
	fmt.Fprintf(c.Stdout(), "\tmean: %.3f\n", s.Mean)
	fmt.Fprintf(c.Stdout(), "\tquartiles: %.1f %.1f %.1f\n", s.Q1, s.Median, s.Q3)
	fmt.Fprintf(c.Stdout(), "\tmax: %d\n", s.Max)
	return nil
}
