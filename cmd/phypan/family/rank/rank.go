// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rank implements a command to print
// the gene families of a PhyPan project
// ranked by diffusivity.
package rank

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: "rank [--top <number>] <project-file>",
	Short: "print gene families ranked by diffusivity",
	Long: `
Command rank reads the gene families of a PhyPan project and prints the
families sorted by diffusivity, i.e., the number of different genomes in which
the family is found. Families with the same diffusivity are sorted by their
identifier.

The output is a tab-delimited table with the family identifier, the short name
of the family, and its diffusivity.

The argument of the command is the name of the project file.

By default all families are printed. Use the flag --top to print only the
given number of families.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var top int

func setFlags(c *command.Command) {
	c.Flags().IntVar(&top, "top", 0, "")
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
	if top > 0 && top < len(rank) {
		rank = rank[:top]
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"family", "name", "diffusivity"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, f := range rank {
		row := []string{
			f.Family,
			f.Name,
			strconv.Itoa(f.Diffusivity),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
