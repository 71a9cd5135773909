// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genes implements a command to print
// the genes of a gene family
// in a PhyPan project.
package genes

import (
	"encoding/csv"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: "genes [--genomes] <project-file> <family>",
	Short: "print the genes of a gene family",
	Long: `
Command genes reads the gene families of a PhyPan project and prints the genes
of a family, in the order of the gene family file.

The first argument of the command is the name of the project file. The second
argument is the identifier of the family.

The output is a tab-delimited table with the genome, the locus tag, and the
product of each gene.

If the flag --genomes is set, only the genomes with at least one gene of the
family will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genomesFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genomesFlag, "genomes", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting family identifier")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Families()
	if err != nil {
		return err
	}
	fam := args[1]
	if _, ok := t[fam]; !ok {
		return fmt.Errorf("family %q not found in project %q", fam, args[0])
	}

	if genomesFlag {
		for _, g := range t.Genomes(fam) {
			fmt.Fprintf(c.Stdout(), "%s\n", g)
		}
		return nil
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"genome", "locus-tag", "product"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, g := range t.Genes(fam) {
		row := []string{
			g.Genome,
			g.LocusTag,
			g.Product,
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
