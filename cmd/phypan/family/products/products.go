// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package products implements a command to print
// the gene products of a PhyPan project.
package products

import (
	"encoding/csv"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/genefam"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: `products [--top <number>] [--empty]
	[--product <name>] [--genomes]
	<project-file>`,
	Short: "print the gene products",
	Long: `
Command products reads the gene families of a PhyPan project and prints the
number of genes of each gene product, sorted from the most to the least
common product.

The argument of the command is the name of the project file.

By default all products are printed. Use the flag --top to print only the
given number of products. Genes without a product annotation are ignored,
unless the flag --empty is set.

If the flag --product is set, the genes with the given product are printed
as a tab-delimited table with the family, the genome, and the locus tag of
each gene. If the flag --genomes is also set, only the genomes with at least
one gene of the product will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var top int
var emptyFlag bool
var product string
var genomesFlag bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&top, "top", 0, "")
	c.Flags().BoolVar(&emptyFlag, "empty", false, "")
	c.Flags().StringVar(&product, "product", "", "")
	c.Flags().BoolVar(&genomesFlag, "genomes", false, "")
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

	if product != "" {
		return printGenes(c, t)
	}

	fmt.Fprintf(c.Stdout(), "product\tgenes\n")
	var n int
	for _, pc := range t.Products() {
		if pc.Product == "" && !emptyFlag {
			continue
		}
		if top > 0 && n >= top {
			break
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", pc.Product, pc.Count)
		n++
	}
	return nil
}

func printGenes(c *command.Command, t genefam.Table) error {
	if genomesFlag {
		for _, g := range t.ProductGenomes(product) {
			fmt.Fprintf(c.Stdout(), "%s\n", g)
		}
		return nil
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"family", "genome", "locus-tag"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, g := range t.GenesWithProduct(product) {
		row := []string{
			g.Family,
			g.Genome,
			g.LocusTag,
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
