// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// the pangenome statistics of the taxa
// of a PhyPan project.
package stats

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/taxon"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `stats [--singleton <value>] [--core <value>]
	[--taxon <name>] [--sort]
	<project-file>`,
	Short: "print the pangenome statistics of the taxa",
	Long: `
Command stats reads the tree and the gene families of a PhyPan project and
prints, for each taxon of the tree, the number of gene families of the taxon
classified as singleton, dispensable, or core.

A family is singleton if its diffusivity (the number of different genomes in
which the family is found) is at most the singleton threshold, and core if its
diffusivity is at least the core threshold. Any other family is dispensable.

The argument of the command is the name of the project file. If the project
does not have a tree, all the genomes of the gene families are used as taxa.

By default the thresholds are read from the analysis parameters of the
project. The flags --singleton and --core set different thresholds. A core
threshold of 0 means the number of genomes in the gene families.

By default all taxa are printed, sorted by name. Use the flag --taxon with
the canonical name of a taxon to print only that taxon. If the flag --sort is
set, the taxa will be sorted by the total number of families.

The output is a tab-delimited table with the canonical name, the display name,
and the number of singleton, dispensable, core, and total families.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var singleton int
var core int
var taxonFlag string
var sortFlag bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&singleton, "singleton", -1, "")
	c.Flags().IntVar(&core, "core", -1, "")
	c.Flags().StringVar(&taxonFlag, "taxon", "", "")
	c.Flags().BoolVar(&sortFlag, "sort", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ts, m, err := Classify(c, p, singleton, core)
	if err != nil {
		return err
	}

	if taxonFlag != "" {
		var sel []pangenome.TaxonStats
		for _, s := range ts {
			if s.Taxon == taxonFlag {
				sel = append(sel, s)
			}
		}
		if len(sel) == 0 {
			return fmt.Errorf("taxon %q not found in project %q", taxonFlag, args[0])
		}
		ts = sel
	}
	if sortFlag {
		slices.SortStableFunc(ts, func(a, b pangenome.TaxonStats) int {
			return b.Total - a.Total
		})
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	header := []string{"taxon", "name", "singleton", "dispensable", "core", "total"}
	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range ts {
		row := []string{
			s.Taxon,
			m.Apply(s.Taxon),
			strconv.Itoa(s.Singleton),
			strconv.Itoa(s.Dispensable),
			strconv.Itoa(s.Core),
			strconv.Itoa(s.Total),
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

// Classify returns the pangenome statistics
// of each taxon of a project,
// and the display names of the taxa.
// Thresholds with negative values
// are read from the project parameters.
// Problems found when reading the tree
// are reported in the standard error of the command.
func Classify(c *command.Command, p *project.Project, singleton, core int) ([]pangenome.TaxonStats, names.Map, error) {
	t, err := p.Families()
	if err != nil {
		return nil, names.Map{}, err
	}
	eng, err := pangenome.NewEngine(t, 0)
	if err != nil {
		return nil, names.Map{}, err
	}

	var taxa []taxon.Taxon
	if p.Path(project.Tree) != "" || p.Path(project.TreeJSON) != "" {
		tx, warns, err := p.Taxa()
		if tx == nil && err != nil {
			return nil, names.Map{}, err
		}
		for _, w := range warns {
			fmt.Fprintf(c.Stderr(), "WARNING: %s\n", w)
		}
		if err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: %v\n", err)
		}
		taxa = tx
	} else {
		for _, g := range eng.Genomes() {
			taxa = append(taxa, taxon.Taxon{
				Name:         taxon.DisplayName(g),
				OriginalName: g,
			})
		}
		taxon.Sort(taxa)
	}

	ps, err := p.Params()
	if err != nil {
		return nil, names.Map{}, err
	}
	th := ps.Thresholds()
	if singleton >= 0 {
		th.Singleton = singleton
	}
	if core >= 0 {
		th.Core = core
	}

	m, err := p.CustomNames(taxa)
	if err != nil {
		return nil, names.Map{}, err
	}
	return eng.ClassifyAll(taxon.IDs(taxa), th), m, nil
}
