// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pangenome implements the diffusivity of gene families
// and the classification of the gene families of a genome
// into singleton,
// dispensable,
// and core families.
//
// The diffusivity of a gene family
// is the number of distinct genomes
// in which the family is found.
package pangenome

import (
	"cmp"
	"slices"
	"strings"

	"github.com/js-arias/phypan/genefam"
)

// Diffusivity returns the number of distinct genomes
// with genes of the given family.
// Genes without a genome name are ignored,
// and unknown families have a diffusivity of 0.
func Diffusivity(family string, t genefam.Table) int {
	return diffusivity(t[family])
}

func diffusivity(genes []genefam.Gene) int {
	gs := make(map[string]bool, len(genes))
	for _, g := range genes {
		if g.Genome == "" {
			continue
		}
		gs[g.Genome] = true
	}
	return len(gs)
}

// FamilyDiffusivity is the diffusivity of a gene family.
type FamilyDiffusivity struct {
	// Family is the family key.
	Family string

	// Name is the short name of the family.
	Name string

	Diffusivity int
}

// Rank returns the diffusivity of each family in a table,
// in descending order.
// Families with the same diffusivity
// are sorted by their key.
func Rank(t genefam.Table) []FamilyDiffusivity {
	rank := make([]FamilyDiffusivity, 0, len(t))
	for f, genes := range t {
		rank = append(rank, FamilyDiffusivity{
			Family:      f,
			Name:        genefam.FamilyName(f),
			Diffusivity: diffusivity(genes),
		})
	}
	slices.SortFunc(rank, func(a, b FamilyDiffusivity) int {
		if c := cmp.Compare(b.Diffusivity, a.Diffusivity); c != 0 {
			return c
		}
		return strings.Compare(a.Family, b.Family)
	})
	return rank
}

// TotalGenomes returns the number of distinct genomes
// in a table.
func TotalGenomes(t genefam.Table) int {
	return len(genefam.BuildIndex(t))
}

// Thresholds are the diffusivity limits
// used to classify gene families.
type Thresholds struct {
	// A family with a diffusivity
	// less than or equal to Singleton
	// is a singleton family.
	Singleton int

	// A family with a diffusivity
	// greater than or equal to Core
	// is a core family.
	// If Core is 0,
	// the total number of genomes is used.
	Core int
}

// Defaults returns the default thresholds.
func Defaults() Thresholds {
	return Thresholds{
		Singleton: 1,
		Core:      0,
	}
}

func (th Thresholds) core(total int) int {
	if th.Core == 0 {
		return total
	}
	return th.Core
}

// Stats is the classification of the gene families
// of a genome.
type Stats struct {
	Singleton   int
	Dispensable int
	Core        int

	// Total is the number of families
	// in the genome.
	Total int
}

// add adds a family with the given diffusivity
// to the stats.
// The singleton check is done first,
// so the result is well defined
// even if the core threshold
// is not larger than the singleton threshold.
func (s *Stats) add(d, singleton, core int) {
	s.Total++
	switch {
	case d <= singleton:
		s.Singleton++
	case d >= core:
		s.Core++
	default:
		s.Dispensable++
	}
}

// Classify classifies the gene families
// found in a taxon.
// A taxon without families,
// or not found in the table,
// returns a zero value.
func Classify(taxon string, t genefam.Table, th Thresholds) Stats {
	idx := genefam.BuildIndex(t)
	core := th.core(len(idx))

	var s Stats
	for f := range idx[taxon] {
		s.add(Diffusivity(f, t), th.Singleton, core)
	}
	return s
}
