// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genefam implements a table of gene families
// and its inversion into an index
// from genomes to gene families.
package genefam

import (
	"cmp"
	"slices"
	"strings"
)

// A Gene is an occurrence of a gene
// of a gene family
// in a genome.
type Gene struct {
	Genome   string `json:"genome-name"`
	LocusTag string `json:"locus-tag"`
	Product  string `json:"product"`
}

// A Table is a collection of gene families,
// keyed by the family identifier.
// Genes in a family are not required to be unique.
type Table map[string][]Gene

// Families returns the family identifiers
// of a table,
// sorted.
func (t Table) Families() []string {
	fams := make([]string, 0, len(t))
	for f := range t {
		fams = append(fams, f)
	}
	slices.Sort(fams)
	return fams
}

// FamilyName returns the short name of a family,
// i.e., the part of the family key
// before the first colon.
func FamilyName(key string) string {
	name, _, _ := strings.Cut(key, ":")
	return name
}

// ProductCount is the number of genes
// with a given product.
type ProductCount struct {
	Product string
	Count   int
}

// Products returns the number of genes
// of each product in a table,
// sorted in descending order by count,
// and by product name
// when the counts are equal.
func (t Table) Products() []ProductCount {
	counts := make(map[string]int)
	for _, genes := range t {
		for _, g := range genes {
			counts[g.Product]++
		}
	}

	pc := make([]ProductCount, 0, len(counts))
	for p, c := range counts {
		pc = append(pc, ProductCount{Product: p, Count: c})
	}
	slices.SortFunc(pc, func(a, b ProductCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Product, b.Product)
	})
	return pc
}

// An Index is a mapping of genomes
// to the set of gene families
// with at least one gene in the genome.
type Index map[string]map[string]bool

// BuildIndex builds a genome index from a table.
// Genes without a genome name are ignored.
func BuildIndex(t Table) Index {
	idx := make(Index)
	for fam, genes := range t {
		for _, g := range genes {
			if g.Genome == "" {
				continue
			}
			fs, ok := idx[g.Genome]
			if !ok {
				fs = make(map[string]bool)
				idx[g.Genome] = fs
			}
			fs[fam] = true
		}
	}
	return idx
}

// Genomes returns the genomes in an index,
// sorted.
func (idx Index) Genomes() []string {
	gs := make([]string, 0, len(idx))
	for g := range idx {
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}

// Families returns the families
// found in a genome,
// sorted.
func (idx Index) Families(genome string) []string {
	fs, ok := idx[genome]
	if !ok {
		return nil
	}
	fams := make([]string, 0, len(fs))
	for f := range fs {
		fams = append(fams, f)
	}
	slices.Sort(fams)
	return fams
}

// Has returns true if the given family
// is found in a genome.
func (idx Index) Has(genome, family string) bool {
	return idx[genome][family]
}

// Genes returns the genes of a family,
// in the order of the table.
func (t Table) Genes(family string) []Gene {
	return slices.Clone(t[family])
}

// Genomes returns the genomes
// with at least one gene of a family,
// sorted.
// Genes without a genome name are ignored.
func (t Table) Genomes(family string) []string {
	return genomes(t[family])
}

// A FamilyGene is a gene
// together with the key of its family.
type FamilyGene struct {
	Family string
	Gene
}

// GenesWithProduct returns the genes of a table
// with a given product,
// sorted by family,
// and by genome and locus tag
// within a family.
func (t Table) GenesWithProduct(product string) []FamilyGene {
	var genes []FamilyGene
	for fam, gs := range t {
		for _, g := range gs {
			if g.Product != product {
				continue
			}
			genes = append(genes, FamilyGene{Family: fam, Gene: g})
		}
	}
	slices.SortStableFunc(genes, func(a, b FamilyGene) int {
		if c := strings.Compare(a.Family, b.Family); c != 0 {
			return c
		}
		if c := strings.Compare(a.Genome, b.Genome); c != 0 {
			return c
		}
		return strings.Compare(a.LocusTag, b.LocusTag)
	})
	return genes
}

// ProductGenomes returns the genomes
// with at least one gene of a given product,
// sorted.
func (t Table) ProductGenomes(product string) []string {
	var gs []Gene
	for _, genes := range t {
		for _, g := range genes {
			if g.Product == product {
				gs = append(gs, g)
			}
		}
	}
	return genomes(gs)
}

func genomes(genes []Gene) []string {
	set := make(map[string]bool, len(genes))
	for _, g := range genes {
		if g.Genome == "" {
			continue
		}
		set[g.Genome] = true
	}
	gs := make([]string, 0, len(set))
	for g := range set {
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}
