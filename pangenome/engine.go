// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pangenome

import (
	"github.com/hashicorp/golang-lru/v2"
	"github.com/js-arias/phypan/genefam"
)

// An Engine classifies the gene families
// of many taxa from a single table.
// The genome index is built once,
// and the diffusivity values are cached.
//
// An Engine is safe for concurrent use.
// The table must not be modified
// while the engine is in use.
type Engine struct {
	t     genefam.Table
	idx   genefam.Index
	cache *lru.Cache[string, int]
}

// NewEngine creates a new engine for a table.
// Size is the number of cached diffusivity values,
// if it is 0,
// the cache holds every family of the table.
func NewEngine(t genefam.Table, size int) (*Engine, error) {
	if size == 0 {
		size = max(len(t), 1)
	}
	cache, err := lru.New[string, int](size)
	if err != nil {
		return nil, err
	}
	return &Engine{
		t:     t,
		idx:   genefam.BuildIndex(t),
		cache: cache,
	}, nil
}

// Diffusivity returns the diffusivity of a family.
func (e *Engine) Diffusivity(family string) int {
	if d, ok := e.cache.Get(family); ok {
		return d
	}
	d := Diffusivity(family, e.t)
	e.cache.Add(family, d)
	return d
}

// Cached returns the number of families
// with a cached diffusivity value.
func (e *Engine) Cached() int {
	return e.cache.Len()
}

// Genomes returns the genomes
// found in the table of the engine,
// sorted.
func (e *Engine) Genomes() []string {
	return e.idx.Genomes()
}

// TotalGenomes returns the number of genomes
// found in the table of the engine.
func (e *Engine) TotalGenomes() int {
	return len(e.idx)
}

// Classify classifies the gene families
// found in a taxon.
func (e *Engine) Classify(taxon string, th Thresholds) Stats {
	core := th.core(len(e.idx))

	var s Stats
	for f := range e.idx[taxon] {
		s.add(e.Diffusivity(f), th.Singleton, core)
	}
	return s
}

// TaxonStats is the classification
// of the families of a taxon.
type TaxonStats struct {
	Taxon string
	Stats
}

// ClassifyAll classifies the gene families
// of each taxon in a list.
// The result keeps the order of the list.
func (e *Engine) ClassifyAll(taxa []string, th Thresholds) []TaxonStats {
	ts := make([]TaxonStats, 0, len(taxa))
	for _, tx := range taxa {
		ts = append(ts, TaxonStats{
			Taxon: tx,
			Stats: e.Classify(tx, th),
		})
	}
	return ts
}
