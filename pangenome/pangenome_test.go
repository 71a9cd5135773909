// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pangenome_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/js-arias/phypan/genefam"
	"github.com/js-arias/phypan/pangenome"
)

func gene(genome string) genefam.Gene {
	return genefam.Gene{Genome: genome, LocusTag: genome + "_tag", Product: "hypothetical protein"}
}

// newTable returns a table with five genomes.
// Genome G1 has a singleton family (F1)
// and a core family (F2).
func newTable() genefam.Table {
	return genefam.Table{
		"F1:x": {gene("G1")},
		"F2:y": {gene("G1"), gene("G2"), gene("G3"), gene("G4"), gene("G5")},
		"F3":   {gene("G2"), gene("G3"), gene("G3")},
		"F4":   {gene("G4"), gene("")},
		"F5":   {},
	}
}

func TestDiffusivity(t *testing.T) {
	tab := genefam.Table{
		"dup": {gene("G1"), gene("G1"), gene("G2")},
	}
	if d := pangenome.Diffusivity("dup", tab); d != 2 {
		t.Errorf("duplicated genome: got %d, want %d", d, 2)
	}

	tab = newTable()
	want := map[string]int{
		"F1:x":    1,
		"F2:y":    5,
		"F3":      2,
		"F4":      1,
		"F5":      0,
		"unknown": 0,
	}
	for f, w := range want {
		if d := pangenome.Diffusivity(f, tab); d != w {
			t.Errorf("diffusivity of %q: got %d, want %d", f, d, w)
		}
	}
}

func TestRank(t *testing.T) {
	want := []pangenome.FamilyDiffusivity{
		{Family: "F2:y", Name: "F2", Diffusivity: 5},
		{Family: "F3", Name: "F3", Diffusivity: 2},
		{Family: "F1:x", Name: "F1", Diffusivity: 1},
		{Family: "F4", Name: "F4", Diffusivity: 1},
		{Family: "F5", Name: "F5", Diffusivity: 0},
	}
	if got := pangenome.Rank(newTable()); !reflect.DeepEqual(got, want) {
		t.Errorf("rank: got %v, want %v", got, want)
	}
}

func TestTotalGenomes(t *testing.T) {
	if n := pangenome.TotalGenomes(newTable()); n != 5 {
		t.Errorf("total genomes: got %d, want %d", n, 5)
	}
	if n := pangenome.TotalGenomes(genefam.Table{}); n != 0 {
		t.Errorf("total genomes of empty table: got %d, want %d", n, 0)
	}
}

func TestClassify(t *testing.T) {
	tab := newTable()
	th := pangenome.Defaults()

	tests := map[string]pangenome.Stats{
		"G1":      {Singleton: 1, Core: 1, Total: 2},
		"G2":      {Dispensable: 1, Core: 1, Total: 2},
		"G4":      {Singleton: 1, Core: 1, Total: 2},
		"unknown": {},
	}
	for tx, want := range tests {
		if got := pangenome.Classify(tx, tab, th); got != want {
			t.Errorf("classify %q: got %+v, want %+v", tx, got, want)
		}
	}

	// explicit thresholds
	th = pangenome.Thresholds{Singleton: 2, Core: 3}
	want := pangenome.Stats{Singleton: 1, Core: 1, Total: 2}
	if got := pangenome.Classify("G2", tab, th); got != want {
		t.Errorf("classify G2 with %+v: got %+v, want %+v", th, got, want)
	}

	// overlapping thresholds: singleton is checked first
	th = pangenome.Thresholds{Singleton: 2, Core: 1}
	want = pangenome.Stats{Singleton: 1, Core: 1, Total: 2}
	if got := pangenome.Classify("G2", tab, th); got != want {
		t.Errorf("classify G2 with %+v: got %+v, want %+v", th, got, want)
	}
}

func TestEngine(t *testing.T) {
	tab := newTable()
	e, err := pangenome.NewEngine(tab, 2)
	if err != nil {
		t.Fatalf("unable to create engine: %v", err)
	}

	if n := e.TotalGenomes(); n != 5 {
		t.Errorf("engine total genomes: got %d, want %d", n, 5)
	}
	want := []string{"G1", "G2", "G3", "G4", "G5"}
	if got := e.Genomes(); !reflect.DeepEqual(got, want) {
		t.Errorf("engine genomes: got %v, want %v", got, want)
	}

	th := pangenome.Defaults()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, ts := range e.ClassifyAll(want, th) {
				if got := pangenome.Classify(ts.Taxon, tab, th); got != ts.Stats {
					t.Errorf("engine classify %q: got %+v, want %+v", ts.Taxon, ts.Stats, got)
				}
			}
		}()
	}
	wg.Wait()

	if _, err := pangenome.NewEngine(tab, -1); err == nil {
		t.Errorf("negative cache size: expecting error")
	}
}

func TestEngineDefaultCache(t *testing.T) {
	// more families than a small fixed cache would hold
	genomes := []string{"G1", "G2", "G3", "G4", "G5", "G6"}
	tab := make(genefam.Table)
	for i := 0; i < 5000; i++ {
		var genes []genefam.Gene
		for j, g := range genomes {
			if (i+j)%(i%len(genomes)+1) == 0 {
				genes = append(genes, gene(g))
			}
		}
		tab[fmt.Sprintf("fam%05d", i)] = genes
	}

	e, err := pangenome.NewEngine(tab, 0)
	if err != nil {
		t.Fatalf("unable to create engine: %v", err)
	}
	th := pangenome.Defaults()
	ts := e.ClassifyAll(genomes, th)
	if n := e.Cached(); n != len(tab) {
		t.Errorf("cached families: got %d, want %d", n, len(tab))
	}

	// a second pass uses the cached values
	for i, s := range e.ClassifyAll(genomes, th) {
		if s != ts[i] {
			t.Errorf("second pass on %q: got %+v, want %+v", s.Taxon, s.Stats, ts[i].Stats)
		}
	}
	for _, s := range ts[:2] {
		if want := pangenome.Classify(s.Taxon, tab, th); s.Stats != want {
			t.Errorf("engine classify %q: got %+v, want %+v", s.Taxon, s.Stats, want)
		}
	}

	if _, err := pangenome.NewEngine(genefam.Table{}, 0); err != nil {
		t.Errorf("engine of empty table: unexpected error: %v", err)
	}
}

func TestSummary(t *testing.T) {
	rank := pangenome.Rank(newTable())

	s := pangenome.Summarize(rank)
	if s.Families != 5 {
		t.Errorf("summary families: got %d, want %d", s.Families, 5)
	}
	if s.Mean != 1.8 {
		t.Errorf("summary mean: got %f, want %f", s.Mean, 1.8)
	}
	if s.Median != 1 {
		t.Errorf("summary median: got %f, want %f", s.Median, 1.0)
	}
	if s.Max != 5 {
		t.Errorf("summary max: got %d, want %d", s.Max, 5)
	}

	if s := pangenome.Summarize(nil); s != (pangenome.Summary{}) {
		t.Errorf("empty summary: got %+v", s)
	}

	want := []pangenome.Bin{
		{Diffusivity: 1, Families: 2},
		{Diffusivity: 2, Families: 1},
		{Diffusivity: 3, Families: 0},
		{Diffusivity: 4, Families: 0},
		{Diffusivity: 5, Families: 1},
	}
	if got := pangenome.Histogram(rank); !reflect.DeepEqual(got, want) {
		t.Errorf("histogram: got %v, want %v", got, want)
	}
}
