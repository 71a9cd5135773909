// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genefam_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phypan/genefam"
)

func newTable() genefam.Table {
	return genefam.Table{
		"abcA:1": {
			{Genome: "G1", LocusTag: "A_001", Product: "ABC transporter"},
			{Genome: "G1", LocusTag: "A_001", Product: "ABC transporter"},
			{Genome: "G2", LocusTag: "B_013", Product: "ABC transporter"},
		},
		"recA:2": {
			{Genome: "G2", LocusTag: "B_100", Product: "recombinase A"},
			{Genome: "", LocusTag: "X_001", Product: "recombinase A"},
		},
		"empty": {},
	}
}

func TestIndex(t *testing.T) {
	idx := genefam.BuildIndex(newTable())
	testIndex(t, "index", idx)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := newTable().WriteJSON(&buf); err != nil {
		t.Fatalf("unable to write JSON: %v", err)
	}
	t.Logf("output:\n%s\n", buf.String())

	nt, err := genefam.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("unable to read JSON: %v", err)
	}
	if !reflect.DeepEqual(nt, newTable()) {
		t.Errorf("json: got %v, want %v", nt, newTable())
	}
	testIndex(t, "json", genefam.BuildIndex(nt))
}

func TestReadJSONExtraFields(t *testing.T) {
	in := `{"fam": [{"genome-name": "G1", "locus-tag": "L1", "product": "p", "contig": "c1"}]}`
	tab, err := genefam.ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read JSON: %v", err)
	}
	want := genefam.Table{"fam": {{Genome: "G1", LocusTag: "L1", Product: "p"}}}
	if !reflect.DeepEqual(tab, want) {
		t.Errorf("extra fields: got %v, want %v", tab, want)
	}

	if _, err := genefam.ReadJSON(strings.NewReader(`[1, 2]`)); err == nil {
		t.Errorf("invalid document: expecting error")
	}
}

func TestProducts(t *testing.T) {
	want := []genefam.ProductCount{
		{Product: "ABC transporter", Count: 3},
		{Product: "recombinase A", Count: 2},
	}
	if got := newTable().Products(); !reflect.DeepEqual(got, want) {
		t.Errorf("products: got %v, want %v", got, want)
	}
}

func TestFamilies(t *testing.T) {
	want := []string{"abcA:1", "empty", "recA:2"}
	if got := newTable().Families(); !reflect.DeepEqual(got, want) {
		t.Errorf("families: got %v, want %v", got, want)
	}

	if got := genefam.FamilyName("abcA:1"); got != "abcA" {
		t.Errorf("family name: got %q, want %q", got, "abcA")
	}
	if got := genefam.FamilyName("plain"); got != "plain" {
		t.Errorf("family name: got %q, want %q", got, "plain")
	}
}

func TestGenes(t *testing.T) {
	tab := newTable()

	want := []genefam.Gene{
		{Genome: "G2", LocusTag: "B_100", Product: "recombinase A"},
		{Genome: "", LocusTag: "X_001", Product: "recombinase A"},
	}
	genes := tab.Genes("recA:2")
	if !reflect.DeepEqual(genes, want) {
		t.Errorf("genes: got %v, want %v", genes, want)
	}
	genes[0].LocusTag = "changed"
	if tab["recA:2"][0].LocusTag != "B_100" {
		t.Errorf("genes: table modified by the returned slice")
	}
	if got := tab.Genes("unknown"); len(got) != 0 {
		t.Errorf("genes of unknown family: got %v", got)
	}

	genomes := map[string][]string{
		"abcA:1":  {"G1", "G2"},
		"recA:2":  {"G2"},
		"empty":   {},
		"unknown": {},
	}
	for f, w := range genomes {
		if got := tab.Genomes(f); !reflect.DeepEqual(got, w) {
			t.Errorf("genomes of %q: got %v, want %v", f, got, w)
		}
	}
}

func TestGenesWithProduct(t *testing.T) {
	tab := newTable()
	tab["zupA:3"] = []genefam.Gene{
		{Genome: "G3", LocusTag: "C_007", Product: "ABC transporter"},
	}

	want := []genefam.FamilyGene{
		{Family: "abcA:1", Gene: genefam.Gene{Genome: "G1", LocusTag: "A_001", Product: "ABC transporter"}},
		{Family: "abcA:1", Gene: genefam.Gene{Genome: "G1", LocusTag: "A_001", Product: "ABC transporter"}},
		{Family: "abcA:1", Gene: genefam.Gene{Genome: "G2", LocusTag: "B_013", Product: "ABC transporter"}},
		{Family: "zupA:3", Gene: genefam.Gene{Genome: "G3", LocusTag: "C_007", Product: "ABC transporter"}},
	}
	if got := tab.GenesWithProduct("ABC transporter"); !reflect.DeepEqual(got, want) {
		t.Errorf("genes with product: got %v, want %v", got, want)
	}
	if got := tab.GenesWithProduct("unknown"); len(got) != 0 {
		t.Errorf("genes with unknown product: got %v", got)
	}

	if got := tab.ProductGenomes("ABC transporter"); !reflect.DeepEqual(got, []string{"G1", "G2", "G3"}) {
		t.Errorf("product genomes: got %v", got)
	}
	if got := tab.ProductGenomes("recombinase A"); !reflect.DeepEqual(got, []string{"G2"}) {
		t.Errorf("product genomes: got %v", got)
	}
}

func testIndex(t testing.TB, name string, idx genefam.Index) {
	t.Helper()

	if got := idx.Genomes(); !reflect.DeepEqual(got, []string{"G1", "G2"}) {
		t.Errorf("%s: genomes: got %v, want %v", name, got, []string{"G1", "G2"})
	}

	fams := map[string][]string{
		"G1": {"abcA:1"},
		"G2": {"abcA:1", "recA:2"},
		"G3": nil,
	}
	for g, w := range fams {
		if got := idx.Families(g); !reflect.DeepEqual(got, w) {
			t.Errorf("%s: families of %q: got %v, want %v", name, g, got, w)
		}
	}

	if !idx.Has("G2", "recA:2") {
		t.Errorf("%s: expecting family %q in genome %q", name, "recA:2", "G2")
	}
	if idx.Has("G1", "recA:2") {
		t.Errorf("%s: unexpected family %q in genome %q", name, "recA:2", "G1")
	}
}
