// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxon_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phypan/newick"
	"github.com/js-arias/phypan/taxon"
	"github.com/js-arias/phypan/tree"
)

const genomeTree = "((GCA_0003_Escherichia_coli:0.1,GCA_0001_Bacillus:0.2)GCA_inner:0.3,(outgroup:0.4,GCA_0002_Vibrio:0.5):0.1)root;"

func TestExtractByPrefix(t *testing.T) {
	root, err := newick.Parse(genomeTree)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}

	taxa, err := taxon.Extract(root, taxon.ByPrefix())
	if err != nil {
		t.Fatalf("unexpected extraction error: %v", err)
	}

	want := []taxon.Taxon{
		{Name: "GCA 0001 Bacillus", OriginalName: "GCA_0001_Bacillus"},
		{Name: "GCA 0002 Vibrio", OriginalName: "GCA_0002_Vibrio"},
		{Name: "GCA 0003 Escherichia coli", OriginalName: "GCA_0003_Escherichia_coli"},
		{Name: "GCA inner", OriginalName: "GCA_inner"},
	}
	testTaxa(t, "by prefix", taxa, want)

	// extraction is deterministic
	again, _ := taxon.Extract(root, taxon.ByPrefix())
	testTaxa(t, "by prefix again", again, taxa)
}

func TestExtractByLeaf(t *testing.T) {
	root, err := newick.Parse(genomeTree)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}

	q, err := taxon.NewQualifier(taxon.Leaf)
	if err != nil {
		t.Fatalf("unable to build qualifier: %v", err)
	}
	taxa, err := taxon.Extract(root, q)
	if err != nil {
		t.Fatalf("unexpected extraction error: %v", err)
	}

	want := []string{
		"GCA_0001_Bacillus",
		"GCA_0002_Vibrio",
		"GCA_0003_Escherichia_coli",
		"outgroup",
	}
	if got := taxon.IDs(taxa); !reflect.DeepEqual(got, want) {
		t.Errorf("by leaf: got %q, want %q", got, want)
	}
}

func TestExtractPrefixes(t *testing.T) {
	root, err := newick.Parse("(GCF_2,GCA_1,XYZ_3);")
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}

	q, err := taxon.NewQualifier("PREFIX", "GCA", " GCF ")
	if err != nil {
		t.Fatalf("unable to build qualifier: %v", err)
	}
	taxa, _ := taxon.Extract(root, q)
	want := []string{"GCA_1", "GCF_2"}
	if got := taxon.IDs(taxa); !reflect.DeepEqual(got, want) {
		t.Errorf("prefixes: got %q, want %q", got, want)
	}

	if _, err := taxon.NewQualifier("other"); err == nil {
		t.Errorf("unknown mode: expecting error")
	}
}

func TestExtractJSON(t *testing.T) {
	in := `{
		"name": "Inner1",
		"children": [
			{"name": "beta_strain"},
			null,
			{"name": "Alpha_strain"},
			{"children": [{"name": "gamma"}, {}]}
		]
	}`
	root, err := tree.ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	taxa, err := taxon.Extract(root, taxon.ByLeaf())
	if err == nil {
		t.Fatalf("expecting extraction errors")
	}
	var ee *taxon.ExtractionError
	if !errors.As(err, &ee) {
		t.Errorf("got error %T, want *taxon.ExtractionError", err)
	}
	t.Logf("errors: %v", err)

	// locale-aware order ignores case
	want := []taxon.Taxon{
		{Name: "Alpha strain", OriginalName: "Alpha_strain"},
		{Name: "beta strain", OriginalName: "beta_strain"},
		{Name: "gamma", OriginalName: "gamma"},
	}
	testTaxa(t, "json", taxa, want)
}

func TestExtractNil(t *testing.T) {
	taxa, err := taxon.Extract(nil, taxon.ByLeaf())
	if err == nil {
		t.Errorf("nil tree: expecting error")
	}
	if len(taxa) != 0 {
		t.Errorf("nil tree: got %d taxa, want 0", len(taxa))
	}
}

func TestDisplayName(t *testing.T) {
	if got := taxon.DisplayName("GCA_000001405_Homo_sapiens"); got != "GCA 000001405 Homo sapiens" {
		t.Errorf("display name: got %q", got)
	}
}

func testTaxa(t testing.TB, name string, got, want []taxon.Taxon) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}
