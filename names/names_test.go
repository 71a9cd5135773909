// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package names_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/taxon"
)

var taxa = []taxon.Taxon{
	{Name: "G1 default", OriginalName: "G1_default"},
	{Name: "G2 default", OriginalName: "G2_default"},
	{Name: "G3 default", OriginalName: "G3_default"},
}

func TestMergePrecedence(t *testing.T) {
	defaults := names.Defaults(taxa)
	file := names.New(map[string]string{
		"G1_default": "G1 from file",
		"G2_default": "G2 from file",
	})
	user := names.New(map[string]string{
		"G1_default": "G1 from user",
	})

	m := names.Merge(defaults, file, user)
	want := map[string]string{
		"G1_default": "G1 from user",
		"G2_default": "G2 from file",
		"G3_default": "G3 default",
		"G4_unknown": "G4 unknown",
	}
	for id, w := range want {
		if got := m.Apply(id); got != w {
			t.Errorf("apply %q: got %q, want %q", id, got, w)
		}
	}

	// sources are not modified
	if got := file.Apply("G1_default"); got != "G1 from file" {
		t.Errorf("file source modified: got %q", got)
	}
	if m.Len() != 3 {
		t.Errorf("merged length: got %d, want %d", m.Len(), 3)
	}
}

func TestUpdate(t *testing.T) {
	var m names.Map
	nm := m.Update("G1_default", "  Custom  ")
	if got := nm.Apply("G1_default"); got != "Custom" {
		t.Errorf("update: got %q, want %q", got, "Custom")
	}
	if _, ok := m.Lookup("G1_default"); ok {
		t.Errorf("update modified the source map")
	}

	same := nm.Update("G1_default", "   ")
	if got := same.Apply("G1_default"); got != "Custom" {
		t.Errorf("blank update: got %q, want %q", got, "Custom")
	}

	rm := nm.Remove("G1_default")
	if got := rm.Apply("G1_default"); got != "G1 default" {
		t.Errorf("remove: got %q, want %q", got, "G1 default")
	}
	if got := nm.Apply("G1_default"); got != "Custom" {
		t.Errorf("remove modified the source map: got %q", got)
	}

	resolve := nm.Resolver()
	if got := resolve("G1_default"); got != "Custom" {
		t.Errorf("resolver: got %q, want %q", got, "Custom")
	}
}

func TestFill(t *testing.T) {
	m := names.New(map[string]string{"G2_default": "Second"})
	f := m.Fill(taxa)

	want := []string{"G1_default", "G2_default", "G3_default"}
	if got := f.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("fill ids: got %v, want %v", got, want)
	}
	if got := f.Apply("G2_default"); got != "Second" {
		t.Errorf("fill kept name: got %q, want %q", got, "Second")
	}
}

func TestJSON(t *testing.T) {
	m := names.New(map[string]string{
		"GCA_000005845": "Escherichia coli K-12",
		"GCA_000009045": "Bacillus subtilis 168",
	})

	var buf bytes.Buffer
	if err := m.WriteJSON(&buf); err != nil {
		t.Fatalf("unable to write JSON: %v", err)
	}
	t.Logf("output:\n%s\n", buf.String())

	nm, err := names.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("unable to read JSON: %v", err)
	}
	if !reflect.DeepEqual(nm.Pairs(), m.Pairs()) {
		t.Errorf("json: got %v, want %v", nm.Pairs(), m.Pairs())
	}
}

func TestCSV(t *testing.T) {
	in := `# custom taxon names
GCA_000005845, Escherichia coli K-12
GCA_000009045,Bacillus subtilis 168,extra

GCA_000000001,
lonely
`
	m, err := names.ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read CSV: %v", err)
	}

	want := map[string]string{
		"GCA_000005845": "Escherichia coli K-12",
		"GCA_000009045": "Bacillus subtilis 168",
	}
	if !reflect.DeepEqual(m.Pairs(), want) {
		t.Errorf("csv: got %v, want %v", m.Pairs(), want)
	}
}
