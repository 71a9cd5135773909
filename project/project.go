// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of PhyPan project files.
//
// A PhyPan project is a tab-delimited file (TSV)
// that binds each input of an analysis
// (the tree, the gene families, the custom names,
// and the analysis parameters)
// to the path of the file that stores it.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// Gene family table,
	// a JSON object keyed by family
	// (see genefam.ReadJSON).
	Families Dataset = "families"

	// Display names distributed with the data,
	// a flat JSON object keyed by canonical name.
	Names Dataset = "names"

	// Analysis parameters
	// (see params.Read).
	// If not defined,
	// the defaults and the environment are used.
	Params Dataset = "params"

	// Phylogenetic tree in parenthetical (Newick) format.
	// A project has a single tree:
	// adding a Tree removes the TreeJSON dataset,
	// and if both are found in a file
	// the Newick tree is used.
	Tree Dataset = "tree"

	// Phylogenetic tree in hierarchical JSON format.
	// Adding a TreeJSON removes the Tree dataset.
	TreeJSON Dataset = "treejson"

	// Display names set by the user.
	// They take precedence over the Names dataset.
	UserNames Dataset = "usernames"
)

var datasets = []Dataset{
	Families,
	Names,
	Params,
	Tree,
	TreeJSON,
	UserNames,
}

// A Project is the set of dataset files
// of an analysis.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file.
//
// The file is a TSV with the following fields:
//
//   - dataset, the dataset keyword
//   - path, the path of the dataset file
//
// Keywords are case insensitive,
// an unknown keyword is an error,
// and rows with an empty path are ignored.
// Here is an example file:
//
//	# phypan project files
//	dataset	path
//	families	gene-families.json
//	names	names.json
//	params	params.tab
//	tree	species.nwk
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := New()
	p.name = name
	if err := p.read(f); err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return p, nil
}

func (p *Project) read(r io.Reader) error {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return fmt.Errorf("expecting field %q", h)
		}
	}

	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return fmt.Errorf("on row %d: %v", ln, err)
		}

		set := Dataset(strings.ToLower(strings.TrimSpace(row[fields["dataset"]])))
		if !slices.Contains(datasets, set) {
			return fmt.Errorf("on row %d: unknown dataset %q", ln, set)
		}
		path := strings.TrimSpace(row[fields["path"]])
		if path == "" {
			continue
		}
		p.paths[set] = path
	}
}

// Add sets the path of a dataset
// and returns the previous path.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	switch set {
	case Tree:
		delete(p.paths, TreeJSON)
	case TreeJSON:
		delete(p.paths, Tree)
	}
	p.paths[set] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project,
// sorted.
func (p *Project) Sets() []Dataset {
	sets := make([]Dataset, 0, len(p.paths))
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into its file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phypan project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return bw.Flush()
}
