// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/phypan/genefam"
	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/newick"
	"github.com/js-arias/phypan/params"
	"github.com/js-arias/phypan/taxon"
	"github.com/js-arias/phypan/tree"
)

// Families reads a gene family table
// as defined in a project.
func (p *Project) Families() (genefam.Table, error) {
	name := p.Path(Families)
	if name == "" {
		return nil, fmt.Errorf("gene families not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := genefam.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Tree reads the phylogenetic tree
// as defined in a project.
// If both a Newick and a JSON tree are defined,
// the Newick tree is used.
// The returned warnings are the problems found
// on the branch lengths of a Newick tree.
func (p *Project) Tree() (*tree.Node, []newick.Warning, error) {
	if name := p.Path(Tree); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		root, warns, err := newick.Read(f)
		if err != nil {
			return nil, nil, fmt.Errorf("on file %q: %v", name, err)
		}
		return root, warns, nil
	}

	name := p.Path(TreeJSON)
	if name == "" {
		return nil, nil, fmt.Errorf("tree not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	root, err := tree.ReadJSON(f)
	if err != nil {
		return nil, nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return root, nil, nil
}

// Names reads the bundled custom names
// as defined in a project.
// If the names are not defined,
// it returns an empty map.
func (p *Project) Names() (names.Map, error) {
	return p.readNames(Names)
}

// UserNames reads the custom names defined by the user
// as defined in a project.
// If the names are not defined,
// it returns an empty map.
func (p *Project) UserNames() (names.Map, error) {
	return p.readNames(UserNames)
}

func (p *Project) readNames(set Dataset) (names.Map, error) {
	name := p.Path(set)
	if name == "" {
		return names.Map{}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return names.Map{}, err
	}
	defer f.Close()

	m, err := names.ReadJSON(f)
	if err != nil {
		return names.Map{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// CustomNames returns the display names
// of a set of taxa,
// merging the default names,
// the bundled names,
// and the names defined by the user.
func (p *Project) CustomNames(taxa []taxon.Taxon) (names.Map, error) {
	bundled, err := p.Names()
	if err != nil {
		return names.Map{}, err
	}
	user, err := p.UserNames()
	if err != nil {
		return names.Map{}, err
	}
	return names.Merge(names.Defaults(taxa), bundled, user), nil
}

// Params reads the analysis parameters
// as defined in a project.
// If the parameters are not defined,
// it returns the default parameters,
// modified by the environment variables.
func (p *Project) Params() (*params.P, error) {
	name := p.Path(Params)
	if name == "" {
		ps := params.New("")
		if err := ps.Env(); err != nil {
			return nil, err
		}
		return ps, nil
	}

	ps, err := params.Read(name)
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// Taxa returns the taxa of the project tree,
// detected with the project parameters,
// and sorted by display name.
// If there are extraction errors,
// the taxa are returned together with the error.
func (p *Project) Taxa() ([]taxon.Taxon, []newick.Warning, error) {
	root, warns, err := p.Tree()
	if err != nil {
		return nil, nil, err
	}
	ps, err := p.Params()
	if err != nil {
		return nil, warns, err
	}

	taxa, err := taxon.Extract(root, ps.Qualifier())
	return taxa, warns, err
}
