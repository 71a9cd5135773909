// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyPan is a tool for the exploration of pangenomes
// on a phylogenetic tree.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/cmd/phypan/family"
	"github.com/js-arias/phypan/cmd/phypan/names"
	"github.com/js-arias/phypan/cmd/phypan/param"
	"github.com/js-arias/phypan/cmd/phypan/prj"
	"github.com/js-arias/phypan/cmd/phypan/taxon"
	"github.com/js-arias/phypan/cmd/phypan/tree"
)

var app = &command.Command{
	Usage: "phypan <command> [<argument>...]",
	Short: "a tool for pangenome exploration on phylogenetic trees",
}

func init() {
	app.Add(family.Command)
	app.Add(names.Command)
	app.Add(param.Command)
	app.Add(prj.Command)
	app.Add(taxon.Command)
	app.Add(tree.Command)
}

func main() {
	// default parameters can be set in a .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARNING: while reading .env file: %v\n", err)
	}
	app.Main()
}
