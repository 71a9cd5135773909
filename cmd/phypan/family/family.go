// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package family is a metapackage for commands
// that dealt with gene families.
package family

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/cmd/phypan/family/add"
	"github.com/js-arias/phypan/cmd/phypan/family/genes"
	"github.com/js-arias/phypan/cmd/phypan/family/plot"
	"github.com/js-arias/phypan/cmd/phypan/family/products"
	"github.com/js-arias/phypan/cmd/phypan/family/rank"
	"github.com/js-arias/phypan/cmd/phypan/family/summary"
)

var Command = &command.Command{
	Usage: "family <command> [<argument>...]",
	Short: "commands for gene families",
}

func init() {
	Command.Add(add.Command)
	Command.Add(genes.Command)
	Command.Add(plot.Command)
	Command.Add(products.Command)
	Command.Add(rank.Command)
	Command.Add(summary.Command)
}
