// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with phylogenetic trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/cmd/phypan/tree/add"
	"github.com/js-arias/phypan/cmd/phypan/tree/export"
	"github.com/js-arias/phypan/cmd/phypan/tree/jsoncmd"
	"github.com/js-arias/phypan/cmd/phypan/tree/taxa"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(export.Command)
	Command.Add(jsoncmd.Command)
	Command.Add(taxa.Command)
}
