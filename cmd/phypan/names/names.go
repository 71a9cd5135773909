// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package names is a metapackage for commands
// that dealt with custom taxon names.
package names

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/cmd/phypan/names/export"
	"github.com/js-arias/phypan/cmd/phypan/names/importcmd"
	"github.com/js-arias/phypan/cmd/phypan/names/reset"
	"github.com/js-arias/phypan/cmd/phypan/names/set"
)

var Command = &command.Command{
	Usage: "names <command> [<argument>...]",
	Short: "commands for custom taxon names",
}

func init() {
	Command.Add(export.Command)
	Command.Add(importcmd.Command)
	Command.Add(reset.Command)
	Command.Add(set.Command)
}
