// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxon is a metapackage for commands
// that dealt with the pangenome of the taxa.
package taxon

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/cmd/phypan/taxon/plot"
	"github.com/js-arias/phypan/cmd/phypan/taxon/stats"
)

var Command = &command.Command{
	Usage: "taxon <command> [<argument>...]",
	Short: "commands for taxon pangenome statistics",
}

func init() {
	Command.Add(plot.Command)
	Command.Add(stats.Command)
}
