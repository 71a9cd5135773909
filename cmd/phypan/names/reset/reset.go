// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reset implements a command to remove
// user defined taxon names
// from a PhyPan project.
package reset

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: "reset <project-file> [<taxon>...]",
	Short: "remove user defined taxon names",
	Long: `
Command reset removes the display names defined by the user in a PhyPan
project. After a reset, the taxon will use the name bundled with the data, or
its default display name.

The first argument of the command is the name of the project file.

The following arguments are the canonical names of the taxa to be reset. If
no taxon is given, all user defined names will be removed.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	name := p.Path(project.UserNames)
	if name == "" {
		return nil
	}

	var m names.Map
	if len(args) > 1 {
		m, err = p.UserNames()
		if err != nil {
			return err
		}
		for _, id := range args[1:] {
			if _, ok := m.Lookup(id); !ok {
				fmt.Fprintf(c.Stderr(), "WARNING: taxon %q without user name\n", id)
				continue
			}
			m = m.Remove(id)
		}
	}

	return writeNames(name, m)
}

func writeNames(name string, m names.Map) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.WriteJSON(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
