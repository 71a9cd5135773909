// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the custom taxon names
// of a PhyPan project.
package export

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: `export [-o|--output <file>] [--fill]
	<project-file>`,
	Short: "export custom taxon names",
	Long: `
Command export writes the custom names of a PhyPan project as a JSON names
file. The exported names are the bundled names of the project, replaced by
the names defined by the user.

The argument of the command is the name of the project file.

If the flag --fill is set, the taxa of the tree without a custom name are
exported with their default display name.

By default the names will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var fillFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&fillFlag, "fill", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	bundled, err := p.Names()
	if err != nil {
		return err
	}
	user, err := p.UserNames()
	if err != nil {
		return err
	}
	m := names.Merge(bundled, user)

	if fillFlag {
		taxa, _, err := p.Taxa()
		if err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: %v\n", err)
		}
		m = m.Fill(taxa)
	}

	if output == "" {
		return m.WriteJSON(c.Stdout())
	}
	return writeNames(output, m)
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
