// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package set implements a command to set
// the display name of a taxon
// in a PhyPan project.
package set

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: `set [-f|--file <names-file>]
	<project-file> <taxon> <name>...`,
	Short: "set the display name of a taxon",
	Long: `
Command set sets the display name of a taxon in a PhyPan project. The name is
stored in the user names file of the project, so it replaces any name bundled
with the data.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the canonical name of the taxon (i.e., its name in the
tree). The rest of the arguments are joined to form the display name of the
taxon. Leading and trailing spaces are removed from the name. If the name is
empty, the names are not modified.

By default the names will be stored in the user names file currently defined
for the project. If the project does not have a user names file, a new one
will be created with the name 'user-names.json'. A different file name can be
defined using the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var namesFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().StringVar(&namesFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting taxon name")
	}
	if len(args) < 3 {
		return c.UsageError("expecting display name")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}
	m, err := p.UserNames()
	if err != nil {
		return err
	}

	id := strings.TrimSpace(args[1])
	m = m.Update(id, strings.Join(args[2:], " "))

	if namesFile == "" {
		namesFile = p.Path(project.UserNames)
		if namesFile == "" {
			namesFile = "user-names.json"
		}
	}
	if err := writeNames(m); err != nil {
		return err
	}

	p.Add(project.UserNames, namesFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func writeNames(m names.Map) (err error) {
	f, err := os.Create(namesFile)
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
		return fmt.Errorf("while writing to %q: %v", namesFile, err)
	}
	return nil
}
