// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package importcmd implements a command to import
// custom taxon names
// into a PhyPan project.
package importcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/names"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: `import [-f|--file <names-file>] [--csv] [--replace]
	<project-file> [<names-file>...]`,
	Short: "import custom taxon names",
	Long: `
Command import reads one or more custom names files and adds the names to the
user names of a PhyPan project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more names files can be given as arguments. If no file is given the
names will be read from the standard input. By default the files are expected
to be in JSON format, except files with the ".csv" extension, that are read
as comma-delimited files. The flag --csv forces the comma-delimited format.
See 'phypan help names-files' for a description of the file formats.

Imported names replace any user name previously defined for the same taxon. If
the flag --replace is set, all previous user names will be removed.

By default the names will be stored in the user names file currently defined
for the project. If the project does not have a user names file, a new one
will be created with the name 'user-names.json'. A different file name can be
defined using the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var namesFile string
var csvFlag bool
var replaceFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().StringVar(&namesFile, "f", "", "")
	c.Flags().BoolVar(&csvFlag, "csv", false, "")
	c.Flags().BoolVar(&replaceFlag, "replace", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	var m names.Map
	if !replaceFlag {
		m, err = p.UserNames()
		if err != nil {
			return err
		}
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
		}
		nm, err := readNames(c.Stdin(), fn)
		if err != nil {
			return err
		}
		m = names.Merge(m, nm)
	}

	if namesFile == "" {
		namesFile = p.Path(project.UserNames)
		if namesFile == "" {
			namesFile = "user-names.json"
		}
	}
	if err := writeNames(m); err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "%d names in %q\n", m.Len(), namesFile)

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

func readNames(r io.Reader, name string) (names.Map, error) {
	isCSV := csvFlag
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return names.Map{}, err
		}
		defer f.Close()
		r = f
		if strings.ToLower(filepath.Ext(name)) == ".csv" {
			isCSV = true
		}
	} else {
		name = "stdin"
	}

	read := names.ReadJSON
	if isCSV {
		read = names.ReadCSV
	}
	m, err := read(r)
	if err != nil {
		return names.Map{}, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return m, nil
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
