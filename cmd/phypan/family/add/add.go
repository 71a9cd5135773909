// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add gene families
// to a PhyPan project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/genefam"
	"github.com/js-arias/phypan/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <family-file>]
	<project-file> [<family-file>]`,
	Short: "add gene families to a PhyPan project",
	Long: `
Command add reads a gene family file and adds the families to a PhyPan
project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the gene family file, in JSON format. If no file is
given the families will be read from the standard input. See
'phypan help family-files' for a description of the file format.

By default the families will be stored in the gene family file currently
defined for the project. If the project does not have a gene family file, a
new one will be created with the name 'gene-families.json'. A different file
name can be defined using the flag --file, or -f. Any previous family of the
project will be replaced.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var famFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&famFile, "file", "", "")
	c.Flags().StringVar(&famFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	in := ""
	if len(args) > 1 && args[1] != "-" {
		in = args[1]
	}
	t, err := readFamilies(c.Stdin(), in)
	if err != nil {
		return err
	}

	if famFile == "" {
		famFile = p.Path(project.Families)
		if famFile == "" {
			famFile = "gene-families.json"
		}
	}
	if err := writeFamilies(t); err != nil {
		return err
	}

	p.Add(project.Families, famFile)
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

func readFamilies(r io.Reader, name string) (genefam.Table, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	t, err := genefam.ReadJSON(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

func writeFamilies(t genefam.Table) (err error) {
	f, err := os.Create(famFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := t.WriteJSON(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", famFile, err)
	}
	return nil
}
