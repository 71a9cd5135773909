// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to set or print
// the analysis parameters of a PhyPan project.
package param

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phypan/params"
	"github.com/js-arias/phypan/project"
	"github.com/js-arias/phypan/taxon"
)

var Command = &command.Command{
	Usage: `param [-f|--file <params-file>]
	[--singleton <value>] [--core <value>]
	[--mode <mode>] [--prefix <prefix-list>]
	<project-file>`,
	Short: "set the analysis parameters of a project",
	Long: `
Command param sets the analysis parameters of a PhyPan project. If no
parameter is set, the current parameters are printed in the standard output.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The flag --singleton sets the maximum number of genomes of a singleton gene
family. The flag --core sets the minimum number of genomes of a core gene
family; use 0 to use the number of genomes of the gene family file.

The flag --mode sets the strategy used to detect the taxa of a tree. Valid
values are "prefix" (the default) and "leaf". The flag --prefix sets a
comma-separated list of accession prefixes used by the "prefix" mode.

By default the parameters will be stored in the parameters file currently
defined for the project. If the project does not have a parameters file, a
new one will be created with the name 'params.tab'. A different file name can
be defined using the flag --file, or -f.

See 'phypan help params' for a description of the parameters file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var paramFile string
var singleton int
var core int
var mode string
var prefix string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().StringVar(&paramFile, "f", "", "")
	c.Flags().IntVar(&singleton, "singleton", -1, "")
	c.Flags().IntVar(&core, "core", -1, "")
	c.Flags().StringVar(&mode, "mode", "", "")
	c.Flags().StringVar(&prefix, "prefix", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	ps, err := p.Params()
	if err != nil {
		return err
	}

	if singleton < 0 && core < 0 && mode == "" && prefix == "" {
		printParams(c, ps)
		return nil
	}

	if singleton >= 0 {
		if err := ps.SetSingleton(singleton); err != nil {
			return err
		}
	}
	if core >= 0 {
		if err := ps.SetCore(core); err != nil {
			return err
		}
	}
	if mode != "" {
		if err := ps.SetMode(taxon.Mode(mode)); err != nil {
			return err
		}
	}
	if prefix != "" {
		ps.SetPrefixes(strings.Split(prefix, ",")...)
	}

	if paramFile == "" {
		paramFile = p.Path(project.Params)
		if paramFile == "" {
			paramFile = "params.tab"
		}
	}
	ps.SetName(paramFile)
	if err := ps.Write(); err != nil {
		return err
	}

	p.Add(project.Params, paramFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func printParams(c *command.Command, ps *params.P) {
	fmt.Fprintf(c.Stdout(), "%s\t%d\n", params.Core, ps.Core())
	fmt.Fprintf(c.Stdout(), "%s\t%s\n", params.Mode, ps.Mode())
	fmt.Fprintf(c.Stdout(), "%s\t%s\n", params.Prefix, strings.Join(ps.Prefixes(), ","))
	fmt.Fprintf(c.Stdout(), "%s\t%d\n", params.Singleton, ps.Singleton())
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
