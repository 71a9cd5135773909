// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package params implements reading and writing
// of the PhyPan analysis parameters.
package params

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/taxon"
)

// Param is a keyword to identify
// the type of parameter in a parameters file.
type Param string

// Valid parameters
const (
	// Core is the minimum diffusivity
	// of a core gene family.
	// A value of 0 means the number of genomes.
	Core Param = "core"

	// Mode is the strategy used to detect
	// the taxa of a tree.
	Mode Param = "mode"

	// Prefix is a comma-separated list
	// of accession prefixes
	// used to detect the taxa of a tree.
	Prefix Param = "prefix"

	// Singleton is the maximum diffusivity
	// of a singleton gene family.
	Singleton Param = "singleton"
)

// Environment variables
// that override the default parameters.
const (
	EnvCore      = "PHYPAN_CORE"
	EnvMode      = "PHYPAN_MODE"
	EnvPrefix    = "PHYPAN_PREFIX"
	EnvSingleton = "PHYPAN_SINGLETON"
)

// P represents a collection of analysis parameters.
type P struct {
	name string // file name

	singleton int
	core      int

	mode     taxon.Mode
	prefixes []string
}

// New creates a new parameter collection
// with the default values.
func New(name string) *P {
	return &P{
		name:      name,
		singleton: 1,
		core:      0,
		mode:      taxon.Prefix,
		prefixes:  []string{taxon.DefaultPrefix},
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameters file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# phypan analysis parameters
//	parameter	value
//	core	0
//	mode	prefix
//	prefix	GCA,GCF
//	singleton	1
func Read(name string) (*P, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := New(name)
	if err := p.read(f); err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return p, nil
}

func (p *P) read(r io.Reader) error {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return fmt.Errorf("expecting field %q", h)
		}
	}

	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		param := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		if err := p.set(param, row[fields[f]]); err != nil {
			return fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}
	}
	return nil
}

func (p *P) set(param Param, v string) error {
	switch param {
	case Core:
		c, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		return p.SetCore(c)
	case Mode:
		return p.SetMode(taxon.Mode(v))
	case Prefix:
		p.SetPrefixes(strings.Split(v, ",")...)
	case Singleton:
		s, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		return p.SetSingleton(s)
	}
	return nil
}

// Env sets the parameters defined
// in the environment variables.
func (p *P) Env() error {
	vars := []struct {
		env   string
		param Param
	}{
		{EnvCore, Core},
		{EnvMode, Mode},
		{EnvPrefix, Prefix},
		{EnvSingleton, Singleton},
	}
	for _, v := range vars {
		val, ok := os.LookupEnv(v.env)
		if !ok || strings.TrimSpace(val) == "" {
			continue
		}
		if err := p.set(v.param, val); err != nil {
			return fmt.Errorf("environment variable %s: %v", v.env, err)
		}
	}
	return nil
}

// Core returns the minimum diffusivity
// of a core family.
func (p *P) Core() int {
	return p.core
}

// Mode returns the strategy used to detect taxa.
func (p *P) Mode() taxon.Mode {
	return p.mode
}

// Name returns the file name of the parameters.
func (p *P) Name() string {
	return p.name
}

// Prefixes returns the accession prefixes
// used to detect taxa.
func (p *P) Prefixes() []string {
	return append([]string(nil), p.prefixes...)
}

// Qualifier returns the taxon qualifier
// defined by the parameters.
func (p *P) Qualifier() taxon.Qualifier {
	q, _ := taxon.NewQualifier(p.mode, p.prefixes...)
	return q
}

// Singleton returns the maximum diffusivity
// of a singleton family.
func (p *P) Singleton() int {
	return p.singleton
}

// Thresholds returns the classification thresholds
// defined by the parameters.
func (p *P) Thresholds() pangenome.Thresholds {
	return pangenome.Thresholds{
		Singleton: p.singleton,
		Core:      p.core,
	}
}

// SetCore sets the minimum diffusivity of a core family.
// Use 0 to set it as the number of genomes.
func (p *P) SetCore(c int) error {
	if c < 0 {
		return fmt.Errorf("invalid core threshold: %d", c)
	}
	p.core = c
	return nil
}

// SetMode sets the strategy used to detect taxa.
func (p *P) SetMode(m taxon.Mode) error {
	m = taxon.Mode(strings.ToLower(strings.TrimSpace(string(m))))
	if _, err := taxon.NewQualifier(m); err != nil {
		return err
	}
	p.mode = m
	return nil
}

// SetName sets the file name of the parameters.
func (p *P) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.name = name
}

// SetPrefixes sets the accession prefixes.
// If no valid prefix is given,
// the default prefix is used.
func (p *P) SetPrefixes(prefixes ...string) {
	var ps []string
	for _, v := range prefixes {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		ps = append(ps, v)
	}
	if len(ps) == 0 {
		ps = []string{taxon.DefaultPrefix}
	}
	p.prefixes = ps
}

// SetSingleton sets the maximum diffusivity
// of a singleton family.
func (p *P) SetSingleton(s int) error {
	if s < 0 {
		return fmt.Errorf("invalid singleton threshold: %d", s)
	}
	p.singleton = s
	return nil
}

// Write writes a parameter collection into a file.
func (p *P) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# phypan analysis parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	rows := [][]string{
		{string(Core), strconv.Itoa(p.core)},
		{string(Mode), string(p.mode)},
		{string(Prefix), strings.Join(p.prefixes, ",")},
		{string(Singleton), strconv.Itoa(p.singleton)},
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}
