// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package params_test

import (
	"os"
	"reflect"
	"testing"

	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/params"
	"github.com/js-arias/phypan/taxon"
	"github.com/js-arias/phypan/tree"
)

func TestParams(t *testing.T) {
	name := "tmp-params-for-test.tab"
	p := params.New(name)
	testParams(t, p, nil)

	if err := p.SetSingleton(2); err != nil {
		t.Fatalf("unable to set singleton: %v", err)
	}
	if err := p.SetCore(10); err != nil {
		t.Fatalf("unable to set core: %v", err)
	}
	if err := p.SetMode("LEAF"); err != nil {
		t.Fatalf("unable to set mode: %v", err)
	}
	p.SetPrefixes("GCA", "", "GCF")

	defer os.Remove(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := params.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testParams(t, np, p)

	if th := np.Thresholds(); th != (pangenome.Thresholds{Singleton: 2, Core: 10}) {
		t.Errorf("thresholds: got %+v", th)
	}
}

func TestInvalid(t *testing.T) {
	p := params.New("")
	if err := p.SetSingleton(-1); err == nil {
		t.Errorf("negative singleton: expecting error")
	}
	if err := p.SetCore(-1); err == nil {
		t.Errorf("negative core: expecting error")
	}
	if err := p.SetMode("other"); err == nil {
		t.Errorf("unknown mode: expecting error")
	}
	testParams(t, p, nil)
}

func TestEnv(t *testing.T) {
	t.Setenv(params.EnvMode, "leaf")
	t.Setenv(params.EnvPrefix, "GCF")
	t.Setenv(params.EnvSingleton, "3")
	t.Setenv(params.EnvCore, "")

	p := params.New("")
	if err := p.Env(); err != nil {
		t.Fatalf("unable to read environment: %v", err)
	}
	if p.Mode() != taxon.Leaf {
		t.Errorf("env mode: got %q, want %q", p.Mode(), taxon.Leaf)
	}
	if !reflect.DeepEqual(p.Prefixes(), []string{"GCF"}) {
		t.Errorf("env prefixes: got %v", p.Prefixes())
	}
	if p.Singleton() != 3 || p.Core() != 0 {
		t.Errorf("env thresholds: got %d %d, want 3 0", p.Singleton(), p.Core())
	}

	leaf := tree.New("x")
	if !p.Qualifier().Qualifies(leaf) {
		t.Errorf("env qualifier: expecting a leaf qualifier")
	}

	t.Setenv(params.EnvSingleton, "many")
	if err := p.Env(); err == nil {
		t.Errorf("invalid environment value: expecting error")
	}
}

func testParams(t testing.TB, p, want *params.P) {
	t.Helper()

	if want == nil {
		want = params.New(p.Name())
	}

	if p.Name() != want.Name() {
		t.Errorf("name: got %q, want %q", p.Name(), want.Name())
	}
	if p.Singleton() != want.Singleton() {
		t.Errorf("singleton: got %d, want %d", p.Singleton(), want.Singleton())
	}
	if p.Core() != want.Core() {
		t.Errorf("core: got %d, want %d", p.Core(), want.Core())
	}
	if p.Mode() != want.Mode() {
		t.Errorf("mode: got %q, want %q", p.Mode(), want.Mode())
	}
	if !reflect.DeepEqual(p.Prefixes(), want.Prefixes()) {
		t.Errorf("prefixes: got %v, want %v", p.Prefixes(), want.Prefixes())
	}
}
