// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp parses the on-disk inputs of a run: the CLI arguments, the
// element model file and the substrate/solvent template files. Grounded on
// gofem/inp's file-reading style (io.ReadFile plus a hand-rolled parser)
// generalized from gofem's JSON .sim/.mat schema to the line-oriented text
// formats original_source's load.c reads.
package inp

import (
	"flag"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mdsim/errs"
	"github.com/cpmech/mdsim/universe"
)

// Args holds the parsed command-line configuration for a run.
type Args struct {
	ModelPath     string  // path to the element model file
	SubstratePath string  // path to the primary substrate template file
	SolventPath   string  // path to an optional solvent template file ("" if none)
	SolventCount  int     // number of solvent molecules to place
	MoleculeCount int     // number of primary substrate molecules to place
	Size          float64 // cubic cell edge length, m
	Steps         int     // number of integration steps to run
	Timestep      float64 // integration timestep, s
	Temperature   float64 // initial temperature, K
	PressureHPa   float64 // ambient pressure, hPa; provenance only, no barostat
	Numerical     bool    // use the numerical (central-difference) force calculator
	ReducePot     bool    // run the potential-energy reducer before integrating
	OutPath       string  // trajectory output path
}

// ParseArgs parses os.Args (via the flag package, same as gofem's main.go)
// into an Args, applying defaults for anything not given.
func ParseArgs() (*Args, error) {
	a := &Args{
		MoleculeCount: 1,
		Size:          1e-8,
		Steps:         1000,
		Timestep:      1e-15,
		Temperature:   300,
		PressureHPa:   1013.25,
		ReducePot:     true,
		OutPath:       "trajectory.xyz",
	}
	flag.StringVar(&a.ModelPath, "model", "", "path to the element model file")
	flag.StringVar(&a.SubstratePath, "substrate", "", "path to the primary substrate template file")
	flag.StringVar(&a.SolventPath, "solvent", "", "path to an optional solvent template file")
	flag.IntVar(&a.SolventCount, "nsolvent", 0, "number of solvent molecules")
	flag.IntVar(&a.MoleculeCount, "n", a.MoleculeCount, "number of primary substrate molecules")
	flag.Float64Var(&a.Size, "size", a.Size, "cubic cell edge length, m")
	flag.IntVar(&a.Steps, "steps", a.Steps, "number of integration steps")
	flag.Float64Var(&a.Timestep, "dt", a.Timestep, "integration timestep, s")
	flag.Float64Var(&a.Temperature, "temperature", a.Temperature, "initial temperature, K")
	flag.Float64Var(&a.PressureHPa, "pressure", a.PressureHPa, "ambient pressure, hPa (provenance only)")
	flag.BoolVar(&a.Numerical, "numerical", false, "use the numerical force calculator")
	flag.BoolVar(&a.ReducePot, "reduce", a.ReducePot, "run the potential-energy reducer before integrating")
	flag.StringVar(&a.OutPath, "out", a.OutPath, "trajectory output path")
	flag.Parse()

	if a.ModelPath == "" {
		return nil, errs.New(errs.ConfigError, "inp.ParseArgs", "-model is required")
	}
	if a.SubstratePath == "" {
		return nil, errs.New(errs.ConfigError, "inp.ParseArgs", "-substrate is required")
	}
	if a.Size <= 0 {
		return nil, errs.New(errs.ConfigError, "inp.ParseArgs", "-size must be positive, got %g", a.Size)
	}
	return a, nil
}

// ForceMode translates the -numerical flag into a universe.ForceMode.
func (a *Args) ForceMode() universe.ForceMode {
	if a.Numerical {
		return universe.Numerical
	}
	return universe.Analytical
}

// readFileOrConfigError is a small guard shared by LoadModel/LoadSubstrate:
// an empty path reports a typed ConfigError, and a file that cannot be read
// reports a typed IOError instead of a bare I/O error.
func readFileOrConfigError(site, path string) ([]byte, error) {
	if path == "" {
		return nil, errs.New(errs.ConfigError, site, "no path given")
	}
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.IOError, site, "reading %q: %v", path, err)
	}
	return b, nil
}
