// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mdsim/energy"
	"github.com/cpmech/mdsim/inp"
	"github.com/cpmech/mdsim/integrate"
	"github.com/cpmech/mdsim/out"
	"github.com/cpmech/mdsim/populate"
	"github.com/cpmech/mdsim/reduce"
	"github.com/cpmech/mdsim/universe"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// message
	io.PfWhite("\nmdsim -- molecular dynamics core\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// command-line arguments
	args, err := inp.ParseArgs()
	if err != nil {
		chk.Panic("%v", err)
	}

	// element table and substrate/solvent templates
	tbl, order, err := inp.LoadModel(args.ModelPath)
	if err != nil {
		chk.Panic("%v", err)
	}
	primary, meta, err := inp.LoadSubstrate(args.SubstratePath, order)
	if err != nil {
		chk.Panic("%v", err)
	}
	var solventTmpl *populate.Template
	if args.SolventPath != "" {
		s, _, err := inp.LoadSubstrate(args.SolventPath, order)
		if err != nil {
			chk.Panic("%v", err)
		}
		solventTmpl = &s
	}

	// universe
	u := universe.New(args.Size, tbl)
	u.ForceMode = args.ForceMode()
	if err := populate.Populate(u, primary, args.MoleculeCount, solventTmpl, args.SolventCount, args.Temperature); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("populated %d atoms\n", u.NumAtoms())

	// reduce potential energy before integrating
	if args.ReducePot {
		res, err := reduce.Reduce(u)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("reduced potential: %g -> %g (coarse %g)\n", res.InitialPotential, res.FinalPotential, res.CoarsePotential)
	}

	// trajectory output
	header := io.Sf("%s by %s -- %s -- pressure=%g hPa", meta.Name, meta.Author, meta.Comment, args.PressureHPa)
	writer, err := out.NewTrajectoryWriter(args.OutPath, header)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer writer.Close()

	// run
	dtFunc := constTimestep(args.Timestep)
	tf := float64(args.Steps) * args.Timestep
	notify := func(u *universe.Universe) {
		pot, err := energy.Potential(u)
		if err != nil {
			chk.Panic("%v", err)
		}
		if err := writer.WriteFrame(u, pot, energy.Kinetic(u)); err != nil {
			chk.Panic("%v", err)
		}
	}
	if err := integrate.Run(u, tf, dtFunc, notify, nil); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("done: %d steps, t=%g s\n", u.Iteration, u.Time)
}

// constTimestep is a fun.Func with a fixed value, satisfying
// fem.Solver.Run's pluggable-timestep shape (dtFunc fun.Func) for the
// common case of a non-adaptive step size.
type constTimestep float64

func (c constTimestep) F(t float64, x []float64) float64 { return float64(c) }
