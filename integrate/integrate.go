// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate advances the universe in time with velocity-Verlet
// half-kick/drift steps, grounded on original_source's atom.c: the velocity
// update applies half of the current step's acceleration (atom.c:135, acc *
// 0.5*timestep) before the position drift uses that half-kicked velocity
// (atom.c:153). There is no second half-kick: each Step adds only
// acc*(dt/2) to the velocity, so over one step the velocity gains half of
// what a textbook velocity-Verlet or leapfrog step would give it.
package integrate

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/force"
	"github.com/cpmech/mdsim/universe"
)

// Step refreshes forces at the universe's current configuration, then
// updates every atom's acceleration, velocity and (PBC-wrapped) position by
// one step of size dt.
func Step(u *universe.Universe, dt float64) error {
	if err := force.Total(u); err != nil {
		return err
	}
	for i := range u.Atoms {
		m := u.Model.Mass(u.Atoms[i].Element)
		if m < constants.DivThreshold {
			continue // massless tags (Null/LonePair) never move
		}
		acc, err := u.Atoms[i].Frc.Div(m)
		if err != nil {
			return err
		}
		u.Atoms[i].Acc = acc
		u.Atoms[i].Vel = u.Atoms[i].Vel.Add(acc.Scale(dt / 2))
		u.Atoms[i].Pos = u.Wrap(u.Atoms[i].Pos.Add(u.Atoms[i].Vel.Scale(dt)))
	}
	u.Time += dt
	u.Iteration++
	return nil
}

// Run drives the universe from its current time up to tf, one Step at a
// time, with the step size evaluated at the start of each step from dtFunc
// (t, nil) -> dt. Mirrors gofem's fem.Solver.Run(tf, dtFunc, dtoFunc
// fun.Func, ...) shape: a pluggable time-function rather than a fixed dt, so
// a run can ramp or hold the timestep without a code change. If notify is
// non-nil it is called after every completed step (trajectory writing,
// progress logging); if stop is non-nil and returns true the run ends early.
func Run(u *universe.Universe, tf float64, dtFunc fun.Func, notify func(*universe.Universe), stop func() bool) error {
	for u.Time < tf {
		if stop != nil && stop() {
			break
		}
		dt := dtFunc.F(u.Time, nil)
		if err := Step(u, dt); err != nil {
			return err
		}
		if notify != nil {
			notify(u)
		}
	}
	return nil
}
