// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package energy reports the universe's kinetic, potential and total
// energy. Grounded on original_source's sources/universe.c
// (universe_energy_kinetic/universe_energy_potential/universe_energy_total).
package energy

import (
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
)

// Kinetic returns the sum of each atom's 0.5*m*|v|^2.
func Kinetic(u *universe.Universe) float64 {
	var sum float64
	for i := range u.Atoms {
		m := u.Model.Mass(u.Atoms[i].Element)
		v := u.Atoms[i].Vel.Mag()
		sum += 0.5 * m * v * v
	}
	return sum
}

// Potential returns the system's total potential energy.
func Potential(u *universe.Universe) (float64, error) {
	return potential.Total(u)
}

// Total returns kinetic plus potential energy.
func Total(u *universe.Universe) (float64, error) {
	pot, err := potential.Total(u)
	if err != nil {
		return 0, err
	}
	return Kinetic(u) + pot, nil
}

// Temperature estimates the instantaneous temperature from the equipartition
// theorem, 3N degrees of freedom: T = 2*Kinetic / (3*N*k_B).
func Temperature(u *universe.Universe, kB float64) float64 {
	n := u.NumAtoms()
	if n == 0 {
		return 0
	}
	return 2 * Kinetic(u) / (3 * float64(n) * kB)
}
