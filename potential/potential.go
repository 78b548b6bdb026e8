// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package potential computes the scalar potential-energy terms of the
// force field: harmonic bonds, Coulomb electrostatics, Lennard-Jones 12-6,
// and the 3-body harmonic angle term. Grounded on original_source's
// sources/potential.c; every term here mirrors one potential_* routine
// there, generalized to Go's explicit-error style.
package potential

import (
	"math"

	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/universe"
)

// Bond returns the harmonic-spring potential energy of the bond between
// atoms i and j with spring constant k and equilibrium length req (the sum
// of the two atoms' covalent radii). As in force.Bond, the equilibrium
// length is a caller-supplied argument; Total computes it from the model
// table.
func Bond(u *universe.Universe, i, j int, k, req float64) float64 {
	d := u.MinimumImage(u.Atoms[i].Pos, u.Atoms[j].Pos)
	dl := d.Mag() - req
	return 0.5 * k * dl * dl
}

// Electrostatic returns the Coulomb potential energy between atoms i and j.
func Electrostatic(u *universe.Universe, i, j int) float64 {
	d := u.MinimumImage(u.Atoms[i].Pos, u.Atoms[j].Pos)
	r := d.Mag()
	if r < constants.DivThreshold {
		return 0
	}
	return constants.Coulomb * u.Atoms[i].Charge * u.Atoms[j].Charge / r
}

// LennardJones returns the 12-6 Lennard-Jones potential energy between atoms
// i and j, combining the two atoms' per-atom epsilon/sigma as
// sigma = sqrt(sigma_i*sigma_j), epsilon = k_B*sqrt(epsilon_i*epsilon_j).
// No cutoff is applied here (unlike force.LennardJones): spec.md §4.F
// restricts the cutoff to the force path, matching original_source where
// potential_lennardjones has no cutoff check.
func LennardJones(u *universe.Universe, i, j int) float64 {
	a, b := &u.Atoms[i], &u.Atoms[j]
	eps := constants.Boltzmann * math.Sqrt(a.Epsilon*b.Epsilon)
	sig := math.Sqrt(a.Sigma * b.Sigma)
	if eps == 0 || sig == 0 {
		return 0
	}
	d := u.MinimumImage(a.Pos, b.Pos)
	r := d.Mag()
	if r < constants.DivThreshold {
		return 0
	}
	sr6 := math.Pow(sig/r, 6)
	return 4 * eps * (sr6*sr6 - sr6)
}

// angleConst is the coefficient of the harmonic angle potential. The value
// is the literal original_source/sources/potential.c uses directly in
// potential_angle (5E-8), not config.h's C_AHO (5E-18): C_AHO is defined but
// never read by potential_angle, so it does not govern real angle-potential
// behavior. See DESIGN.md.
const angleConst = 5e-8

// Angle returns the 3-body harmonic angle potential centered on atom c, with
// bonded neighbours a and b, using c's model-table equilibrium bond angle.
func Angle(u *universe.Universe, a, c, b int) (float64, error) {
	va := u.MinimumImage(u.Atoms[c].Pos, u.Atoms[a].Pos)
	vb := u.MinimumImage(u.Atoms[c].Pos, u.Atoms[b].Pos)
	theta, err := va.Angle(vb)
	if err != nil {
		return 0, err
	}
	theta0 := u.Model.BondAngle(u.Atoms[c].Element)
	dtheta := theta - theta0
	return angleConst * dtheta * dtheta, nil
}

// Total returns the system's total potential energy: every bonded pair once,
// every non-bonded pair's electrostatic and Lennard-Jones contributions once,
// and every bonded triple's angle contribution once.
func Total(u *universe.Universe) (float64, error) {
	n := u.NumAtoms()
	var sum float64
	for i := 0; i < n; i++ {
		for _, bd := range u.Atoms[i].Bonds {
			j := bd.To
			if j <= i {
				continue // each undirected bond counted once
			}
			req := u.Model.CovalentRadius(u.Atoms[i].Element) + u.Model.CovalentRadius(u.Atoms[j].Element)
			sum += Bond(u, i, j, bd.K, req)
		}
		for j := i + 1; j < n; j++ {
			if u.Bonded(i, j) {
				continue // bonded pairs interact only via Bond, not LJ/Coulomb
			}
			sum += Electrostatic(u, i, j)
			sum += LennardJones(u, i, j)
		}
	}
	for c := 0; c < n; c++ {
		bonds := u.Atoms[c].Bonds
		for x := 0; x < len(bonds); x++ {
			for y := x + 1; y < len(bonds); y++ {
				v, err := Angle(u, bonds[x].To, c, bonds[y].To)
				if err != nil {
					continue // degenerate (collinear/zero-length) triples contribute nothing
				}
				sum += v
			}
		}
	}
	return sum, nil
}
