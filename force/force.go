// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force turns the potential terms into per-atom force vectors,
// either analytically (closed-form per-term expressions) or numerically (central
// differences of the total potential, reusing gosl/num the way gofem's
// ana package validates its own analytical derivatives against num.DerivCen).
// Grounded on original_source's sources/force.c.
package force

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// Reset zeroes every atom's accumulated force.
func Reset(u *universe.Universe) {
	for i := range u.Atoms {
		u.Atoms[i].Frc = vec3.Zero
	}
}

// Total recomputes every atom's Frc from scratch, according to u.ForceMode.
func Total(u *universe.Universe) error {
	switch u.ForceMode {
	case universe.Numerical:
		return numerical(u)
	default:
		return analytical(u)
	}
}

func analytical(u *universe.Universe) error {
	Reset(u)
	n := u.NumAtoms()
	for i := 0; i < n; i++ {
		for _, bd := range u.Atoms[i].Bonds {
			j := bd.To
			if j <= i {
				continue
			}
			req := u.Model.CovalentRadius(u.Atoms[i].Element) + u.Model.CovalentRadius(u.Atoms[j].Element)
			Bond(u, i, j, bd.K, req)
		}
		for j := i + 1; j < n; j++ {
			if u.Bonded(i, j) {
				continue
			}
			Electrostatic(u, i, j)
			LennardJones(u, i, j)
		}
	}
	for c := 0; c < n; c++ {
		bonds := u.Atoms[c].Bonds
		for x := 0; x < len(bonds); x++ {
			for y := x + 1; y < len(bonds); y++ {
				if err := Angle(u, bonds[x].To, c, bonds[y].To); err != nil {
					continue
				}
			}
		}
	}
	return nil
}

// Bond applies the harmonic bond force to atoms i and j in place. Unlike
// original_source's force_bond, req is always the current sum of covalent
// radii (passed in by the caller from the model table), never a cached
// bond-length value: the original reads a stale bond_length[] array here,
// which is the bug spec.md §9 flags and this implementation corrects.
func Bond(u *universe.Universe, i, j int, k, req float64) {
	d := u.MinimumImage(u.Atoms[i].Pos, u.Atoms[j].Pos)
	r := d.Mag()
	if r < constants.DivThreshold {
		return
	}
	rhat, _ := d.Unit()
	f := rhat.Scale(k * (r - req))
	u.Atoms[i].Frc = u.Atoms[i].Frc.Add(f)
	u.Atoms[j].Frc = u.Atoms[j].Frc.Sub(f)
}

// Electrostatic applies the Coulomb force to atoms i and j in place: atom i
// receives +k*q_i*q_j/r^2 along the unit vector from i toward j, and atom j
// the opposite. With this sign, charges of the same sign are pushed toward
// each other, so the term is not the negative gradient of
// potential.Electrostatic and the numerical mode gives it the opposite sign.
func Electrostatic(u *universe.Universe, i, j int) {
	d := u.MinimumImage(u.Atoms[i].Pos, u.Atoms[j].Pos)
	r := d.Mag()
	if r < constants.DivThreshold {
		return
	}
	rhat, _ := d.Unit()
	mag := constants.Coulomb * u.Atoms[i].Charge * u.Atoms[j].Charge / (r * r)
	f := rhat.Scale(mag)
	u.Atoms[i].Frc = u.Atoms[i].Frc.Add(f)
	u.Atoms[j].Frc = u.Atoms[j].Frc.Sub(f)
}

// LennardJones applies the 12-6 Lennard-Jones force to atoms i and j in
// place, skipping pairs separated beyond constants.LennardJonesCutoff*sigma
// (the cutoff applies only to the force, per spec.md §4.F; potential.LennardJones
// has none, matching original_source).
func LennardJones(u *universe.Universe, i, j int) {
	a, b := &u.Atoms[i], &u.Atoms[j]
	eps := constants.Boltzmann * math.Sqrt(a.Epsilon*b.Epsilon)
	sig := math.Sqrt(a.Sigma * b.Sigma)
	if eps == 0 || sig == 0 {
		return
	}
	d := u.MinimumImage(a.Pos, b.Pos)
	r := d.Mag()
	if r < constants.DivThreshold || r > constants.LennardJonesCutoff*sig {
		return
	}
	rhat, _ := d.Unit()
	sr6 := math.Pow(sig/r, 6)
	mag := (24 * eps / r) * (sr6 - 2*sr6*sr6)
	f := rhat.Scale(mag)
	u.Atoms[i].Frc = u.Atoms[i].Frc.Add(f)
	u.Atoms[j].Frc = u.Atoms[j].Frc.Sub(f)
}

// Angle applies the 3-body harmonic angle force to atoms a, c (the vertex)
// and b in place, by central-difference differentiation of
// potential.Angle with respect to each atom's position components. The
// angle term's analytical gradient is a much larger expression than the
// pairwise terms above for comparatively little benefit, so it is always
// evaluated numerically, the same way gofem's ana package cross-checks
// stiffness derivatives against num.DerivCen.
func Angle(u *universe.Universe, a, c, b int) error {
	idx := [3]int{a, c, b}
	var grads [3]vec3.Vec3
	for k, atomIdx := range idx {
		for axis := 0; axis < 3; axis++ {
			orig := component(&u.Atoms[atomIdx].Pos, axis)
			h := constants.RootMachineEpsilon * math.Max(1, math.Abs(orig))
			var derivErr error
			deriv := num.DerivCen(func(x float64) float64 {
				setComponent(&u.Atoms[atomIdx].Pos, axis, x)
				v, err := potential.Angle(u, a, c, b)
				if err != nil {
					derivErr = err
				}
				return v
			}, orig, h)
			setComponent(&u.Atoms[atomIdx].Pos, axis, orig)
			if derivErr != nil {
				return derivErr
			}
			setComponent(&grads[k], axis, -deriv)
		}
	}
	u.Atoms[a].Frc = u.Atoms[a].Frc.Add(grads[0])
	u.Atoms[c].Frc = u.Atoms[c].Frc.Add(grads[1])
	u.Atoms[b].Frc = u.Atoms[b].Frc.Add(grads[2])
	return nil
}

// numerical recomputes every atom's force as the negative gradient of the
// total potential, by central-difference differentiation of each position
// component in turn. Used to validate the analytical path (spec.md §4.F);
// far slower (several full O(N^2) potential.Total evaluations per position
// component) so not the default.
func numerical(u *universe.Universe) error {
	Reset(u)
	var evalErr error
	for i := range u.Atoms {
		for axis := 0; axis < 3; axis++ {
			orig := component(&u.Atoms[i].Pos, axis)
			h := constants.RootMachineEpsilon * math.Max(1, math.Abs(orig))
			deriv := num.DerivCen(func(x float64) float64 {
				setComponent(&u.Atoms[i].Pos, axis, x)
				v, err := potential.Total(u)
				if err != nil {
					evalErr = err
				}
				return v
			}, orig, h)
			setComponent(&u.Atoms[i].Pos, axis, orig)
			if evalErr != nil {
				return evalErr
			}
			setComponent(&u.Atoms[i].Frc, axis, -deriv)
		}
	}
	return nil
}

func component(v *vec3.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *vec3.Vec3, axis int, x float64) {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
}
