// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package universe

import (
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/vec3"
)

// Bond is one edge of the bond graph, held inline on the owning Atom: the
// index of the bonded atom and the spring constant of that bond. Grounded
// on original_source/headers/universe.h's fixed-arity particle_t.bond[7]/
// bond_strength[7] arrays, made dynamic per spec.md §9's design note (a
// bounded C array breaks under relocation; an index into the atom slice
// does not).
type Bond struct {
	To int     // index into Universe.Atoms
	K  float64 // spring constant, N/m
}

// Atom is one particle: its element tag, charge and per-atom Lennard-Jones
// parameters, its kinematic state (position/velocity/acceleration/force)
// and its bond list.
type Atom struct {
	Element model.Element
	Charge  float64 // C
	Epsilon float64 // J, per-atom LJ epsilon
	Sigma   float64 // m, per-atom LJ sigma

	Pos vec3.Vec3 // m
	Vel vec3.Vec3 // m/s
	Acc vec3.Vec3 // m/s^2
	Frc vec3.Vec3 // N

	Bonds []Bond
}

// BondTo reports whether this atom lists other as a bonded neighbour, and
// if so the spring constant of that bond.
func (a *Atom) BondTo(other int) (k float64, bonded bool) {
	for _, b := range a.Bonds {
		if b.To == other {
			return b.K, true
		}
	}
	return 0, false
}

// addBond appends a bond edge to this atom, rejecting self-bonds and
// duplicate ordered pairs (invariant 3). Callers are responsible for
// mirroring the edge on the other endpoint to preserve bond symmetry
// (invariant 2) — see Universe.Bond.
func (a *Atom) addBond(self, to int, k float64) error {
	if to == self {
		return errSelfBond
	}
	if _, dup := a.BondTo(to); dup {
		return errDupBond
	}
	a.Bonds = append(a.Bonds, Bond{To: to, K: k})
	return nil
}
