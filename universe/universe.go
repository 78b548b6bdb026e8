// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package universe owns the simulation state: atoms, bonds, cell size,
// simulation time and the element table. The engine (integrate, reduce) is
// the sole mutator; the element table and configuration are immutable
// once a Universe has been built with New and populated.
package universe

import (
	"github.com/cpmech/mdsim/errs"
	"github.com/cpmech/mdsim/model"
)

// ForceMode selects how the force calculator computes force vectors.
type ForceMode int

const (
	// Analytical uses closed-form per-term force expressions (default).
	Analytical ForceMode = iota
	// Numerical uses central-difference differentiation of the total
	// potential; used only to validate the analytical path.
	Numerical
)

// Universe is the aggregate simulation state.
type Universe struct {
	Size      float64 // edge length of the cubic cell, m
	Time      float64 // accumulated simulation time, s
	Iteration int64

	Atoms []Atom
	Model model.Table

	ForceMode ForceMode
}

var (
	errSelfBond = errs.New(errs.ParseError, "universe.Bond", "an atom cannot bond to itself")
	errDupBond  = errs.New(errs.ParseError, "universe.Bond", "duplicate bond between the same ordered pair")
)

// New returns an empty Universe of the given cell size, ready to receive
// atoms via Populate.
func New(size float64, tbl model.Table) *Universe {
	return &Universe{Size: size, Model: tbl}
}

// Bond records a symmetric bonded edge between atoms i and j with spring
// constant k: both atoms list each other (invariant 2), neither lists
// itself (invariant 3) and no ordered pair is duplicated.
func (u *Universe) Bond(i, j int, k float64) error {
	if i < 0 || i >= len(u.Atoms) || j < 0 || j >= len(u.Atoms) {
		return errs.New(errs.ParseError, "universe.Bond", "atom index out of range (i=%d, j=%d, n=%d)", i, j, len(u.Atoms))
	}
	if err := u.Atoms[i].addBond(i, j, k); err != nil {
		return err
	}
	if err := u.Atoms[j].addBond(j, i, k); err != nil {
		// roll back the first half of the edge so the universe is not left
		// in a half-bonded state
		u.Atoms[i].Bonds = u.Atoms[i].Bonds[:len(u.Atoms[i].Bonds)-1]
		return err
	}
	return nil
}

// Bonded reports whether atoms i and j are bonded.
func (u *Universe) Bonded(i, j int) bool {
	_, ok := u.Atoms[i].BondTo(j)
	return ok
}

// NumAtoms returns the number of atoms currently in the universe.
func (u *Universe) NumAtoms() int { return len(u.Atoms) }
