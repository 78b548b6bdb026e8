// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model implements the per-element property table: mass, covalent
// and Van der Waals radii, equilibrium bond angle, and symbol. The default
// table's numeric values are reproduced bit-identically from
// original_source's model.c; a Table may also be built at load time from a
// model file (see inp.LoadModel), so a run can swap in a custom force
// field without recompiling.
package model

// Element is a small integer tag drawn from a fixed closed enum.
type Element uint8

// The enumerated element tags, in the order original_source/headers/model.h
// defines ATOM_NULL..ATOM_OW.
const (
	Null Element = iota
	LonePair
	H
	He
	Li
	Be
	Bsp3
	Bsp2
	Csp3
	Csp2
	Csp
	Nsp3
	Nsp2
	Osp3
	Osp2
	F
	Ne
	Cl
	WaterO
)

// Entry holds one element's scalar properties. LJEpsilon/LJSigma are
// carried for completeness when loaded from a model file (§6) but are not
// consulted by the potential/force calculators, which read per-atom LJ
// parameters instead (spec.md §3, §4.P).
type Entry struct {
	Symbol    string
	Mass      float64 // kg
	Covalent  float64 // m
	Vdw       float64 // m
	BondAngle float64 // rad
	LJEpsilon float64 // J
	LJSigma   float64 // m
}

// Table is a read-only, closed-enum-indexed lookup table. The zero value is
// an empty table; use Default() for the built-in reference values.
type Table map[Element]Entry

// Default returns the element table with the exact numeric values of
// original_source/sources/model.c. Called once per Universe at load time;
// the returned map is never mutated afterwards.
func Default() Table {
	return Table{
		LonePair: {Symbol: "LP"},
		H:        {Symbol: "H", Mass: 1.6605e-27, Covalent: 31e-12, Vdw: 120e-12},
		He:       {Symbol: "He", Mass: 6.6422e-27, Covalent: 28e-12, Vdw: 140e-12},
		Li:       {Symbol: "Li", Mass: 1.1624e-26, Covalent: 128e-12, Vdw: 182e-12},
		Be:       {Symbol: "Be", Mass: 1.4945e-26, Covalent: 91e-12, Vdw: 153e-12, BondAngle: 3.1415},
		Bsp3:     {Symbol: "B", Mass: 1.8266e-26, Covalent: 84e-12, Vdw: 192e-12, BondAngle: 1.9106},
		Bsp2:     {Symbol: "B", Mass: 1.8266e-26, Covalent: 84e-12, Vdw: 192e-12, BondAngle: 2.0944},
		Csp3:     {Symbol: "C", Mass: 1.9926e-26, Covalent: 77e-12, Vdw: 170e-12, BondAngle: 1.9106},
		Csp2:     {Symbol: "C", Mass: 1.9926e-26, Covalent: 73e-12, Vdw: 170e-12, BondAngle: 2.0944},
		Csp:      {Symbol: "C", Mass: 1.9926e-26, Covalent: 69e-12, Vdw: 170e-12, BondAngle: 3.1415},
		Nsp3:     {Symbol: "N", Mass: 2.3248e-26, Covalent: 71e-12, Vdw: 155e-12, BondAngle: 1.9106},
		Nsp2:     {Symbol: "N", Mass: 2.3248e-26, Covalent: 71e-12, Vdw: 155e-12, BondAngle: 2.0944},
		Osp3:     {Symbol: "O", Mass: 2.6569e-26, Covalent: 66e-12, Vdw: 152e-12, BondAngle: 1.9106},
		Osp2:     {Symbol: "O", Mass: 2.6569e-26, Covalent: 66e-12, Vdw: 152e-12, BondAngle: 2.0944},
		F:        {Symbol: "F", Mass: 3.1550e-26, Covalent: 64e-12, Vdw: 135e-12},
		Ne:       {Symbol: "Ne", Mass: 3.3211e-26, Covalent: 58e-12, Vdw: 154e-12},
		Cl:       {Symbol: "Cl", Mass: 5.8118e-26, Covalent: 102e-12, Vdw: 175e-12},
		WaterO:   {Symbol: "O", Mass: 2.6569e-26, Covalent: 64.84e-12, Vdw: 152e-12, BondAngle: 1.8230},
	}
}

// Symbol returns e's chemical symbol, or "??" for an unknown tag.
func (t Table) Symbol(e Element) string {
	if en, ok := t[e]; ok {
		return en.Symbol
	}
	return "??"
}

// Mass returns e's mass in kg, or 0 for an unknown tag or the null/lone-pair
// tag (invariant 5: mass is 0 only for these).
func (t Table) Mass(e Element) float64 { return t[e].Mass }

// CovalentRadius returns e's covalent radius in metres.
func (t Table) CovalentRadius(e Element) float64 { return t[e].Covalent }

// VdwRadius returns e's Van der Waals radius in metres.
func (t Table) VdwRadius(e Element) float64 { return t[e].Vdw }

// BondAngle returns e's equilibrium bond angle in radians, used as the node
// angle in the 3-body angle potential.
func (t Table) BondAngle(e Element) float64 { return t[e].BondAngle }

// Valid reports whether e is a tag this table has an entry for. Unknown
// tags (per invariant 6) return zero from every other query.
func (t Table) Valid(e Element) bool {
	_, ok := t[e]
	return ok
}

// package-level convenience wrappers over Default(), for call sites that
// don't carry a loaded Table (tests, scratch scripts).
var defaultTable = Default()

func Symbol(e Element) string                { return defaultTable.Symbol(e) }
func Mass(e Element) float64                 { return defaultTable.Mass(e) }
func CovalentRadius(e Element) float64       { return defaultTable.CovalentRadius(e) }
func VdwRadius(e Element) float64            { return defaultTable.VdwRadius(e) }
func BondAngle(e Element) float64            { return defaultTable.BondAngle(e) }
func Valid(e Element) bool                   { return defaultTable.Valid(e) }
