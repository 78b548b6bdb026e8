// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constants reproduces the CODATA-2014 physical constants and the
// simulation-tuning constants original_source ships in config.h, bit-
// identically. These are process-wide immutables (spec.md §9: "Constants
// are process-wide immutables").
package constants

const (
	// Boltzmann is the Boltzmann constant, J/K.
	Boltzmann = 1.380649e-23
	// Avogadro is the Avogadro number, 1/mol.
	Avogadro = 6.02214076e23
	// IdealGas is the ideal gas constant, J/(mol*K).
	IdealGas = 8.31446261
	// VacuumPermittivity is the vacuum permittivity, F/m.
	VacuumPermittivity = 8.8541878128e-12
	// Coulomb is the Coulomb constant, N*m^2/C^2.
	Coulomb = 8.98755e9
	// ElementaryCharge is the elementary charge, C.
	ElementaryCharge = 1.60217646e-19
	// Torsion is the angular-harmonic-oscillator torsion constant, J/rad^2.
	// It is not read by potential.Angle, which uses its own 5e-8 coefficient.
	Torsion = 5e-18

	// DivThreshold is the minimum absolute scalar magnitude a division may
	// use; see vec3.DivThreshold (kept here too since it's also a
	// machine-setup constant in original_source/headers/config.h).
	DivThreshold = 1e-50
	// RootMachineEpsilon is sqrt(machine epsilon), used as the relative
	// step size for central-difference numerical differentiation.
	RootMachineEpsilon = 1.48996644e-8

	// LennardJonesCutoff is the multiple of sigma beyond which the
	// Lennard-Jones force is not computed.
	LennardJonesCutoff = 2.5

	// PopulateMinDistFrac is the fraction of the universe size within which
	// a newly inserted molecule's origin may not land.
	PopulateMinDistFrac = 0.4

	// ReducepotCoarseStepMagnitude is the initial coarse-phase relocation
	// step size, m.
	ReducepotCoarseStepMagnitude = 1e-9
	// ReducepotCoarseMaxAttempts is the number of failed relocation
	// attempts before the step magnitude is shrunk.
	ReducepotCoarseMaxAttempts = 100
	// ReducepotCoarseMagnitudeMultiplier shrinks the coarse step magnitude
	// after ReducepotCoarseMaxAttempts consecutive failures.
	ReducepotCoarseMagnitudeMultiplier = 0.1
	// ReducepotFineMaxStep is the maximum per-atom displacement in the
	// gradient-descent (fine) reduction phase, m.
	ReducepotFineMaxStep = 1e-10
	// ReducepotFineTimestep is the fictitious timestep used to turn a force
	// into a gradient-descent step in the fine reduction phase, s.
	ReducepotFineTimestep = 1e-15
	// ReducepotEndWiggling is the fraction of the to-reduce potential that
	// must be removed before the coarse phase yields to the fine phase.
	ReducepotEndWiggling = 0.5
	// ReducepotCutoff is the minimum per-cycle potential delta below which
	// either reduction phase terminates, J.
	ReducepotCutoff = 1e-18
)
