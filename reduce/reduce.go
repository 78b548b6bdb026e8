// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reduce implements the two-stage potential-energy reducer run
// after Populate and before the first Integrate call, so a randomly packed
// universe doesn't blow up on the first few steps. Grounded on
// original_source's sources/reducepot.c: a coarse random-displacement phase
// ("wiggling") followed by a fine gradient-descent phase.
package reduce

import (
	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/force"
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// maxCycles bounds both phases against non-convergence; reducepot.c has no
// such bound, but an explicit-error Go API should never spin forever.
const maxCycles = 200000

// Result reports how much potential energy each phase removed and how many
// cycles it ran.
type Result struct {
	InitialPotential float64
	CoarsePotential  float64
	FinalPotential   float64
	CoarseCycles     int
	FineCycles       int
}

// Reduce runs the coarse phase until it has removed at least
// constants.ReducepotEndWiggling of the reducible potential (or stalls),
// then the fine phase until successive cycles stop making cutoff-sized
// progress. Per spec.md §4.R, the accept/reject metric in both phases is
// the system's total potential energy (recomputed from scratch via
// potential.Total), not a kinetic+potential total: trial moves never touch
// velocities.
func Reduce(u *universe.Universe) (Result, error) {
	var res Result
	pot0, err := potential.Total(u)
	if err != nil {
		return res, err
	}
	res.InitialPotential = pot0

	coarsePot, cycles, err := coarse(u, pot0)
	if err != nil {
		return res, err
	}
	res.CoarsePotential = coarsePot
	res.CoarseCycles = cycles

	finePot, cycles, err := fine(u, coarsePot)
	if err != nil {
		return res, err
	}
	res.FinalPotential = finePot
	res.FineCycles = cycles
	return res, nil
}

func coarse(u *universe.Universe, pot0 float64) (float64, int, error) {
	mag := constants.ReducepotCoarseStepMagnitude
	attempts := 0
	cur := pot0
	target := pot0 - constants.ReducepotEndWiggling*absf(pot0)

	cycle := 0
	for ; cycle < maxCycles; cycle++ {
		improved := false
		for i := range u.Atoms {
			old := u.Atoms[i].Pos
			trial := vec3.Marsaglia().Scale(mag)
			u.Atoms[i].Pos = u.Wrap(old.Add(trial))

			newPot, err := potential.Total(u)
			if err != nil {
				return cur, cycle, err
			}
			if newPot < cur-constants.ReducepotCutoff {
				cur = newPot
				attempts = 0
				improved = true
			} else {
				u.Atoms[i].Pos = old
				attempts++
				if attempts >= constants.ReducepotCoarseMaxAttempts {
					mag *= constants.ReducepotCoarseMagnitudeMultiplier
					attempts = 0
				}
			}
		}
		if cur <= target {
			break
		}
		if !improved {
			break
		}
	}
	if cycle < maxCycles {
		cycle++ // a break leaves cycle at the index of the last cycle run
	}
	return cur, cycle, nil
}

func fine(u *universe.Universe, pot0 float64) (float64, int, error) {
	cur := pot0
	cycle := 0
	for ; cycle < maxCycles; cycle++ {
		if err := force.Total(u); err != nil {
			return cur, cycle, err
		}
		improved := false
		for i := range u.Atoms {
			m := u.Model.Mass(u.Atoms[i].Element)
			if m < constants.DivThreshold {
				continue
			}
			step := u.Atoms[i].Frc.Scale(constants.ReducepotFineTimestep * constants.ReducepotFineTimestep / (2 * m))
			step = clampMag(step, constants.ReducepotFineMaxStep)

			old := u.Atoms[i].Pos
			u.Atoms[i].Pos = u.Wrap(old.Add(step))

			newPot, err := potential.Total(u)
			if err != nil {
				return cur, cycle, err
			}
			if newPot < cur-constants.ReducepotCutoff {
				cur = newPot
				improved = true
			} else {
				u.Atoms[i].Pos = old
			}
		}
		if !improved {
			break
		}
	}
	if cycle < maxCycles {
		cycle++ // a break leaves cycle at the index of the last cycle run
	}
	return cur, cycle, nil
}

func clampMag(v vec3.Vec3, max float64) vec3.Vec3 {
	m := v.Mag()
	if m <= max || m < constants.DivThreshold {
		return v
	}
	return v.Scale(max / m)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
