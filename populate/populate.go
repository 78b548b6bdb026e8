// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package populate replicates a loaded substrate (and, per the solvent
// supplement, an optional second template) throughout the universe:
// each copy gets a random origin rejected if too close to an existing
// molecule, a random rigid-body orientation, and a thermal initial
// velocity. Grounded on original_source's sources/load.c
// (universe_load_solvent/universe_populate).
package populate

import (
	"math"

	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/errs"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// maxPlacementAttempts bounds the origin-rejection loop per molecule, so a
// too-dense request fails fast with an error rather than spinning.
const maxPlacementAttempts = 10000

// Atom is one atom of a molecule template, positioned relative to the
// template's own origin.
type Atom struct {
	Element model.Element
	Charge  float64
	Epsilon float64
	Sigma   float64
	Offset  vec3.Vec3
}

// Bond is one bond of a molecule template, referencing atoms by their index
// within the same Template.
type Bond struct {
	From, To int
	K        float64
}

// Template is a rigid molecule blueprint, as parsed from a substrate or
// solvent file (see inp.LoadSubstrate).
type Template struct {
	Atoms []Atom
	Bonds []Bond
}

// Populate inserts n copies of primary into u, each placed at a random,
// non-overlapping origin with a random orientation and a thermal initial
// velocity at temperature (K). If solvent is non-nil, nSolvent copies of it
// are placed the same way afterward, filling in around the primary
// substrate — the solvent supplement to the external interface (see
// SPEC_FULL.md §9).
func Populate(u *universe.Universe, primary Template, n int, solvent *Template, nSolvent int, temperature float64) error {
	origins := make([]vec3.Vec3, 0, n+nSolvent)
	if err := place(u, primary, n, temperature, &origins); err != nil {
		return err
	}
	if solvent != nil && nSolvent > 0 {
		if err := place(u, *solvent, nSolvent, temperature, &origins); err != nil {
			return err
		}
	}
	return nil
}

func place(u *universe.Universe, tmpl Template, n int, temperature float64, origins *[]vec3.Vec3) error {
	half := u.Size / 2
	minDist := constants.PopulateMinDistFrac * u.Size

	for k := 0; k < n; k++ {
		origin, err := randomOrigin(half, minDist, *origins)
		if err != nil {
			return err
		}
		*origins = append(*origins, origin)

		axis := vec3.Marsaglia()
		angle := rnd.Float64(0, 2*math.Pi)
		rot := vec3.RotationAbout(axis, angle)

		base := len(u.Atoms)
		for _, a := range tmpl.Atoms {
			pos := u.Wrap(origin.Add(rot.Apply(a.Offset)))
			atom := universe.Atom{
				Element: a.Element,
				Charge:  a.Charge,
				Epsilon: a.Epsilon,
				Sigma:   a.Sigma,
				Pos:     pos,
				Vel:     thermalVelocity(u.Model.Mass(a.Element), temperature),
			}
			u.Atoms = append(u.Atoms, atom)
		}
		for _, b := range tmpl.Bonds {
			if err := u.Bond(base+b.From, base+b.To, b.K); err != nil {
				return err
			}
		}
	}
	return nil
}

func randomOrigin(half, minDist float64, existing []vec3.Vec3) (vec3.Vec3, error) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		cand := vec3.Vec3{
			X: rnd.Float64(-half, half),
			Y: rnd.Float64(-half, half),
			Z: rnd.Float64(-half, half),
		}
		ok := true
		for _, o := range existing {
			if cand.Sub(o).Mag() < minDist {
				ok = false
				break
			}
		}
		if ok {
			return cand, nil
		}
	}
	return vec3.Vec3{}, errs.New(errs.ConfigError, "populate.randomOrigin",
		"could not find a non-overlapping origin after %d attempts (universe too dense)", maxPlacementAttempts)
}

// thermalVelocity returns a velocity whose magnitude is the root-mean-square
// speed sqrt(3*k_B*T/m) at temperature for a particle of mass m, pointed in
// a direction drawn uniformly over the sphere (vec3.Marsaglia).
func thermalVelocity(m, temperature float64) vec3.Vec3 {
	if m < constants.DivThreshold || temperature <= 0 {
		return vec3.Vec3{}
	}
	speed := math.Sqrt(3 * constants.Boltzmann * temperature / m)
	return vec3.Marsaglia().Scale(speed)
}
