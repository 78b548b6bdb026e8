// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

func Test_kinetic_known_value(tst *testing.T) {
	chk.PrintTitle("kinetic_known_value")

	u := universe.New(10, model.Default())
	u.Atoms = make([]universe.Atom, 1)
	u.Atoms[0].Element = model.He
	u.Atoms[0].Vel = vec3.Vec3{X: 100.0}

	want := 0.5 * model.Mass(model.He) * 100.0 * 100.0
	if got := Kinetic(u); math.Abs(got-want) > 1e-40 {
		tst.Errorf("Kinetic = %g, want %g", got, want)
	}
}

func Test_kinetic_zero_at_rest(tst *testing.T) {
	chk.PrintTitle("kinetic_zero_at_rest")

	u := universe.New(10, model.Default())
	u.Atoms = make([]universe.Atom, 3)
	for i := range u.Atoms {
		u.Atoms[i].Element = model.Ne
	}
	if got := Kinetic(u); got != 0 {
		tst.Errorf("Kinetic at rest = %g, want 0", got)
	}
}

func Test_temperature_matches_equipartition(tst *testing.T) {
	chk.PrintTitle("temperature_equipartition")

	u := universe.New(10, model.Default())
	u.Atoms = make([]universe.Atom, 2)
	u.Atoms[0].Element = model.Ne
	u.Atoms[1].Element = model.Ne
	u.Atoms[0].Vel = vec3.Vec3{X: 50}
	u.Atoms[1].Vel = vec3.Vec3{Y: 50}

	T := Temperature(u, constants.Boltzmann)
	wantT := 2 * Kinetic(u) / (3 * 2 * constants.Boltzmann)
	if math.Abs(T-wantT) > 1e-6*wantT {
		tst.Errorf("Temperature = %g, want %g", T, wantT)
	}
}
