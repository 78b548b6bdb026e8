// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

func twoAtomUniverse(size float64) *universe.Universe {
	u := universe.New(size, model.Default())
	u.Atoms = make([]universe.Atom, 2)
	return u
}

func Test_bond_zero_at_equilibrium(tst *testing.T) {
	chk.PrintTitle("bond_zero_at_equilibrium")

	u := twoAtomUniverse(10)
	u.Atoms[0].Pos = vec3.Vec3{}
	u.Atoms[1].Pos = vec3.Vec3{X: 1.5e-10}
	if v := Bond(u, 0, 1, 300.0, 1.5e-10); math.Abs(v) > 1e-30 {
		tst.Errorf("bond potential at equilibrium = %g, want ~0", v)
	}
}

func Test_electrostatic_known_value(tst *testing.T) {
	chk.PrintTitle("electrostatic_known_value")

	u := twoAtomUniverse(10)
	u.Atoms[0].Charge = constants.ElementaryCharge
	u.Atoms[1].Charge = constants.ElementaryCharge
	u.Atoms[0].Pos = vec3.Vec3{}
	u.Atoms[1].Pos = vec3.Vec3{X: 1e-9}

	got := Electrostatic(u, 0, 1)
	want := constants.Coulomb * constants.ElementaryCharge * constants.ElementaryCharge / 1e-9
	if math.Abs(got-want)/want > 1e-9 {
		tst.Errorf("electrostatic potential = %g, want %g", got, want)
	}
}

func Test_lennardjones_zero_without_params(tst *testing.T) {
	chk.PrintTitle("lennardjones_zero_without_params")

	u := twoAtomUniverse(10)
	u.Atoms[1].Pos = vec3.Vec3{X: 3e-10}
	if v := LennardJones(u, 0, 1); v != 0 {
		tst.Errorf("LJ potential with zero epsilon/sigma = %g, want 0", v)
	}
}

func Test_lennardjones_minimum_at_sigma_times_2to1_6(tst *testing.T) {
	chk.PrintTitle("lennardjones_minimum")

	u := twoAtomUniverse(10)
	u.Atoms[0].Epsilon, u.Atoms[1].Epsilon = 1e-21, 1e-21
	u.Atoms[0].Sigma, u.Atoms[1].Sigma = 3e-10, 3e-10
	rmin := 3e-10 * math.Pow(2, 1.0/6.0)

	u.Atoms[1].Pos = vec3.Vec3{X: rmin}
	atMin := LennardJones(u, 0, 1)
	u.Atoms[1].Pos = vec3.Vec3{X: rmin * 1.1}
	above := LennardJones(u, 0, 1)
	u.Atoms[1].Pos = vec3.Vec3{X: rmin * 0.9}
	below := LennardJones(u, 0, 1)

	if atMin >= above || atMin >= below {
		tst.Errorf("LJ potential not minimal at r=2^(1/6)*sigma: at=%g above=%g below=%g", atMin, above, below)
	}
	// pair epsilon = k_B*sqrt(eps_0*eps_1) = k_B*1e-21
	wantMin := -constants.Boltzmann * 1e-21
	if math.Abs(atMin-wantMin) > 1e-9*math.Abs(wantMin) {
		tst.Errorf("LJ potential at minimum = %g, want -epsilon = %g", atMin, wantMin)
	}
}

func Test_angle_zero_at_equilibrium(tst *testing.T) {
	chk.PrintTitle("angle_zero_at_equilibrium")

	u := universe.New(10, model.Default())
	u.Atoms = make([]universe.Atom, 3)
	u.Atoms[0].Element = model.Csp3
	theta0 := model.BondAngle(model.Csp3)

	u.Atoms[0].Pos = vec3.Vec3{}
	u.Atoms[1].Pos = vec3.Vec3{X: 1.5e-10}
	u.Atoms[2].Pos = vec3.Vec3{X: 1.5e-10 * math.Cos(theta0), Y: 1.5e-10 * math.Sin(theta0)}

	v, err := Angle(u, 1, 0, 2)
	if err != nil {
		tst.Fatalf("Angle: %v", err)
	}
	if math.Abs(v) > 1e-30 {
		tst.Errorf("angle potential at equilibrium = %g, want ~0", v)
	}
}
