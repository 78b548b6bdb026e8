// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec3

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec3_laws(tst *testing.T) {

	chk.PrintTitle("vec3_laws")

	a := Vec3{1.3, -2.7, 0.4}
	b := Vec3{-0.6, 5.1, 9.9}

	// add/sub are inverses
	if got := a.Add(b).Sub(b); math.Abs(got.X-a.X) > 1e-12 || math.Abs(got.Y-a.Y) > 1e-12 || math.Abs(got.Z-a.Z) > 1e-12 {
		tst.Errorf("add/sub are not inverses: got %v want %v", got, a)
	}

	// scale composes
	lhs := a.Scale(2.0).Scale(3.0)
	rhs := a.Scale(6.0)
	if math.Abs(lhs.X-rhs.X) > 1e-9 || math.Abs(lhs.Y-rhs.Y) > 1e-9 || math.Abs(lhs.Z-rhs.Z) > 1e-9 {
		tst.Errorf("scale does not compose: %v vs %v", lhs, rhs)
	}

	// unit magnitude
	u, err := a.Unit()
	if err != nil {
		tst.Errorf("unit failed: %v", err)
	}
	if math.Abs(u.Mag()-1.0) > 1e-9 {
		tst.Errorf("|unit(v)| = %g, want 1", u.Mag())
	}

	// cross anti-commutative
	c1 := a.Cross(b)
	c2 := b.Cross(a)
	if math.Abs(c1.X+c2.X) > 1e-9 || math.Abs(c1.Y+c2.Y) > 1e-9 || math.Abs(c1.Z+c2.Z) > 1e-9 {
		tst.Errorf("cross not anti-commutative: %v vs -%v", c1, c2)
	}

	// dot symmetric and bilinear
	if math.Abs(a.Dot(b)-b.Dot(a)) > 1e-12 {
		tst.Errorf("dot not symmetric")
	}
	lin := a.Add(b).Dot(a) // (a+b).a == a.a + b.a
	if math.Abs(lin-(a.Dot(a)+b.Dot(a))) > 1e-9 {
		tst.Errorf("dot not bilinear")
	}
}

func Test_vec3_div_mathdomain(tst *testing.T) {
	chk.PrintTitle("vec3_div_mathdomain")
	v := Vec3{1, 1, 1}
	if _, err := v.Div(1e-60); err == nil {
		tst.Errorf("expected MathDomain error dividing by near-zero scalar")
	}
	if _, err := Vec3{}.Unit(); err == nil {
		tst.Errorf("expected MathDomain error taking unit of the zero vector")
	}
}

func Test_marsaglia_sphere(tst *testing.T) {
	chk.PrintTitle("marsaglia_sphere")

	const n = 100000
	var sx, sy, sz float64
	for i := 0; i < n; i++ {
		v := Marsaglia()
		mag := v.Mag()
		if math.Abs(mag-1.0) > 1e-9 {
			tst.Fatalf("sample %d has |v|=%g, want 1", i, mag)
		}
		sx += v.X
		sy += v.Y
		sz += v.Z
	}
	meanTol := 4.0 / math.Sqrt(float64(n))
	if math.Abs(sx/n) > meanTol || math.Abs(sy/n) > meanTol || math.Abs(sz/n) > meanTol {
		tst.Errorf("sample mean (%g,%g,%g) exceeds tolerance %g", sx/n, sy/n, sz/n, meanTol)
	}
}

func Test_mat3_rotation(tst *testing.T) {
	chk.PrintTitle("mat3_rotation")

	axis := Vec3{0, 0, 1}
	m := RotationAbout(axis, math.Pi/2)
	v := Vec3{1, 0, 0}
	got := m.Apply(v)
	if math.Abs(got.X-0) > 1e-9 || math.Abs(got.Y-1) > 1e-9 || math.Abs(got.Z-0) > 1e-9 {
		tst.Errorf("rotating (1,0,0) by pi/2 about z gave %v, want (0,1,0)", got)
	}
}
