// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec3 implements 3-vector and 3x3 matrix arithmetic for the
// simulation core: addition, subtraction, scaling, division, dot and cross
// products, magnitude, unit vectors, axis-angle rotation and a Marsaglia
// unit-sphere sampler. Grounded on original_source/sources/vec3.c and
// vec3d.c, corrected where the source is known-buggy (see Marsaglia).
package vec3

import (
	"math"

	"github.com/cpmech/mdsim/errs"
)

// DivThreshold is the minimum absolute scalar magnitude a division or
// unit-vector operation will accept. Below it, the operation fails with
// MathDomain rather than returning Inf/NaN silently.
const DivThreshold = 1e-50

// Vec3 is a 3-component vector in metres, m/s, m/s^2 or Newtons depending
// on context. Value type: copies are cheap and every operation here returns
// a new Vec3 rather than mutating in place.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = Vec3{}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v*lambda.
func (v Vec3) Scale(lambda float64) Vec3 {
	return Vec3{v.X * lambda, v.Y * lambda, v.Z * lambda}
}

// Div returns v/lambda. Fails with MathDomain if |lambda| < DivThreshold.
func (v Vec3) Div(lambda float64) (Vec3, error) {
	if math.Abs(lambda) < DivThreshold {
		return Zero, errs.New(errs.MathDomain, "vec3.Div", "divisor %g below threshold %g", lambda, DivThreshold)
	}
	return Vec3{v.X / lambda, v.Y / lambda, v.Z / lambda}, nil
}

// Dot returns the scalar dot product v.w. Symmetric and bilinear.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns v x w. Anti-commutative: w.Cross(v) == v.Cross(w).Scale(-1).
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Mag returns the Euclidean magnitude of v.
func (v Vec3) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns the unit vector of v. Fails with MathDomain if |v| < DivThreshold.
func (v Vec3) Unit() (Vec3, error) {
	mag := v.Mag()
	if mag < DivThreshold {
		return Zero, errs.New(errs.MathDomain, "vec3.Unit", "magnitude %g below threshold %g", mag, DivThreshold)
	}
	return v.Div(mag) // mag >= DivThreshold already checked, error impossible here
}

// Angle returns the angle, in radians, between v and w.
// Fails with MathDomain if either vector has near-zero magnitude.
func (v Vec3) Angle(w Vec3) (float64, error) {
	lv, lw := v.Mag(), w.Mag()
	if lv < DivThreshold || lw < DivThreshold {
		return 0, errs.New(errs.MathDomain, "vec3.Angle", "near-zero operand magnitude (%g, %g)", lv, lw)
	}
	cosTheta := v.Dot(w) / (lv * lw)
	// Clamp: floating point round-off can push cosTheta a hair outside
	// [-1,1] for nearly-parallel or nearly-antiparallel vectors.
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta), nil
}
