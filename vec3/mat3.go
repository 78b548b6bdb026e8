// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec3

import "math"

// Mat3 is a 3x3 matrix, row-major, used here exclusively as a rotation
// transform (axis-angle / Rodrigues generator). Grounded on
// original_source/sources/vec3.c's mat3_transform_gen_rot/mat3_transform_apply.
type Mat3 struct {
	X0, X1, X2 float64
	Y0, Y1, Y2 float64
	Z0, Z1, Z2 float64
}

// Apply returns m*v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m.X0*v.X + m.X1*v.Y + m.X2*v.Z,
		Y: m.Y0*v.X + m.Y1*v.Y + m.Y2*v.Z,
		Z: m.Z0*v.X + m.Z1*v.Y + m.Z2*v.Z,
	}
}

// RotationAbout builds the Rodrigues rotation matrix for the given angle
// (radians) about axis, which is expected to already be a unit vector
// (callers normalise once, up front, rather than every call).
func RotationAbout(axis Vec3, angle float64) Mat3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Mat3{
		X0: x*x*t + c, X1: x*y*t - z*s, X2: x*z*t + y*s,
		Y0: y*x*t + z*s, Y1: y*y*t + c, Y2: y*z*t - x*s,
		Z0: z*x*t - y*s, Z1: z*y*t + x*s, Z2: z*z*t + c,
	}
}
