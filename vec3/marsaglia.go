// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec3

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// Marsaglia draws a uniformly-distributed point on the unit sphere using
// the 1972 rejection-sampling method: two uniform variates x1,x2 in
// [-1,1] are drawn until x1^2+x2^2 < 1, then
//
//	v = (2*x1*sqrt(1-x1^2-x2^2), 2*x2*sqrt(1-x1^2-x2^2), 1-2*(x1^2+x2^2))
//
// original_source/sources/vec3.c draws its variates as cos(rand()), which
// is not a uniform distribution over [-1,1] and biases the sampled
// direction; this implementation draws x1,x2 directly from
// gosl/rnd.Float64(-1,1), the same uniform-variate source gofem's
// simulation-input layer (inp.Data.AdjRandom) draws its random parameters
// from, fixing that bug per spec.md's Open Questions / source bugs.
func Marsaglia() Vec3 {
	var x1, x2 float64
	for {
		x1 = rnd.Float64(-1, 1)
		x2 = rnd.Float64(-1, 1)
		if x1*x1+x2*x2 < 1 {
			break
		}
	}
	root := math.Sqrt(1 - x1*x1 - x2*x2)
	return Vec3{
		X: 2 * x1 * root,
		Y: 2 * x2 * root,
		Z: 1 - 2*(x1*x1+x2*x2),
	}
}
