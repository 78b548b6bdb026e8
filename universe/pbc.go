// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package universe

import "github.com/cpmech/mdsim/vec3"

// MinimumImage returns the displacement from "from" to "to" translated
// under the minimum-image convention: each axis component is translated by
// one cell size, if needed, so it lands in (-size/2, +size/2]. Grounded on
// original_source's potential_total/potential_angle PBC-undo blocks
// (sources/potential.c), which translate only the component that is out of
// range rather than re-deriving the whole displacement from scratch.
func (u *Universe) MinimumImage(from, to vec3.Vec3) vec3.Vec3 {
	d := to.Sub(from)
	half := u.Size / 2
	d.X = wrapComponent(d.X, u.Size, half)
	d.Y = wrapComponent(d.Y, u.Size, half)
	d.Z = wrapComponent(d.Z, u.Size, half)
	return d
}

func wrapComponent(d, size, half float64) float64 {
	if d > half {
		return d - size
	}
	if d <= -half {
		return d + size
	}
	return d
}

// Wrap enforces PBC on a single position: every coordinate that has
// drifted outside [-size/2, +size/2) is translated back in by one cell
// size. A single step is assumed to move an atom less than one cell width
// (spec.md §5), so one add/subtract per axis suffices.
func (u *Universe) Wrap(p vec3.Vec3) vec3.Vec3 {
	half := u.Size / 2
	p.X = wrapPosition(p.X, u.Size, half)
	p.Y = wrapPosition(p.Y, u.Size, half)
	p.Z = wrapPosition(p.Z, u.Size, half)
	return p
}

func wrapPosition(x, size, half float64) float64 {
	if x >= half {
		return x - size
	}
	if x < -half {
		return x + size
	}
	return x
}

// WrapAtom wraps the position of atom i in place.
func (u *Universe) WrapAtom(i int) {
	u.Atoms[i].Pos = u.Wrap(u.Atoms[i].Pos)
}
