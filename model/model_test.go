// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_model_reference_values(tst *testing.T) {
	chk.PrintTitle("model_reference_values")

	cases := []struct {
		e                          Element
		symbol                     string
		mass, cov, vdw, bondAngle float64
	}{
		{He, "He", 6.6422e-27, 28e-12, 140e-12, 0.0},
		{Csp3, "C", 1.9926e-26, 77e-12, 170e-12, 1.9106},
		{Csp2, "C", 1.9926e-26, 73e-12, 170e-12, 2.0944},
		{Nsp3, "N", 2.3248e-26, 71e-12, 155e-12, 1.9106},
		{WaterO, "O", 2.6569e-26, 64.84e-12, 152e-12, 1.8230},
		{Cl, "Cl", 5.8118e-26, 102e-12, 175e-12, 0.0},
	}
	for _, c := range cases {
		if got := Symbol(c.e); got != c.symbol {
			tst.Errorf("Symbol(%d) = %q, want %q", c.e, got, c.symbol)
		}
		if got := Mass(c.e); got != c.mass {
			tst.Errorf("Mass(%d) = %g, want %g", c.e, got, c.mass)
		}
		if got := CovalentRadius(c.e); got != c.cov {
			tst.Errorf("CovalentRadius(%d) = %g, want %g", c.e, got, c.cov)
		}
		if got := VdwRadius(c.e); got != c.vdw {
			tst.Errorf("VdwRadius(%d) = %g, want %g", c.e, got, c.vdw)
		}
		if got := BondAngle(c.e); got != c.bondAngle {
			tst.Errorf("BondAngle(%d) = %g, want %g", c.e, got, c.bondAngle)
		}
	}
}

func Test_model_lone_pair_mass_zero(tst *testing.T) {
	chk.PrintTitle("model_lone_pair_mass_zero")
	if Mass(LonePair) != 0.0 {
		tst.Errorf("lone-pair mass must be 0")
	}
	if Mass(Null) != 0.0 {
		tst.Errorf("null-tag mass must be 0")
	}
}

func Test_model_unknown_tag(tst *testing.T) {
	chk.PrintTitle("model_unknown_tag")
	unknown := Element(200)
	if Valid(unknown) {
		tst.Errorf("tag 200 should not be valid")
	}
	if Symbol(unknown) != "??" {
		tst.Errorf("Symbol(unknown) = %q, want \"??\"", Symbol(unknown))
	}
	if Mass(unknown) != 0 || CovalentRadius(unknown) != 0 || VdwRadius(unknown) != 0 || BondAngle(unknown) != 0 {
		tst.Errorf("unknown tag must return 0 for all numeric queries")
	}
}
