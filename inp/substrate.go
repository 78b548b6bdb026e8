// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/mdsim/constants"
	"github.com/cpmech/mdsim/errs"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/populate"
	"github.com/cpmech/mdsim/vec3"
)

// angstrom is the substrate file's length unit, in metres.
const angstrom = 1e-10

// Meta carries a substrate file's descriptive header, preserved so it can
// be echoed into the trajectory output for provenance (SPEC_FULL.md §9
// supplement; original_source's files carry the same three free-text lines
// but load.c discards them after parsing).
type Meta struct {
	Name    string
	Author  string
	Comment string
}

// LoadSubstrate parses a substrate (or solvent) template file:
//
//	NAME    <free text>
//	AUTHOR  <free text>
//	COMMENT <free text>
//	ATOM  <element-index>  <charge, e>  <epsilon, J>  <sigma, m>  <x, A>  <y, A>  <z, A>
//	BOND  <atom-index>  <atom-index>  <k, N/m>
//
// element-index indexes order, the same positional ordering LoadModel
// assigned when it built the element table (so a substrate file always
// travels with the model file it was authored against). Charge is given in
// multiples of the elementary charge; x/y/z are given in Angstrom. Blank
// lines and lines starting with '#' are ignored.
func LoadSubstrate(path string, order []model.Element) (populate.Template, Meta, error) {
	var tmpl populate.Template
	var meta Meta

	b, err := readFileOrConfigError("inp.LoadSubstrate", path)
	if err != nil {
		return tmpl, meta, err
	}

	for lineNo, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		kw := strings.ToUpper(fields[0])
		rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

		switch kw {
		case "NAME":
			meta.Name = rest
		case "AUTHOR":
			meta.Author = rest
		case "COMMENT":
			meta.Comment = rest
		case "ATOM":
			a, err := parseAtomLine(fields[1:], order)
			if err != nil {
				return tmpl, meta, errs.New(errs.ParseError, "inp.LoadSubstrate", "%s:%d: %v", path, lineNo+1, err)
			}
			tmpl.Atoms = append(tmpl.Atoms, a)
		case "BOND":
			bd, err := parseBondLine(fields[1:])
			if err != nil {
				return tmpl, meta, errs.New(errs.ParseError, "inp.LoadSubstrate", "%s:%d: %v", path, lineNo+1, err)
			}
			tmpl.Bonds = append(tmpl.Bonds, bd)
		default:
			return tmpl, meta, errs.New(errs.ParseError, "inp.LoadSubstrate", "%s:%d: unknown keyword %q", path, lineNo+1, fields[0])
		}
	}
	if len(tmpl.Atoms) == 0 {
		return tmpl, meta, errs.New(errs.ParseError, "inp.LoadSubstrate", "%s: no ATOM lines found", path)
	}
	return tmpl, meta, nil
}

func parseAtomLine(fields []string, order []model.Element) (populate.Atom, error) {
	if len(fields) != 7 {
		return populate.Atom{}, errs.New(errs.ParseError, "inp.parseAtomLine", "ATOM expects 7 fields, got %d", len(fields))
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil || idx < 0 || idx >= len(order) {
		return populate.Atom{}, errs.New(errs.ParseError, "inp.parseAtomLine", "invalid element index %q", fields[0])
	}
	vals, err := parseFloats(fields[1:])
	if err != nil {
		return populate.Atom{}, errs.New(errs.ParseError, "inp.parseAtomLine", "%v", err)
	}
	return populate.Atom{
		Element: order[idx],
		Charge:  vals[0] * constants.ElementaryCharge,
		Epsilon: vals[1],
		Sigma:   vals[2],
		Offset:  vec3.Vec3{X: vals[3] * angstrom, Y: vals[4] * angstrom, Z: vals[5] * angstrom},
	}, nil
}

func parseBondLine(fields []string) (populate.Bond, error) {
	if len(fields) != 3 {
		return populate.Bond{}, errs.New(errs.ParseError, "inp.parseBondLine", "BOND expects 3 fields, got %d", len(fields))
	}
	from, err1 := strconv.Atoi(fields[0])
	to, err2 := strconv.Atoi(fields[1])
	k, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return populate.Bond{}, errs.New(errs.ParseError, "inp.parseBondLine", "invalid BOND fields")
	}
	return populate.Bond{From: from, To: to, K: k}, nil
}
