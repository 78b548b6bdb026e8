// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/mdsim/errs"
	"github.com/cpmech/mdsim/model"
)

// modelFileElements is the order in which Element tags are assigned to
// lines of a model file: the file holds rows of descriptive properties
// (name, mass, radii, bond angle...), not the numeric Element tag itself,
// so a loaded file is mapped positionally onto the closed enum, the only
// mapping the tag set and the file format agree on without a lookup table
// neither spec nor original_source provides. See DESIGN.md, "Decision —
// model-file-to-Element-tag mapping".
var modelFileElements = []model.Element{
	model.H, model.He, model.Li, model.Be, model.Bsp3, model.Bsp2,
	model.Csp3, model.Csp2, model.Csp, model.Nsp3, model.Nsp2,
	model.Osp3, model.Osp2, model.F, model.Ne, model.Cl, model.WaterO,
}

// LoadModel parses a model file: one element per non-blank, non-comment
// ('#') line, whitespace-separated fields
//
//	symbol  mass(kg)  covalent_radius(m)  vdw_radius(m)  bond_angle(rad)  [lj_epsilon(J)  lj_sigma(m)]
//
// Lines are assigned, in file order, to the Element tags starting at
// model.H (see modelFileElements). LoadModel returns the resulting Table
// together with that same ordering, so LoadSubstrate can resolve a
// substrate file's per-atom element index against the same file.
func LoadModel(path string) (model.Table, []model.Element, error) {
	b, err := readFileOrConfigError("inp.LoadModel", path)
	if err != nil {
		return nil, nil, err
	}

	tbl := make(model.Table)
	var order []model.Element
	for lineNo, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return nil, nil, errs.New(errs.ParseError, "inp.LoadModel", "%s:%d: expected at least 5 fields, got %d", path, lineNo+1, len(fields))
		}
		if len(order) >= len(modelFileElements) {
			return nil, nil, errs.New(errs.ParseError, "inp.LoadModel", "%s:%d: more element rows than known tags (%d)", path, lineNo+1, len(modelFileElements))
		}
		tag := modelFileElements[len(order)]

		vals, err := parseFloats(fields[1:5])
		if err != nil {
			return nil, nil, errs.New(errs.ParseError, "inp.LoadModel", "%s:%d: %v", path, lineNo+1, err)
		}
		entry := model.Entry{
			Symbol:    fields[0],
			Mass:      vals[0],
			Covalent:  vals[1],
			Vdw:       vals[2],
			BondAngle: vals[3],
		}
		if len(fields) >= 7 {
			extra, err := parseFloats(fields[5:7])
			if err != nil {
				return nil, nil, errs.New(errs.ParseError, "inp.LoadModel", "%s:%d: %v", path, lineNo+1, err)
			}
			entry.LJEpsilon, entry.LJSigma = extra[0], extra[1]
		}
		tbl[tag] = entry
		order = append(order, tag)
	}
	if len(order) == 0 {
		return nil, nil, errs.New(errs.ParseError, "inp.LoadModel", "%s: no element rows found", path)
	}
	return tbl, order, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
