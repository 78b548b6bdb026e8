// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mdsim/model"
)

func writeTemp(tst *testing.T, name, content string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}
	return path
}

const sampleModel = `# symbol mass covalent vdw bondAngle
H  1.6605e-27  31e-12  120e-12  0
O  2.6569e-26  64.84e-12  152e-12  1.8230
`

func Test_load_model_positional_mapping(tst *testing.T) {
	chk.PrintTitle("load_model_positional_mapping")

	path := writeTemp(tst, "model.txt", sampleModel)
	tbl, order, err := LoadModel(path)
	if err != nil {
		tst.Fatalf("LoadModel: %v", err)
	}
	if len(order) != 2 || order[0] != model.H || order[1] != model.He {
		tst.Fatalf("unexpected order: %v", order)
	}
	if tbl.Symbol(model.H) != "H" {
		tst.Errorf("symbol for first row = %q, want H", tbl.Symbol(model.H))
	}
	if tbl.Symbol(model.He) != "O" {
		tst.Errorf("symbol for second row = %q, want O (positionally mapped to He's tag)", tbl.Symbol(model.He))
	}
}

const sampleSubstrate = `NAME water
AUTHOR test
COMMENT a single rigid water molecule
ATOM 1 -0.8 1e-21 3e-10 0 0 0
ATOM 0 0.4 0 0 0.96 0 0
ATOM 0 0.4 0 0 -0.24 0.93 0
BOND 0 1 450.0
BOND 0 2 450.0
`

func Test_load_substrate(tst *testing.T) {
	chk.PrintTitle("load_substrate")

	modelPath := writeTemp(tst, "model.txt", sampleModel)
	_, order, err := LoadModel(modelPath)
	if err != nil {
		tst.Fatalf("LoadModel: %v", err)
	}

	subPath := writeTemp(tst, "water.txt", sampleSubstrate)
	tmpl, meta, err := LoadSubstrate(subPath, order)
	if err != nil {
		tst.Fatalf("LoadSubstrate: %v", err)
	}
	if meta.Name != "water" || meta.Author != "test" {
		tst.Errorf("unexpected meta: %+v", meta)
	}
	if len(tmpl.Atoms) != 3 || len(tmpl.Bonds) != 2 {
		tst.Fatalf("unexpected template shape: %+v", tmpl)
	}
	if tmpl.Atoms[0].Element != model.He {
		tst.Errorf("atom 0 element = %v, want He (index 1)", tmpl.Atoms[0].Element)
	}
	wantX := 0.96e-10
	if math.Abs(tmpl.Atoms[1].Offset.X-wantX) > 1e-20 {
		tst.Errorf("atom 1 offset.X = %g, want %g", tmpl.Atoms[1].Offset.X, wantX)
	}
}
