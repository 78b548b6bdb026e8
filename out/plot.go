// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotEnergy renders a kinetic/potential/total energy-vs-iteration diagnostic
// PNG into dirout/fnkey.png, in the same plt.Plot/plt.Gll/plt.Save sequence
// gofem/out/plotting.go uses for its subplot windows, collapsed to the
// single-panel case a trajectory's energy trace needs.
func PlotEnergy(dirout, fnkey string, iteration []float64, kinetic, potential, total []float64) error {
	plt.Plot(iteration, kinetic, io.Sf("'b-', label='%s'", "kinetic"))
	plt.Plot(iteration, potential, io.Sf("'r-', label='%s'", "potential"))
	plt.Plot(iteration, total, io.Sf("'k-', lw=2, label='%s'", "total"))
	plt.Gll("iteration", "energy (J)", "")
	return plt.Save(dirout, fnkey)
}
