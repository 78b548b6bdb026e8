// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes run outputs: the XYZ trajectory and an optional
// diagnostic energy-vs-iteration plot. Grounded on gofem/out's pattern of a
// small stateful writer type wrapping an *os.File (out.go) and gosl/plt
// plotting helpers (plotting.go), generalized from FEM result frames to MD
// trajectory frames.
package out

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mdsim/errs"
	"github.com/cpmech/mdsim/universe"
)

// TrajectoryWriter appends XYZ-format frames to an open file: a frame is an
// atom count line, a comment line, and one "symbol x y z" line per atom
// (positions reported in Angstrom, the format's conventional unit).
type TrajectoryWriter struct {
	f       *os.File
	Header  string // free-text provenance, written into every frame's comment line
}

// NewTrajectoryWriter creates (or truncates) path and returns a writer
// for it. header is prefixed to every frame's comment line, e.g. the
// substrate's NAME/AUTHOR/COMMENT metadata and the run's pressure setting.
func NewTrajectoryWriter(path, header string) (*TrajectoryWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.New(errs.IOError, "out.NewTrajectoryWriter", "creating %q: %v", path, err)
	}
	return &TrajectoryWriter{f: f, Header: header}, nil
}

// WriteFrame appends one frame reflecting u's current state.
func (w *TrajectoryWriter) WriteFrame(u *universe.Universe, potential, kinetic float64) error {
	const angstrom = 1e-10
	io.Ff(w.f, "%d\n", u.NumAtoms())
	io.Ff(w.f, "%s iteration=%d time=%g potential=%g kinetic=%g\n",
		w.Header, u.Iteration, u.Time, potential, kinetic)
	for i := range u.Atoms {
		a := &u.Atoms[i]
		sym := u.Model.Symbol(a.Element)
		io.Ff(w.f, "%-3s %12.6f %12.6f %12.6f\n", sym, a.Pos.X/angstrom, a.Pos.Y/angstrom, a.Pos.Z/angstrom)
	}
	return nil
}

// Close closes the underlying file.
func (w *TrajectoryWriter) Close() error {
	return w.f.Close()
}
