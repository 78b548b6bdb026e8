// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/universe"
)

func Test_trajectory_writer_frame_shape(tst *testing.T) {
	chk.PrintTitle("trajectory_writer_frame_shape")

	u := universe.New(10, model.Default())
	u.Atoms = make([]universe.Atom, 2)
	u.Atoms[0].Element = model.H
	u.Atoms[1].Element = model.He

	path := filepath.Join(tst.TempDir(), "traj.xyz")
	w, err := NewTrajectoryWriter(path, "test run")
	if err != nil {
		tst.Fatalf("NewTrajectoryWriter: %v", err)
	}
	if err := w.WriteFrame(u, 1.0, 2.0); err != nil {
		tst.Fatalf("WriteFrame: %v", err)
	}
	if err := w.Close(); err != nil {
		tst.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		tst.Fatalf("Open: %v", err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 4 {
		tst.Fatalf("frame has %d lines, want 4 (count+comment+2 atoms)", len(lines))
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n != 2 {
		tst.Errorf("first line = %q, want atom count 2", lines[0])
	}
	if !strings.Contains(lines[1], "test run") {
		tst.Errorf("comment line missing header: %q", lines[1])
	}
}
