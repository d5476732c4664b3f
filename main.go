// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mimurtaza/mimech/stress"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	sx := io.ArgToFloat(0, 0.0)
	sy := io.ArgToFloat(1, 0.0)
	sz := io.ArgToFloat(2, 0.0)
	sxy := io.ArgToFloat(3, 0.0)
	syz := io.ArgToFloat(4, 0.0)
	sxz := io.ArgToFloat(5, 0.0)
	verbose := io.ArgToBool(6, false)

	// message
	io.PfWhite("\nMimech -- mechanics of materials calculations\n")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"normal stress along x", "sx", sx,
		"normal stress along y", "sy", sy,
		"normal stress along z", "sz", sz,
		"shear stress xy", "sxy", sxy,
		"shear stress yz", "syz", syz,
		"shear stress xz", "sxz", sxz,
		"show full matrix", "verbose", verbose,
	))

	// stress tensor
	σ := stress.New(sx, sy, sz, sxy, syz, sxz)
	io.Pf("%v\n", σ)
	if verbose {
		io.Pf("%s\n", σ.Verbose())
	}

	// invariants
	I1, I2, I3 := σ.Invariants()
	io.Pf("invariants:        I1 = %g, I2 = %g, I3 = %g\n", I1, I2, I3)

	// principal stresses
	p, err := σ.Principal()
	if err != nil {
		chk.Panic("cannot compute principal stresses:\n%v", err)
	}
	τmax := (p.Sx() - p.Sz()) / 2.0
	io.Pf("principal:         %v\n", p)
	io.Pforan("von Mises:         σvm  = %g\n", σ.VonMises())
	io.Pforan("Tresca:            τmax = %g\n", τmax)
	io.Pf("mean stress:       σm   = %g\n", σ.Mean())
	io.Pf("octahedral shear:  τoct = %g\n", σ.Octahedral())
}
