// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mimurtaza/mimech/stress"
)

// OnedLinElast implements a linear elastic model for rods: only the axial
// strain εx produces stress
//  σx = E・εx
type OnedLinElast struct {
	E float64 // Young's modulus
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		default:
			return chk.Err("oned-elast: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("oned-elast: Young's modulus must be positive. E = %g is invalid", o.E)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms(example bool) dbf.Params {
	if example || o.E == 0 {
		return []*dbf.P{&dbf.P{N: "E", V: 2.0e+08}}
	}
	return []*dbf.P{&dbf.P{N: "E", V: o.E}}
}

// Stress computes the (uniaxial) stress tensor for given strains
func (o OnedLinElast) Stress(ε []float64) (σ stress.Tensor, err error) {
	if err = checkStrains(ε); err != nil {
		return
	}
	if o.E <= 0 {
		return σ, chk.Err("oned-elast: model is not initialised")
	}
	return stress.Uniaxial(o.E * ε[0]), nil
}

// Strain returns the axial strain for a uniaxial stress state
func (o OnedLinElast) Strain(σ stress.Tensor) (ε []float64, err error) {
	if o.E <= 0 {
		return nil, chk.Err("oned-elast: model is not initialised")
	}
	c := σ.Components()
	for i := 1; i < 6; i++ {
		if c[i] != 0 {
			return nil, chk.Err("oned-elast: stress state must be uniaxial along x. %v is invalid", σ)
		}
	}
	return []float64{c[0] / o.E, 0, 0, 0, 0, 0}, nil
}
