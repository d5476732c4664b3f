// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mimurtaza/mimech/stress"
)

// LinElast implements an isotropic linear elastic model (Hooke's law)
//  σ = λ・tr(ε)・I + 2・G・ε
type LinElast struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	G  float64 // shear modulus
	K  float64 // bulk modulus
	L  float64 // Lamé's first parameter λ
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	var E, ν float64
	for _, p := range prms {
		switch p.N {
		case "E":
			E = p.V
		case "nu":
			ν = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.Set(E, ν)
}

// Set sets E and ν and computes the other moduli
func (o *LinElast) Set(E, ν float64) (err error) {
	if E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E = %g is invalid", E)
	}
	if ν <= -1 || ν >= 0.5 {
		return chk.Err("lin-elast: Poisson's coefficient must be in (-1, 0.5). ν = %g is invalid", ν)
	}
	o.E, o.Nu = E, ν
	o.G = E / (2.0 * (1.0 + ν))
	o.K = E / (3.0 * (1.0 - 2.0*ν))
	o.L = E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms(example bool) dbf.Params {
	if example || o.E == 0 {
		return []*dbf.P{
			&dbf.P{N: "E", V: 200000},
			&dbf.P{N: "nu", V: 0.32},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "nu", V: o.Nu},
	}
}

// Stress computes the stress tensor for given strains
func (o LinElast) Stress(ε []float64) (σ stress.Tensor, err error) {
	if err = checkStrains(ε); err != nil {
		return
	}
	if o.E <= 0 {
		return σ, chk.Err("lin-elast: model is not initialised")
	}
	trε := ε[0] + ε[1] + ε[2]
	return stress.New(
		o.L*trε+2.0*o.G*ε[0],
		o.L*trε+2.0*o.G*ε[1],
		o.L*trε+2.0*o.G*ε[2],
		2.0*o.G*ε[3],
		2.0*o.G*ε[4],
		2.0*o.G*ε[5],
	), nil
}

// Strain computes the strains for a given stress tensor
//  ε = ((1+ν)・σ - ν・tr(σ)・I) / E
func (o LinElast) Strain(σ stress.Tensor) (ε []float64, err error) {
	if o.E <= 0 {
		return nil, chk.Err("lin-elast: model is not initialised")
	}
	c := σ.Components()
	trσ := c[0] + c[1] + c[2]
	ε = make([]float64, 6)
	for i := 0; i < 6; i++ {
		ε[i] = (1.0 + o.Nu) * c[i] / o.E
		if i < 3 {
			ε[i] -= o.Nu * trσ / o.E
		}
	}
	return
}
