// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mimurtaza/mimech/geom"
	"github.com/mimurtaza/mimech/stress"
)

// SelfWeight computes the stresses in a standing cylindrical column loaded by
// its own weight; optionally with lateral confinement
//
//         o-----o            negative stress means compression
//     ▷ | |     | ◁
//     ▷ | |  ρ  | ◁          σz(z) = -ρ・g・(h - z)     with ρ = m / V
//  h  ▷ | |  ν  | ◁          σh(z) = ν/(1-ν)・σz(z)    if confined
//     ▷ | |  g  | ◁                = 0                  otherwise
//     ▷ | |     | ◁
//         o-----o
//       △  △  △  △
type SelfWeight struct {

	// input
	h        float64 // height
	ρ        float64 // density
	g        float64 // gravity constant (positive value)
	ν        float64 // Poisson's coefficient
	confined bool    // lateral confinement (no lateral strain)

	// derived
	d float64 // auxiliary coefficient = ν/(1-ν)
}

// Init initialises this structure
func (o *SelfWeight) Init(column *geom.Cylinder, g float64, confined bool, nu float64) (err error) {
	if column == nil {
		return chk.Err("self-weight: column must be given")
	}
	if g < 0 {
		return chk.Err("self-weight: gravity constant must be non-negative. g = %g is invalid", g)
	}
	if confined && (nu < 0 || nu >= 0.5) {
		return chk.Err("self-weight: Poisson's coefficient must be in [0, 0.5). ν = %g is invalid", nu)
	}
	o.h = column.Height()
	o.ρ = column.Mass() / column.Volume()
	o.g, o.ν, o.confined = g, nu, confined
	o.d = 0
	if confined {
		o.d = o.ν / (1.0 - o.ν)
	}
	return
}

// Stress computes the stress tensor at elevation z measured from the base
func (o SelfWeight) Stress(z float64) (σ stress.Tensor, err error) {
	if z < 0 || z > o.h {
		return σ, chk.Err("self-weight: elevation z=%g is outside the column [0, %g]", z, o.h)
	}
	σv := -o.ρ * o.g * (o.h - z) // vertical stress
	σh := o.d * σv               // horizontal stress
	return stress.New(σh, σh, σv, 0, 0, 0), nil
}

// BaseStress returns the stress at the base of the column; i.e. the weight over the area
func (o SelfWeight) BaseStress() stress.Tensor {
	σ, _ := o.Stress(0)
	return σ
}
