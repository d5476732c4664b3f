// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mimurtaza/mimech/geom"
	"github.com/mimurtaza/mimech/stress"
)

// Shaft computes the stresses in a straight member with circular cross-section
// under axial force (N), bending moment (M) and torque (T). The x-axis is
// along the member and the moment bends it about the z-axis
//
//        y ^    M
//          |  ↶          σx  = N/A - M・y/I
//       ,--+--,          τxθ = T・r/J
//    --(---o---)--> x
//       `--+--'
//
type Shaft struct {
	section *geom.Circle
	N       float64 // axial force; positive in tension
	M       float64 // bending moment
	T       float64 // torque
}

// NewShaft returns a new shaft
func NewShaft(section *geom.Circle, N, M, T float64) (o *Shaft, err error) {
	if section == nil {
		return nil, chk.Err("shaft: cross-section must be given")
	}
	return &Shaft{section, N, M, T}, nil
}

// Stress computes the stress tensor at point (y, z) of the cross-section in
// the Cartesian (x, y, z) frame
func (o Shaft) Stress(y, z float64) (σ stress.Tensor, err error) {
	r := math.Sqrt(y*y + z*z)
	if r > o.section.Router()*(1+1e-12) || r < o.section.Rinner()*(1-1e-12) {
		return σ, chk.Err("shaft: point (%g, %g) is outside the cross-section", y, z)
	}
	σx := o.N/o.section.Area() - o.M*y/o.section.SecondMoment()
	τ := o.T * r / o.section.PolarMoment()
	if r == 0 {
		return stress.New(σx, 0, 0, 0, 0, 0), nil
	}

	// τ acts along θ = (0, -z, y)/r
	return stress.New(σx, 0, 0, -τ*z/r, 0, τ*y/r), nil
}

// Critical returns the stress at the outer fibre where the bending stress
// adds to the axial stress
func (o Shaft) Critical() stress.Tensor {
	y := o.section.Router()
	if o.N*o.M > 0 {
		y = -y
	}
	σ, _ := o.Stress(y, 0)
	return σ
}
