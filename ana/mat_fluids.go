// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/mimurtaza/mimech/stress"
)

// Water handles the properties of water
type Water struct {
	Θ   float64 // reference temperature; default = 25°C or 298.15K
	K   float64 // bulk modulus @ reference temperature
	Rho float64 // intrinsic density @ reference temperature
	C   float64 // compressibility @ reference temperature
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 298.15      // [K]      25°C
	o.K = 2.2e6       // [kPa]    25°C
	o.Rho = 0.9970479 // [Mg/m³]  25°C
	o.C = o.Rho / o.K // [Mg/(m³・kPa)]
}

// FluidColumn computes the pressure (p) and intrinsic density (R) of a
// slightly compressible fluid along a column with gravity (g)
//
//    R    = R0 + C・(p - p0)
//    dp   = -R(p)・g・dz
//    p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)
//
//  The stress in the fluid is -p·I (tension positive)
type FluidColumn struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation where (R0,p0) is known; i.e. the free surface
}

// Init initialises this structure
func (o *FluidColumn) Init(R0, p0, C, g, H float64) (err error) {
	if R0 <= 0 || C < 0 || g < 0 {
		return chk.Err("fluid column: R0 must be positive and C, g non-negative. R0=%g, C=%g, g=%g are invalid", R0, C, g)
	}
	o.R0, o.P0, o.C, o.Grav, o.H = R0, p0, C, g, H
	return
}

// InitWater initialises this structure with water properties and a free surface at H
func (o *FluidColumn) InitWater(g, H float64) (err error) {
	var water Water
	water.Init()
	return o.Init(water.Rho, 0, water.C, g, H)
}

// Calc computes pressure and density at elevation z ≤ H
func (o FluidColumn) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// CalcNum computes pressure and density by integrating dp/dz numerically.
// With the pseudo variable T ∈ [0, 1] such that z(T) = H - T・(H - z):
//
//            / dp/dT \    / R・g・(H - z) \
//    dY/dT = |        | = |               |
//            \ dR/dT /    \   C・dp/dT    /
//
func (o FluidColumn) CalcNum(z float64) (p, R float64) {
	Δz := o.H - z
	fcn := func(f la.Vector, h, T float64, y la.Vector) {
		f[0] = y[1] * o.Grav * Δz // dp/dT
		f[1] = o.C * f[0]         // dR/dT
	}
	y := la.Vector{o.P0, o.R0}
	ode.Dopri5simple(fcn, y, 1.0, 1e-10)
	return y[0], y[1]
}

// Stress returns the (hydrostatic) stress tensor in the fluid at elevation z
func (o FluidColumn) Stress(z float64) (σ stress.Tensor, err error) {
	if z > o.H {
		return σ, chk.Err("fluid column: elevation z=%g is above the free surface H=%g", z, o.H)
	}
	p, _ := o.Calc(z)
	return stress.Hydrostatic(-p), nil
}
