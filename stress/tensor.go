// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stress implements the algebra of symmetric Cauchy stress tensors
//
//          [ σx  σxy σxz ]
//      σ = [ σxy σy  σyz ]      tension is positive
//          [ σxz σyz σz  ]
//
//  Tensors are values: all operations return new tensors and never modify
//  their operands. Operands of Add, Sub and Range must be given in the same
//  coordinate frame; this is not checked.
package stress

import "math"

// Tensor holds the symmetric 3×3 stress matrix
type Tensor struct {
	s [3][3]float64
}

// New returns a new tensor from its six independent components
func New(sx, sy, sz, sxy, syz, sxz float64) Tensor {
	return Tensor{[3][3]float64{
		{sx, sxy, sxz},
		{sxy, sy, syz},
		{sxz, syz, sz},
	}}
}

// Uniaxial returns the tensor of a uniaxial stress state along x
func Uniaxial(sx float64) Tensor {
	return New(sx, 0, 0, 0, 0, 0)
}

// Hydrostatic returns σ = p·I
func Hydrostatic(p float64) Tensor {
	return New(p, p, p, 0, 0, 0)
}

// Sx returns σx
func (o Tensor) Sx() float64 { return o.s[0][0] }

// Sy returns σy
func (o Tensor) Sy() float64 { return o.s[1][1] }

// Sz returns σz
func (o Tensor) Sz() float64 { return o.s[2][2] }

// Sxy returns σxy
func (o Tensor) Sxy() float64 { return o.s[0][1] }

// Syz returns σyz
func (o Tensor) Syz() float64 { return o.s[1][2] }

// Sxz returns σxz
func (o Tensor) Sxz() float64 { return o.s[0][2] }

// Components returns a new slice with σx, σy, σz, σxy, σyz, σxz
func (o Tensor) Components() []float64 {
	return []float64{o.s[0][0], o.s[1][1], o.s[2][2], o.s[0][1], o.s[1][2], o.s[0][2]}
}

// Matrix returns a copy of the 3×3 matrix
func (o Tensor) Matrix() [3][3]float64 {
	return o.s
}

// Mandel returns the components in Mandel's basis, as used by gosl/tsr
//  σ = [σx, σy, σz, √2·σxy, √2·σyz, √2·σxz]
func (o Tensor) Mandel() []float64 {
	c := o.Components()
	return []float64{c[0], c[1], c[2], math.Sqrt2 * c[3], math.Sqrt2 * c[4], math.Sqrt2 * c[5]}
}

// Add returns o + other
func (o Tensor) Add(other Tensor) Tensor {
	a, b := o.Components(), other.Components()
	return New(a[0]+b[0], a[1]+b[1], a[2]+b[2], a[3]+b[3], a[4]+b[4], a[5]+b[5])
}

// Sub returns o - other
func (o Tensor) Sub(other Tensor) Tensor {
	a, b := o.Components(), other.Components()
	return New(a[0]-b[0], a[1]-b[1], a[2]-b[2], a[3]-b[3], a[4]-b[4], a[5]-b[5])
}

// Scale returns k·o
func (o Tensor) Scale(k float64) Tensor {
	c := o.Components()
	return New(k*c[0], k*c[1], k*c[2], k*c[3], k*c[4], k*c[5])
}

// VonMises returns the von Mises equivalent stress
//
//          ____________________________________________________________
//         / (σx-σy)² + (σy-σz)² + (σz-σx)² + 6·(σxy² + σyz² + σxz²)
//  σvm = / ──────────────────────────────────────────────────────────
//      \/                             2
//
func (o Tensor) VonMises() float64 {
	sx, sy, sz := o.s[0][0], o.s[1][1], o.s[2][2]
	sxy, syz, sxz := o.s[0][1], o.s[1][2], o.s[0][2]
	dir := (sx-sy)*(sx-sy) + (sy-sz)*(sy-sz) + (sz-sx)*(sz-sx)
	shear := sxy*sxy + syz*syz + sxz*sxz
	return math.Sqrt(dir+6.0*shear) / math.Sqrt2
}

// Range returns the equivalent stress range between o and other; i.e. the
// von Mises stress of o - other
func (o Tensor) Range(other Tensor) float64 {
	return o.Sub(other).VonMises()
}

// Invariants returns the coefficients of the characteristic polynomial
//  λ³ - I1·λ² + I2·λ - I3 = 0
//  I1 = tr(σ)
//  I2 = σx·σy + σy·σz + σz·σx - σxy² - σyz² - σxz²
//  I3 = det(σ)
func (o Tensor) Invariants() (I1, I2, I3 float64) {
	sx, sy, sz := o.s[0][0], o.s[1][1], o.s[2][2]
	sxy, syz, sxz := o.s[0][1], o.s[1][2], o.s[0][2]
	I1 = sx + sy + sz
	I2 = sx*sy + sy*sz + sz*sx - sxy*sxy - syz*syz - sxz*sxz
	I3 = sx*(sy*sz-syz*syz) - sxy*(sxy*sz-syz*sxz) + sxz*(sxy*syz-sy*sxz)
	return
}

// Mean returns the mean (hydrostatic) stress tr(σ)/3. Note that gosl/tsr's
// p = -Mean since soil mechanics takes compression as positive
func (o Tensor) Mean() float64 {
	return (o.s[0][0] + o.s[1][1] + o.s[2][2]) / 3.0
}

// Deviator returns the deviatoric part σ - Mean·I
func (o Tensor) Deviator() Tensor {
	return o.Sub(Hydrostatic(o.Mean()))
}

// Octahedral returns the octahedral shear stress √2/3·σvm
func (o Tensor) Octahedral() float64 {
	return math.Sqrt2 * o.VonMises() / 3.0
}
