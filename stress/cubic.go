// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

var (
	// ErrNotFinite is returned when the cubic has NaN or infinite coefficients
	ErrNotFinite = chk.Err("stress: cubic coefficients must be finite")

	// ErrComplexRoots is returned when the cubic does not have three real roots
	ErrComplexRoots = chk.Err("stress: cubic does not have three real roots")
)

// CUBIC_TOL is the relative tolerance used to accept round-off in the cubic solver
const CUBIC_TOL = 1e-12

// SolveCubic computes the three real roots of
//  x³ + a·x² + b·x + c = 0
// using the trigonometric method of Viète. The roots are sorted: x1 ≥ x2 ≥ x3.
// An error is returned if the cubic has complex roots beyond round-off.
func SolveCubic(a, b, c float64) (x1, x2, x3 float64, err error) {

	// check input
	for _, v := range []float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = ErrNotFinite
			return
		}
	}

	// scale of roots
	sc := math.Max(math.Abs(a), math.Max(math.Sqrt(math.Abs(b)), math.Cbrt(math.Abs(c))))
	if sc == 0 {
		return
	}

	// depressed cubic: x = y - a/3  =>  y³ + p·y + q = 0
	shift := a / 3.0
	p := b - a*shift
	q := 2.0*shift*shift*shift - shift*b + c

	// triple root
	if math.Abs(p) <= CUBIC_TOL*sc*sc {
		if math.Abs(q) > CUBIC_TOL*sc*sc*sc {
			err = ErrComplexRoots
			return
		}
		x1, x2, x3 = -shift, -shift, -shift
		return
	}
	if p > 0 {
		err = ErrComplexRoots
		return
	}

	// three real roots
	m := 2.0 * math.Sqrt(-p/3.0)
	cosφ := (3.0 * q / (2.0 * p)) * math.Sqrt(-3.0/p)
	if math.Abs(cosφ) > 1.0+1e-8 {
		err = ErrComplexRoots
		return
	}
	cosφ = math.Max(-1.0, math.Min(1.0, cosφ))
	θ := math.Acos(cosφ) / 3.0
	x1 = m*math.Cos(θ) - shift
	x2 = m*math.Cos(θ-2.0*math.Pi/3.0) - shift
	x3 = m*math.Cos(θ-4.0*math.Pi/3.0) - shift

	// sort
	if x2 > x1 {
		x1, x2 = x2, x1
	}
	if x3 > x2 {
		x2, x3 = x3, x2
	}
	if x2 > x1 {
		x1, x2 = x2, x1
	}
	return
}
