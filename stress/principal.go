// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"
	"math"
)

// PrincipalValues computes the principal stresses σ1 ≥ σ2 ≥ σ3; i.e. the roots of
//  λ³ - I1·λ² + I2·λ - I3 = 0
// The roots are computed as λ = σm + y where y are the roots of the deviatoric cubic
//  y³ - J2·y - J3 = 0    with    s = σ - σm·I,   J2 = ½ s:s,   J3 = det(s)
// Thus, the accuracy of the result is governed by the deviator and not by the mean stress
func (o Tensor) PrincipalValues() (s1, s2, s3 float64, err error) {
	for _, v := range o.Components() {
		if !finite(v) {
			err = fmt.Errorf("principal stresses of %v: %w", o, ErrNotFinite)
			return
		}
	}
	m := o.Mean()
	y1, y2, y3 := o.Deviator().deviatoricRoots()
	s1, s2, s3 = m+y1, m+y2, m+y3
	if !finite(s1) || !finite(s2) || !finite(s3) {
		err = fmt.Errorf("principal stresses of %v: %w", o, ErrNotFinite)
	}
	return
}

// Principal returns the principal stress state: a tensor with σ1, σ2, σ3 on
// the diagonal (in descending order) and zero shear
func (o Tensor) Principal() (Tensor, error) {
	s1, s2, s3, err := o.PrincipalValues()
	if err != nil {
		return Tensor{}, err
	}
	return New(s1, s2, s3, 0, 0, 0), nil
}

// Tresca returns the maximum shear stress (σ1 - σ3)/2
func (o Tensor) Tresca() (float64, error) {
	s1, _, s3, err := o.PrincipalValues()
	if err != nil {
		return 0, err
	}
	return (s1 - s3) / 2.0, nil
}

// deviatoricRoots returns the eigenvalues y1 ≥ y2 ≥ y3 of the deviatoric tensor o.
//
//  Viète's formula gives y = r・cos(θ - 2kπ/3) with
//
//       r = 2・√(J2/3)      cos(3θ) = (3√3/2)・J3 / J2^(3/2)
//
//  Near repeated roots cos(3θ) ≈ ±1 and θ loses half of the significant digits.
//  The root far from the other two is still accurate, so the (nearly) repeated
//  pair is recomputed from the 2×2 eigenproblem on the plane normal to the
//  eigenvector of the isolated root.
func (o Tensor) deviatoricRoots() (y1, y2, y3 float64) {

	// normalise to avoid overflow/underflow in J2^(3/2) and det(s)
	sc := 0.0
	for _, v := range o.Components() {
		sc = math.Max(sc, math.Abs(v))
	}
	if sc == 0 {
		return
	}
	t := o.Scale(1.0 / sc)

	// invariants of deviator
	c := t.Components()
	J2 := (c[0]*c[0]+c[1]*c[1]+c[2]*c[2])/2.0 + c[3]*c[3] + c[4]*c[4] + c[5]*c[5]
	_, _, J3 := t.Invariants()
	if J2 == 0 {
		return
	}

	// Viète
	cos3θ := 1.5 * math.Sqrt(3.0) * J3 / (J2 * math.Sqrt(J2))
	if math.IsNaN(cos3θ) {
		cos3θ = 0
	}
	cos3θ = math.Max(-1.0, math.Min(1.0, cos3θ))
	r := 2.0 * math.Sqrt(J2/3.0)
	θ := math.Acos(cos3θ) / 3.0
	y1 = r * math.Cos(θ)
	y2 = r * math.Cos(θ-2.0*math.Pi/3.0)
	y3 = r * math.Cos(θ+2.0*math.Pi/3.0)

	// recompute the pair that may be (nearly) repeated
	if cos3θ >= 0 {
		if a, b, ok := t.complementPair(y1); ok {
			y2, y3 = a, b
		}
	} else {
		if a, b, ok := t.complementPair(y3); ok {
			y1, y2 = a, b
		}
	}

	// sort
	if y2 > y1 {
		y1, y2 = y2, y1
	}
	if y3 > y2 {
		y2, y3 = y3, y2
	}
	if y2 > y1 {
		y1, y2 = y2, y1
	}
	return y1 * sc, y2 * sc, y3 * sc
}

// complementPair computes the two eigenvalues (a ≥ b) of o other than λ.
// ok is false if the eigenvector of λ cannot be determined; e.g. λ is repeated
func (o Tensor) complementPair(λ float64) (a, b float64, ok bool) {

	// eigenvector v of λ: largest cross product between two rows of σ - λ・I
	m := o.s
	for i := 0; i < 3; i++ {
		m[i][i] -= λ
	}
	var v [3]float64
	vv := 0.0
	for _, p := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		x := cross(m[p[0]], m[p[1]])
		if n := dot(x, x); n > vv {
			v, vv = x, n
		}
	}
	if vv == 0 || !finite(vv) {
		return
	}
	l := math.Sqrt(vv)
	for i := 0; i < 3; i++ {
		v[i] /= l
	}

	// orthonormal basis {u, w} of the plane normal to v
	var u [3]float64
	if math.Abs(v[0]) > math.Abs(v[1]) {
		l = math.Hypot(v[0], v[2])
		u = [3]float64{-v[2] / l, 0, v[0] / l}
	} else {
		l = math.Hypot(v[1], v[2])
		u = [3]float64{0, v[2] / l, -v[1] / l}
	}
	w := cross(v, u)

	// 2×2 eigenproblem
	su, sw := o.apply(u), o.apply(w)
	p, q, r := dot(u, su), dot(w, sw), dot(u, sw)
	h := math.Hypot((p-q)/2.0, r)
	return (p+q)/2.0 + h, (p+q)/2.0 - h, true
}

// apply returns σ・x
func (o Tensor) apply(x [3]float64) (y [3]float64) {
	for i := 0; i < 3; i++ {
		y[i] = o.s[i][0]*x[0] + o.s[i][1]*x[1] + o.s[i][2]*x[2]
	}
	return
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
