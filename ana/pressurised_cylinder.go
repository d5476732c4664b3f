// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/mimurtaza/mimech/geom"
	"github.com/mimurtaza/mimech/stress"
)

// PressCylin implements Lamé's solution to a linear elastic thick-walled
// cylinder under internal (Pi) and external (Po) pressures
//
//               , - - ,
//           , '         ' ,           σr = A - B/r²
//         ,       Po        ,         σθ = A + B/r²
//        ,      .-'''-.      ,
//       ,      / ↖ ↑ ↗ \      ,       A  = (Pi·a² - Po·b²) / (b² - a²)
//       ,     |  ← Pi → |     ,       B  = (Pi - Po)·a²·b² / (b² - a²)
//       ,      \ ↙ ↓ ↘ /      ,
//        ,      `-...-'      ,        closed ends:  σz = A
//         ,                 ,         plane strain: σz = ν·(σr + σθ)
//           ,            , '          open ends:    σz = 0
//             ' - , ,  '
//
//  Pressures are positive when compressive; stresses are positive in tension.
type PressCylin struct {

	// input
	a       float64 // inner radius
	b       float64 // outer radius
	Pi      float64 // internal pressure
	Po      float64 // external pressure
	ν       float64 // Poisson's coefficient; for plane-strain only
	closed  bool    // closed ends
	pstrain bool    // plane-strain

	// derived
	A float64 // Lamé's constant A
	B float64 // Lamé's constant B
}

// Init initialises this structure
//  a, b    -- inner and outer radii
//  pi, po  -- internal and external pressures
//  nu      -- Poisson's coefficient
//  closed  -- 1 => closed ends (axial stress due to pressure on caps)
//  pstrain -- 1 => plane strain (overrides closed)
func (o *PressCylin) Init(prms dbf.Params) (err error) {

	// default values
	o.a = 100 // [mm]
	o.b = 200 // [mm]
	o.Pi = 10 // [MPa]
	o.Po = 0  // [MPa]
	o.ν = 0.3 // [-]
	o.closed = true
	o.pstrain = false

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "pi":
			o.Pi = p.V
		case "po":
			o.Po = p.V
		case "nu", "ν":
			o.ν = p.V
		case "closed":
			o.closed = p.V > 0
		case "pstrain":
			o.pstrain = p.V > 0
		default:
			return chk.Err("press-cylin: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.derive()
}

// NewPressCylinFromSection returns a pressurised cylinder with the radii of a hollow section
func NewPressCylinFromSection(section *geom.Circle, pi, po, nu float64, closed bool) (o *PressCylin, err error) {
	if section == nil || !section.IsHollow() {
		return nil, chk.Err("press-cylin: a hollow cross-section is required")
	}
	o = &PressCylin{a: section.Rinner(), b: section.Router(), Pi: pi, Po: po, ν: nu, closed: closed}
	err = o.derive()
	if err != nil {
		return nil, err
	}
	return
}

// derive computes derived quantities
func (o *PressCylin) derive() error {
	if o.a <= 0 || o.b <= o.a {
		return chk.Err("press-cylin: radii must satisfy 0 < a < b. a=%g, b=%g are invalid", o.a, o.b)
	}
	a2, b2 := o.a*o.a, o.b*o.b
	o.A = (o.Pi*a2 - o.Po*b2) / (b2 - a2)
	o.B = (o.Pi - o.Po) * a2 * b2 / (b2 - a2)
	return nil
}

// Stress computes the stress tensor at radius r in the local (r, θ, z) frame
func (o PressCylin) Stress(r float64) (σ stress.Tensor, err error) {
	if r < o.a || r > o.b {
		return σ, chk.Err("press-cylin: radius r=%g is outside the wall [%g, %g]", r, o.a, o.b)
	}
	sr := o.A - o.B/(r*r)
	st := o.A + o.B/(r*r)
	var sz float64
	switch {
	case o.pstrain:
		sz = o.ν * (sr + st)
	case o.closed:
		sz = o.A
	}
	return stress.New(sr, st, sz, 0, 0, 0), nil
}

// VonMisesMax returns the largest von Mises stress across the wall, which
// occurs at the inner surface
func (o PressCylin) VonMisesMax() float64 {
	σ, _ := o.Stress(o.a)
	return σ.VonMises()
}

// YieldFactor returns the factor k such that k·(Pi, Po) brings the inner
// surface to first yield according to von Mises' criterion
func (o PressCylin) YieldFactor(σy float64) float64 {
	vm := o.VonMisesMax()
	if vm == 0 {
		return math.Inf(1)
	}
	return σy / vm
}

// Profile computes the radii and corresponding von Mises stresses across the wall
func (o PressCylin) Profile(nr int) (R, Svm []float64) {
	R = utl.LinSpace(o.a, o.b, nr)
	Svm = make([]float64, nr)
	for i, r := range R {
		σ, _ := o.Stress(math.Min(math.Max(r, o.a), o.b))
		Svm[i] = σ.VonMises()
	}
	return
}
