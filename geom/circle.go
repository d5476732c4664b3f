// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements cross-sections and solids used to feed stress calculations
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Circle holds a solid or hollow circular cross-section
//
//          y
//          ^
//       , -|- ,            A  = π (Ro² - Ri²)
//     ,  , | ,  ,          I  = π/4 (Ro⁴ - Ri⁴)   about x or y
//    ,  (  o--)-,-> x      J  = π/2 (Ro⁴ - Ri⁴)   polar
//     ,  ' - '  ,
//       ' - - '            Ri = 0 => solid
//
type Circle struct {
	ro float64 // outer radius
	ri float64 // inner radius
}

// NewCircle returns a new circular section. ri = 0 gives a solid section
func NewCircle(ro, ri float64) (o *Circle, err error) {
	if ro <= 0 {
		return nil, chk.Err("outer radius must be positive. ro = %g is invalid", ro)
	}
	if ri < 0 {
		return nil, chk.Err("inner radius cannot be negative. ri = %g is invalid", ri)
	}
	if ri >= ro {
		return nil, chk.Err("inner radius must be smaller than outer radius. ri = %g ≥ ro = %g", ri, ro)
	}
	return &Circle{ro, ri}, nil
}

// NewSolidCircle returns a new solid circular section
func NewSolidCircle(r float64) (*Circle, error) {
	return NewCircle(r, 0)
}

// Router returns the outer radius
func (o Circle) Router() float64 { return o.ro }

// Rinner returns the inner radius
func (o Circle) Rinner() float64 { return o.ri }

// Area returns the cross-sectional area
func (o Circle) Area() float64 {
	return math.Pi * (o.ro*o.ro - o.ri*o.ri)
}

// SecondMoment returns the second moment of area about the x or y axis
func (o Circle) SecondMoment() float64 {
	return math.Pi * (math.Pow(o.ro, 4) - math.Pow(o.ri, 4)) / 4.0
}

// PolarMoment returns the polar moment of area about the centre
func (o Circle) PolarMoment() float64 {
	return math.Pi * (math.Pow(o.ro, 4) - math.Pow(o.ri, 4)) / 2.0
}

// IsHollow tells whether the section has a hole
func (o Circle) IsHollow() bool {
	return o.ri > 0
}

// String returns a summary of the section
func (o Circle) String() string {
	kind := "Solid"
	if o.IsHollow() {
		kind = "Hollow"
	}
	return io.Sf("%s Circle(R_outer=%.3f, R_inner=%.3f)", kind, o.ro, o.ri)
}
