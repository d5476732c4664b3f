// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Cylinder holds a solid or hollow straight cylinder with circular cross-section
//
//          z
//          ^   ,- - -,
//          |  (   o   )  <- section
//          |  |'- - -'|
//          |  |       |  h
//          |  |       |
//          |   '- - -'
//          o-----------> x,y
//
type Cylinder struct {
	section *Circle // cross-section
	h       float64 // height
	ρ       float64 // density; zero if mass is given directly
	m       float64 // mass
}

// NewCylinder returns a new cylinder. Either density or mass must be positive;
// mass has precedence if both are given
func NewCylinder(section *Circle, height, density, mass float64) (o *Cylinder, err error) {
	o = new(Cylinder)
	err = o.set(section, height, density, mass)
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises cylinder from a list of parameters
//  ro  -- outer radius
//  ri  -- inner radius [optional]
//  h   -- height
//  rho -- density [optional if m is given]
//  m   -- mass [optional if rho is given]
func (o *Cylinder) Init(prms dbf.Params) (err error) {
	var ro, ri, h, ρ, m float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ro":
			ro = p.V
		case "ri":
			ri = p.V
		case "h":
			h = p.V
		case "rho":
			ρ = p.V
		case "m":
			m = p.V
		default:
			return chk.Err("cylinder: parameter named %q is incorrect\n", p.N)
		}
	}
	section, err := NewCircle(ro, ri)
	if err != nil {
		return
	}
	return o.set(section, h, ρ, m)
}

// GetPrms gets (an example) of parameters
func (o Cylinder) GetPrms(example bool) dbf.Params {
	if example || o.section == nil {
		return []*dbf.P{
			&dbf.P{N: "ro", V: 0.05},
			&dbf.P{N: "ri", V: 0.03},
			&dbf.P{N: "h", V: 0.2},
			&dbf.P{N: "rho", V: 7850},
		}
	}
	prms := []*dbf.P{
		&dbf.P{N: "ro", V: o.section.ro},
		&dbf.P{N: "ri", V: o.section.ri},
		&dbf.P{N: "h", V: o.h},
	}
	if o.ρ > 0 {
		return append(prms, &dbf.P{N: "rho", V: o.ρ})
	}
	return append(prms, &dbf.P{N: "m", V: o.m})
}

// set validates and sets data; o is not modified if the data is invalid
func (o *Cylinder) set(section *Circle, height, density, mass float64) error {
	if section == nil {
		return chk.Err("cylinder: cross-section must be given")
	}
	if height <= 0 {
		return chk.Err("cylinder: height must be positive. h = %g is invalid", height)
	}
	var ρ, m float64
	switch {
	case mass > 0:
		m = mass
	case density > 0:
		ρ, m = density, section.Area()*height*density
	default:
		return chk.Err("cylinder: either density or mass must be provided")
	}
	o.section, o.h, o.ρ, o.m = section, height, ρ, m
	return nil
}

// Section returns the cross-section
func (o Cylinder) Section() *Circle { return o.section }

// Height returns the height
func (o Cylinder) Height() float64 { return o.h }

// Density returns the density; zero if the mass was given instead
func (o Cylinder) Density() float64 { return o.ρ }

// Mass returns the mass
func (o Cylinder) Mass() float64 { return o.m }

// Volume returns A·h
func (o Cylinder) Volume() float64 {
	return o.section.Area() * o.h
}

// LateralSurfaceArea returns the area of the outer (and inner) lateral surfaces
func (o Cylinder) LateralSurfaceArea() float64 {
	if o.section.IsHollow() {
		return 2.0 * math.Pi * (o.section.ro + o.section.ri) * o.h
	}
	return 2.0 * math.Pi * o.section.ro * o.h
}

// EndSurfaceArea returns the area of both ends
func (o Cylinder) EndSurfaceArea() float64 {
	return 2.0 * o.section.Area()
}

// TotalSurfaceArea returns lateral plus ends areas
func (o Cylinder) TotalSurfaceArea() float64 {
	return o.LateralSurfaceArea() + o.EndSurfaceArea()
}

// MomentOfInertia returns the mass moment of inertia about the centroidal axis
// "x", "y" (transverse) or "z" (longitudinal)
func (o Cylinder) MomentOfInertia(axis string) (float64, error) {
	r2 := o.section.ro*o.section.ro + o.section.ri*o.section.ri
	switch strings.ToLower(axis) {
	case "z":
		return o.m * r2 / 2.0, nil
	case "x", "y":
		return o.m * (3.0*r2 + o.h*o.h) / 12.0, nil
	}
	return 0, chk.Err("axis must be one of \"x\", \"y\" or \"z\". %q is invalid", axis)
}

// String returns a summary of the cylinder
func (o Cylinder) String() string {
	return io.Sf("Cylinder(%v, H=%.3f m, Mass=%.3f kg)", o.section, o.h, o.m)
}
