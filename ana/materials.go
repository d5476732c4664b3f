// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical stress states of simple structural members
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mimurtaza/mimech/geom"
	"github.com/mimurtaza/mimech/msolid"
)

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	Rho      float64 // density

	// auxiliary
	densToSI float64 // converts Rho to kg/m³
}

// refMaterial holds reference data in MPa and Gg/m³
type refMaterial struct {
	desc string
	E    float64 // [MPa]
	nu   float64 // [-]
	rho  float64 // [Gg/m³]
}

// refMaterials holds the database of reference materials
var refMaterials = map[string]refMaterial{
	"steel":            {"Steel: structural A36", 200000.0, 0.32, 7.85e-3},
	"aluminum":         {"Aluminum: 2014-T6", 73100.0, 0.35, 2.79e-3},
	"concrete-low":     {"Concrete: low strength", 22100.0, 0.15, 2.38e-3},
	"concrete-high":    {"Concrete: high strength", 30000.0, 0.15, 2.38e-3},
	"soft-soil":        {"Soil: soft", 10.0, 0.30, 1.80e-3},
	"wood-douglas-fir": {"Wood: Douglas-fir", 13100.0, 0.29, 4.70e-4},
}

// unitSystem holds conversion factors from MPa and Gg/m³
type unitSystem struct {
	dens     string  // unit of density
	pres     float64 // MPa => unit of pressure
	densUnit float64 // Gg/m³ => unit of density
	densSI   float64 // unit of density => kg/m³
}

// unitSystems maps units of pressure to consistent units of density
//  "kPa" => E:[kPa], rho:[Mg/m³]
//  "MPa" => E:[MPa], rho:[Gg/m³]
//  "GPa" => E:[GPa], rho:[Tg/m³]
var unitSystems = map[string]unitSystem{
	"kPa": {"Mg/m³", 1e3, 1e3, 1e3},
	"MPa": {"Gg/m³", 1, 1, 1e6},
	"GPa": {"Tg/m³", 1e-3, 1e-3, 1e9},
}

// Init initialises material parameters with data of the reference material typ
// expressed in the unit system of unitPres ("kPa", "MPa" or "GPa").
// o is not modified if an error occurs
func (o *Material) Init(typ, unitPres string) (err error) {
	ref, ok := refMaterials[typ]
	if !ok {
		return chk.Err("material type %q is unavailable", typ)
	}
	units, ok := unitSystems[unitPres]
	if !ok {
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}
	*o = Material{
		Type:     typ,
		UnitPres: unitPres,
		UnitDens: units.dens,
		Desc:     ref.desc,
		E:        ref.E * units.pres,
		Nu:       ref.nu,
		G:        ref.E * units.pres / (2.0 * (1.0 + ref.nu)),
		Rho:      ref.rho * units.densUnit,
		densToSI: units.densSI,
	}
	return
}

// DensitySI returns the density in kg/m³
func (o Material) DensitySI() float64 {
	return o.Rho * o.densToSI
}

// Cylinder returns a cylinder of this material. Lengths must be in metres
func (o Material) Cylinder(section *geom.Circle, height float64) (*geom.Cylinder, error) {
	return geom.NewCylinder(section, height, o.DensitySI(), 0)
}

// Elastic returns the linear elastic model of this material
func (o Material) Elastic() (mdl *msolid.LinElast, err error) {
	mdl = new(msolid.LinElast)
	err = mdl.Set(o.E, o.Nu)
	if err != nil {
		return nil, err
	}
	return
}

// String returns a summary of the material
func (o Material) String() string {
	return io.Sf("%s: E=%g %s, G=%g %s, ν=%g, ρ=%g %s", o.Desc, o.E, o.UnitPres, o.G, o.UnitPres, o.Nu, o.Rho, o.UnitDens)
}
