// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/mimurtaza/mimech/geom"
	"github.com/mimurtaza/mimech/stress"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_materials01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("materials01. reference materials parameters")

	var mat Material
	err := mat.Init("steel", "MPa")
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mat)
	chk.Float64(tst, "E", 1e-17, mat.E, 200000)
	chk.Float64(tst, "G", 1e-10, mat.G, 200000/2.64)
	chk.Float64(tst, "ρ", 1e-17, mat.Rho, 7.85e-3)
	chk.Float64(tst, "ρ [kg/m³]", 1e-9, mat.DensitySI(), 7850)
	chk.String(tst, mat.UnitDens, "Gg/m³")

	err = mat.Init("steel", "kPa")
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E [kPa]", 1e-7, mat.E, 2e8)
	chk.Float64(tst, "ρ [Mg/m³]", 1e-14, mat.Rho, 7.85)
	chk.Float64(tst, "ρ [kg/m³]", 1e-9, mat.DensitySI(), 7850)

	err = mat.Init("aluminum", "GPa")
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E [GPa]", 1e-12, mat.E, 73.1)
	chk.Float64(tst, "ρ [kg/m³]", 1e-9, mat.DensitySI(), 2790)

	if err = mat.Init("unobtainium", "MPa"); err == nil {
		tst.Errorf("Init should have failed with unknown material\n")
	}
	if err = mat.Init("steel", "psi"); err == nil {
		tst.Errorf("Init should have failed with unknown unit\n")
	}

	// failed Init keeps previous data
	chk.String(tst, mat.Type, "aluminum")
	chk.String(tst, mat.UnitPres, "GPa")
	chk.Float64(tst, "E [GPa] after failure", 1e-12, mat.E, 73.1)
	chk.Float64(tst, "ν after failure", 1e-17, mat.Nu, 0.35)

	// steel cylinder
	mat.Init("steel", "MPa")
	section, _ := geom.NewSolidCircle(0.05)
	cyl, err := mat.Cylinder(section, 0.2)
	if err != nil {
		tst.Errorf("Cylinder failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", cyl)
	chk.Float64(tst, "m", 1e-9, cyl.Mass(), math.Pi*0.0025*0.2*7850)

	// elastic model: 0.1% of axial strain in steel
	mdl, err := mat.Elastic()
	if err != nil {
		tst.Errorf("Elastic failed: %v\n", err)
		return
	}
	σ, err := mdl.Stress([]float64{1e-3, -0.32e-3, -0.32e-3, 0, 0, 0})
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	chk.Array(tst, "σ", 1e-9, σ.Components(), []float64{200, 0, 0, 0, 0, 0})
}

func Test_presscylin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("presscylin01. Lamé's thick-walled cylinder")

	var sol PressCylin
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "a", V: 1},
		&dbf.P{N: "b", V: 2},
		&dbf.P{N: "pi", V: 10},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// boundary conditions
	σa, err := sol.Stress(1)
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	io.Pforan("σ(a) = %v\n", σa)
	chk.Array(tst, "σ(a)", 1e-14, σa.Components(), []float64{-10, 50.0 / 3.0, 10.0 / 3.0, 0, 0, 0})
	σb, _ := sol.Stress(2)
	chk.Float64(tst, "σr(b)", 1e-14, σb.Sx(), 0)

	// von Mises for closed ends: √3·B/r²
	for _, r := range []float64{1, 1.25, 1.5, 2} {
		σ, _ := sol.Stress(r)
		chk.Float64(tst, io.Sf("σvm(%g)", r), 1e-13, σ.VonMises(), math.Sqrt(3)*sol.B/(r*r))
	}
	chk.Float64(tst, "σvm max", 1e-13, sol.VonMisesMax(), math.Sqrt(3)*40.0/3.0)
	chk.Float64(tst, "yield factor", 1e-13, sol.YieldFactor(240), 240/(math.Sqrt(3)*40.0/3.0))

	// equilibrium: dσr/dr + (σr - σθ)/r = 0
	sr := func(r float64, args ...interface{}) (res float64) {
		σ, _ := sol.Stress(r)
		return σ.Sx()
	}
	for _, r := range []float64{1.2, 1.5, 1.8} {
		dsr, _ := num.DerivCentral(sr, r, 1e-3)
		σ, _ := sol.Stress(r)
		chk.AnaNum(tst, "dσr/dr", 1e-8, -(σ.Sx()-σ.Sy())/r, dsr, chk.Verbose)
	}

	// profile
	R, Svm := sol.Profile(11)
	if len(R) != 11 || len(Svm) != 11 {
		tst.Errorf("profile has wrong size\n")
		return
	}
	chk.Float64(tst, "Svm[0]", 1e-13, Svm[0], sol.VonMisesMax())
	chk.Float64(tst, "Svm[10]", 1e-13, Svm[10], math.Sqrt(3)*sol.B/4)
	for i := 1; i < 11; i++ {
		if Svm[i] > Svm[i-1] {
			tst.Errorf("von Mises stress must decrease across the wall\n")
			return
		}
	}

	// errors
	if _, err = sol.Stress(0.5); err == nil {
		tst.Errorf("Stress should have failed outside the wall\n")
	}
	if err = sol.Init([]*dbf.P{&dbf.P{N: "c", V: 1}}); err == nil {
		tst.Errorf("Init should have failed with wrong parameter name\n")
	}
	if err = sol.Init([]*dbf.P{&dbf.P{N: "a", V: 2}, &dbf.P{N: "b", V: 1}}); err == nil {
		tst.Errorf("Init should have failed with a > b\n")
	}
}

func Test_presscylin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("presscylin02. plane strain, open ends and sections")

	var sol PressCylin
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "a", V: 100},
		&dbf.P{N: "b", V: 200},
		&dbf.P{N: "pi", V: 30},
		&dbf.P{N: "po", V: 10},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "pstrain", V: 1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	for _, r := range []float64{100, 150, 200} {
		σ, _ := sol.Stress(r)
		chk.Float64(tst, "σz", 1e-13, σ.Sz(), 2*0.25*sol.A)
	}
	σa, _ := sol.Stress(100)
	σb, _ := sol.Stress(200)
	chk.Float64(tst, "σr(a)", 1e-13, σa.Sx(), -30)
	chk.Float64(tst, "σr(b)", 1e-13, σb.Sx(), -10)

	// open ends
	err = sol.Init([]*dbf.P{&dbf.P{N: "closed", V: 0}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	σa, _ = sol.Stress(sol.a)
	chk.Float64(tst, "σz", 1e-17, σa.Sz(), 0)

	// from cross-section
	hollow, _ := geom.NewCircle(0.05, 0.03)
	cyl, err := NewPressCylinFromSection(hollow, 10, 0, 0.3, true)
	if err != nil {
		tst.Errorf("NewPressCylinFromSection failed: %v\n", err)
		return
	}
	σ, _ := cyl.Stress(0.03)
	chk.Float64(tst, "σr(a)", 1e-13, σ.Sx(), -10)
	chk.Float64(tst, "σz", 1e-13, σ.Sz(), 10*0.0009/0.0016)

	// force over the wall equals pressure on cap
	chk.Float64(tst, "Fz", 1e-15, σ.Sz()*hollow.Area(), 10*math.Pi*0.0009)

	solid, _ := geom.NewSolidCircle(0.05)
	if _, err = NewPressCylinFromSection(solid, 10, 0, 0.3, true); err == nil {
		tst.Errorf("NewPressCylinFromSection should have failed with solid section\n")
	}
}

func Test_selfweight01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("selfweight01. column under gravity")

	section, _ := geom.NewSolidCircle(1.0 / math.Sqrt(math.Pi))
	column, err := geom.NewCylinder(section, 3, 2, 0)
	if err != nil {
		tst.Errorf("NewCylinder failed: %v\n", err)
		return
	}

	var sol SelfWeight
	err = sol.Init(column, 10, true, 0.25)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	σ, err := sol.Stress(0)
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", σ)
	chk.Float64(tst, "σz @ z=0", 1e-13, σ.Sz(), -60.0)
	chk.Float64(tst, "σh @ z=0", 1e-13, σ.Sx(), -20.0)
	chk.Float64(tst, "σh @ z=0", 1e-13, σ.Sy(), -20.0)

	σ, _ = sol.Stress(1.5)
	chk.Float64(tst, "σz @ z=1.5", 1e-13, σ.Sz(), -30.0)
	σ, _ = sol.Stress(3)
	chk.Array(tst, "σ @ z=3", 1e-13, σ.Components(), []float64{0, 0, 0, 0, 0, 0})

	// unconfined: weight over area
	err = sol.Init(column, 10, false, 0)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	σ = sol.BaseStress()
	chk.Float64(tst, "σz = -m·g/A", 1e-12, σ.Sz(), -column.Mass()*10/section.Area())
	chk.Float64(tst, "σvm", 1e-12, σ.VonMises(), 60)

	// errors
	if _, err = sol.Stress(-1); err == nil {
		tst.Errorf("Stress should have failed below the base\n")
	}
	if err = sol.Init(nil, 10, false, 0); err == nil {
		tst.Errorf("Init should have failed with nil column\n")
	}
	if err = sol.Init(column, 10, true, 0.5); err == nil {
		tst.Errorf("Init should have failed with ν = 0.5\n")
	}
}

func Test_fluids01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluids01. pressure along fluid column")

	var water Water
	water.Init()
	io.Pforan("\n>>> water <<<\n")
	io.Pforan("reference temperature: Θ = %23g           [K]\n", water.Θ)
	io.Pforan("bulk modulus @ Θ:      K = %23g           [kPa]\n", water.K)
	io.Pforan("intrinsic density @ Θ: ρ = %23g (0.997)   [Mg/m³]\n", water.Rho)
	io.Pforan("compressibility @ Θ:   C = %23g (4.53e-7) [Mg/(m³・kPa)]\n", water.C)

	// incompressible
	var col FluidColumn
	err := col.Init(1, 0, 0, 10, 10)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	p, R := col.Calc(0)
	chk.Float64(tst, "p(0)", 1e-17, p, 100)
	chk.Float64(tst, "R(0)", 1e-17, R, 1)

	// compressible: dp/dz = -R·g
	err = col.Init(1, 0, 1e-2, 10, 10)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	fp := func(z float64, args ...interface{}) (res float64) {
		res, _ = col.Calc(z)
		return
	}
	for _, z := range []float64{1, 5, 9} {
		dpdz, _ := num.DerivCentral(fp, z, 1e-3)
		_, R = col.Calc(z)
		chk.AnaNum(tst, "dp/dz", 1e-7, -R*10, dpdz, chk.Verbose)
	}
	p, _ = col.Calc(10)
	chk.Float64(tst, "p(H)", 1e-17, p, 0)

	// numerical integration
	for _, z := range []float64{0, 2.5, 7, 10} {
		p, R = col.Calc(z)
		pn, Rn := col.CalcNum(z)
		chk.AnaNum(tst, io.Sf("p(%g)", z), 1e-6, p, pn, chk.Verbose)
		chk.AnaNum(tst, io.Sf("R(%g)", z), 1e-8, R, Rn, chk.Verbose)
	}

	// stress in water
	err = col.InitWater(10, 10)
	if err != nil {
		tst.Errorf("InitWater failed: %v\n", err)
		return
	}
	σ, err := col.Stress(0)
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", σ)
	chk.Float64(tst, "σ = -ρ·g·h", 1e-2, σ.Sx(), -water.Rho*10*10)
	chk.Float64(tst, "σvm", 1e-17, σ.VonMises(), 0)
	if _, err = col.Stress(11); err == nil {
		tst.Errorf("Stress should have failed above free surface\n")
	}
	if err = col.Init(0, 0, 0, 10, 10); err == nil {
		tst.Errorf("Init should have failed with zero density\n")
	}
}

func Test_polar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar01. rotation to cylindrical frame")

	σ := stress.New(10, -20, 5, 7, 3, -4)

	// along x: no rotation
	p := ToPolar(2, 0, σ)
	chk.Array(tst, "β=0", 1e-15, p.Components(), σ.Components())

	// along y: r → y, θ → -x
	p = ToPolar(0, 3, σ)
	chk.Array(tst, "β=90°", 1e-14, p.Components(), []float64{-20, 10, 5, -7, 4, 3})

	// invariants are preserved
	I1, I2, I3 := σ.Invariants()
	for _, β := range []float64{0.1, 0.7, 2.0, -1.3, 3.0} {
		p = ToPolar(math.Cos(β), math.Sin(β), σ)
		J1, J2, J3 := p.Invariants()
		chk.Float64(tst, "I1", 1e-13, J1, I1)
		chk.Float64(tst, "I2", 1e-12, J2, I2)
		chk.Float64(tst, "I3", 1e-10, J3, I3)
		chk.Float64(tst, "σvm", 1e-13, p.VonMises(), σ.VonMises())
	}
}

func Test_pipe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pipe01. submerged steel pipe")

	// water pressure at 50 m depth [kPa]
	var sea FluidColumn
	err := sea.InitWater(9.81, 0)
	if err != nil {
		tst.Errorf("InitWater failed: %v\n", err)
		return
	}
	po, _ := sea.Calc(-50)
	io.Pforan("po = %v kPa\n", po)

	// pipe with internal pressure of 2 MPa
	section, _ := geom.NewCircle(0.05, 0.04)
	empty, err := NewPressCylinFromSection(section, 0, po, 0.3, true)
	if err != nil {
		tst.Errorf("NewPressCylinFromSection failed: %v\n", err)
		return
	}
	full, err := NewPressCylinFromSection(section, 2000, po, 0.3, true)
	if err != nil {
		tst.Errorf("NewPressCylinFromSection failed: %v\n", err)
		return
	}
	σe, _ := empty.Stress(0.04)
	σf, _ := full.Stress(0.04)
	io.Pforan("σ(empty) = %v\nσ(full)  = %v\n", σe, σf)

	// the range of stresses in a fill/empty cycle equals the stress due to
	// the internal pressure alone
	alone, _ := NewPressCylinFromSection(section, 2000, 0, 0.3, true)
	σp, _ := alone.Stress(0.04)
	chk.Float64(tst, "range", 1e-9, σf.Range(σe), σp.VonMises())
	chk.Array(tst, "superposition", 1e-9, σf.Sub(σe).Components(), σp.Components())

	// principal stresses of the full pipe
	s1, s2, s3, err := σf.PrincipalValues()
	if err != nil {
		tst.Errorf("PrincipalValues failed: %v\n", err)
		return
	}
	chk.Array(tst, "σ1,σ2,σ3", 1e-8, []float64{s1, s2, s3}, []float64{σf.Sy(), σf.Sz(), σf.Sx()})
}

func Test_shaft01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shaft01. combined axial force, bending and torsion")

	sec, err := geom.NewSolidCircle(0.05)
	if err != nil {
		tst.Errorf("NewSolidCircle failed: %v\n", err)
		return
	}
	A, I, J := sec.Area(), sec.SecondMoment(), sec.PolarMoment()
	r := sec.Router()

	// pure torsion: τmax = T・r/J
	sh, err := NewShaft(sec, 0, 0, 2000)
	if err != nil {
		tst.Errorf("NewShaft failed: %v\n", err)
		return
	}
	τ := 2000 * r / J
	σ, err := sh.Stress(r, 0)
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	io.Pforan("σ(r,0) = %v\n", σ)
	chk.Array(tst, "σ(r,0)", 1e-6, σ.Components(), []float64{0, 0, 0, 0, 0, τ})
	σ, _ = sh.Stress(0, r)
	chk.Array(tst, "σ(0,r)", 1e-6, σ.Components(), []float64{0, 0, 0, -τ, 0, 0})
	tr, err := σ.Tresca()
	if err != nil {
		tst.Errorf("Tresca failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tresca", 1e-6, tr, τ)
	chk.Float64(tst, "σvm", 1e-6, σ.VonMises(), math.Sqrt(3)*τ)
	σ, _ = sh.Stress(0, 0)
	chk.Array(tst, "σ(0,0)", 1e-17, σ.Components(), []float64{0, 0, 0, 0, 0, 0})

	// axial force and bending
	sh, _ = NewShaft(sec, 5000, 300, 0)
	σ = sh.Critical()
	chk.Float64(tst, "σx(critical)", 1e-6, σ.Sx(), 5000/A+300*r/I)
	σ, _ = sh.Stress(r, 0)
	chk.Float64(tst, "σx(r,0)", 1e-6, σ.Sx(), 5000/A-300*r/I)

	// errors
	if _, err = sh.Stress(2*r, 0); err == nil {
		tst.Errorf("Stress should have failed outside the section\n")
	}
	if _, err = NewShaft(nil, 1, 1, 1); err == nil {
		tst.Errorf("NewShaft should have failed without section\n")
	}
}
