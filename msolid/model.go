// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements linear elastic models mapping strains to stress tensors
//
//  Strains are given as tensor components (not engineering shear strains):
//   ε = [εx, εy, εz, εxy, εyz, εxz]
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mimurtaza/mimech/stress"
)

// Model defines the interface for elastic solid models
type Model interface {
	Init(prms dbf.Params) error                // initialises model
	GetPrms(example bool) dbf.Params           // gets (an example) of parameters
	Stress(ε []float64) (stress.Tensor, error) // computes stress for given strains
	Strain(σ stress.Tensor) ([]float64, error) // computes strains for given stress
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}

// checkStrains checks the length of strain vectors
func checkStrains(ε []float64) error {
	if len(ε) != 6 {
		return chk.Err("six strain components are required. %d given", len(ε))
	}
	return nil
}
