// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// samples returns a set of tensors covering tension, compression, shear and
// repeated principal values
func samples() (res []Tensor) {
	vals := []float64{-80, 0, 35, 120}
	for _, sx := range vals {
		for _, sy := range vals {
			for _, sz := range vals {
				for _, sxy := range vals {
					for _, syz := range vals {
						for _, sxz := range vals {
							res = append(res, New(sx, sy, sz, sxy, syz, sxz))
						}
					}
				}
			}
		}
	}
	return
}

// charpoly evaluates λ³ - I1·λ² + I2·λ - I3
func charpoly(λ, I1, I2, I3 float64) float64 {
	return ((λ-I1)*λ+I2)*λ - I3
}
