// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import "github.com/cpmech/gosl/io"

// String returns the six independent components with two decimal digits
//  Stress(σx,σy,σz,σxy,σyz,σxz)
func (o Tensor) String() string {
	c := o.Components()
	return io.Sf("Stress(%.2f,%.2f,%.2f,%.2f,%.2f,%.2f)", c[0], c[1], c[2], c[3], c[4], c[5])
}

// Verbose returns a multi-line rendering of the full matrix
func (o Tensor) Verbose() (l string) {
	l = "\nStress Tensor: \n"
	for i := 0; i < 3; i++ {
		l += "["
		for j := 0; j < 3; j++ {
			l += io.Sf(" %12.6g", o.s[i][j])
		}
		l += " ]\n"
	}
	return
}
