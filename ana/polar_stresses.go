// Copyright 2026 The Mimech Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/mimurtaza/mimech/stress"
)

// PolarStresses computes stress components w.r.t polar system from given
// Cartesian components
func PolarStresses(x, y, sx, sy, sxy float64) (r, sr, st, srt float64) {
	r = math.Sqrt(x*x + y*y)
	β := math.Atan2(y, x)
	si, co := math.Sin(β), math.Cos(β)
	ss, cc, cs := si*si, co*co, co*si
	sr = cc*sx + ss*sy + 2.0*cs*sxy
	st = ss*sx + cc*sy - 2.0*cs*sxy
	srt = -cs*sx + cs*sy + (cc-ss)*sxy
	return
}

// ToPolar rotates σ about z to the cylindrical frame (r, θ, z) at point (x, y).
// The result holds σr, σθ, σz, σrθ, σθz, σrz in the places of σx, σy, σz, σxy, σyz, σxz
func ToPolar(x, y float64, σ stress.Tensor) stress.Tensor {
	_, sr, st, srt := PolarStresses(x, y, σ.Sx(), σ.Sy(), σ.Sxy())
	β := math.Atan2(y, x)
	si, co := math.Sin(β), math.Cos(β)
	srz := co*σ.Sxz() + si*σ.Syz()
	stz := -si*σ.Sxz() + co*σ.Syz()
	return stress.New(sr, st, σ.Sz(), srt, stz, srz)
}
