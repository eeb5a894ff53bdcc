package mobj

import "github.com/udisondev/retrogo/internal/fixed"

// floatBobDiffs is one period of the power-up bob, as per-tic z deltas.
var floatBobDiffs = [64]fixed.Fixed{
	25695, 25695, 25447, 24955, 24222, 23256, 22066, 20663,
	19062, 17277, 15325, 13226, 10999, 8667, 6251, 3775,
	1262, -1262, -3775, -6251, -8667, -10999, -13226, -15325,
	-17277, -19062, -20663, -22066, -23256, -24222, -24955, -25447,
	-25695, -25695, -25447, -24955, -24222, -23256, -22066, -20663,
	-19062, -17277, -15325, -13226, -11000, -8667, -6251, -3775,
	-1262, 1262, 3775, 6251, 8667, 10999, 13226, 15325,
	17277, 19062, 20663, 22066, 23256, 24222, 24955, 25447,
}

// liquidBobDiffs is the gentler bob of things standing in liquid.
var liquidBobDiffs [64]fixed.Fixed

func init() {
	for i, d := range floatBobDiffs {
		liquidBobDiffs[i] = d / 4
	}
}
