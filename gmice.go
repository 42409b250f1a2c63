package main

import "math"

// Conversion of 1.0 s response spectral acceleration to MMI intensity,
// following the piecewise log-linear relation of Atkinson and Kaka
// (2007) for SA(1.0). Input accelerations are in g; the coefficients
// expect cm/s^2.
const (
	gToCms = 980.665

	c1     = 3.23
	c2     = 1.18
	c3     = 0.57
	c4     = 2.95
	logY1  = 1.50
	maxMMI = 8.0
	minMMI = 1.0
)

func rsa2mmi(rsa float64) float64 {
	logY := math.Log10(rsa * gToCms)
	var mmi float64
	if logY <= logY1 {
		mmi = c1 + c2*logY
	} else {
		mmi = c3 + c4*logY
	}
	if mmi > maxMMI {
		mmi = maxMMI
	}
	if mmi < minMMI {
		mmi = minMMI
	}
	return mmi
}

// Rsa2mmi converts a ground motion field of SA(1.0) values to MMI,
// capped to the range [1, 8].
func Rsa2mmi(rsa []float64) []float64 {
	ret := make([]float64, len(rsa))
	for i, v := range rsa {
		ret[i] = rsa2mmi(v)
	}
	return ret
}
