package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rupture is one candidate earthquake from the rupture table the
// analysis program writes.
type Rupture struct {
	Mag    float64
	Lon    float64
	Lat    float64
	Depth  float64
	Strike float64
	Dip    float64
}

// RuptureSet pairs candidate ruptures with their predicted MMI at the
// observation sites, one row per rupture.
type RuptureSet struct {
	Ruptures []Rupture
	MMI      [][]float64
}

// SumSquares computes the sum of squared residuals of each rupture's
// predicted MMI against the observations.
func (rs *RuptureSet) SumSquares(obs []float64) []float64 {
	ret := make([]float64, len(rs.MMI))
	for i, mmi := range rs.MMI {
		if len(mmi) != len(obs) {
			panic("dimension mismatch between predictions and observations")
		}
		var ss float64
		for j := range mmi {
			diff := mmi[j] - obs[j]
			ss += diff * diff
		}
		ret[i] = ss
	}
	return ret
}

// SumSquaresWeighted computes the weighted sum of squared residuals,
// with the weights normalised to sum to 1.
func (rs *RuptureSet) SumSquaresWeighted(obs, weights []float64) []float64 {
	if len(weights) != len(obs) {
		panic("dimension mismatch between weights and observations")
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	floats.Scale(1/floats.Sum(w), w)
	ret := make([]float64, len(rs.MMI))
	for i, mmi := range rs.MMI {
		if len(mmi) != len(obs) {
			panic("dimension mismatch between predictions and observations")
		}
		var ss float64
		for j := range mmi {
			diff := mmi[j] - obs[j]
			ss += w[j] * diff * diff
		}
		ret[i] = ss
	}
	return ret
}

// RMSE computes the root-mean-square error of each rupture against the
// observations. With weights the residuals are already normalised, so
// the square root applies directly.
func (rs *RuptureSet) RMSE(obs, weights []float64) []float64 {
	var ss []float64
	if weights != nil {
		ss = rs.SumSquaresWeighted(obs, weights)
		for i := range ss {
			ss[i] = math.Sqrt(ss[i])
		}
		return ss
	}
	ss = rs.SumSquares(obs)
	n := float64(len(obs))
	for i := range ss {
		ss[i] = math.Sqrt(ss[i] / n)
	}
	return ss
}

// BestFit returns the rupture with minimum RMSE and its value.
func (rs *RuptureSet) BestFit(rmse []float64) (Rupture, float64) {
	i := floats.MinIdx(rmse)
	return rs.Ruptures[i], rmse[i]
}

// Bounds holds the parameter ranges spanned by the fitted ruptures.
type Bounds struct {
	Min Rupture
	Max Rupture
}

// Uncertainty treats the minimum RMSE as a maximum likelihood estimate
// and keeps every rupture whose RMSE falls below the 97.5 % quantile
// of a normal centred there, returning the parameter ranges those
// ruptures span along with their indices. With six or fewer
// observations there are not enough data points to constrain the
// model, so every rupture is kept.
func (rs *RuptureSet) Uncertainty(rmse []float64, nobs int) (Bounds, []int) {
	min := floats.Min(rmse)
	cutoff := math.Inf(1)
	if nobs > 6 {
		sigma := min * min / float64(nobs-6)
		dist := distuv.Normal{Mu: min, Sigma: sigma}
		cutoff = dist.Quantile(0.975)
	}
	var indices []int
	for i, v := range rmse {
		if v < cutoff {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		// a perfect fit collapses the cutoff onto the minimum
		indices = []int{floats.MinIdx(rmse)}
	}
	b := Bounds{
		Min: rs.Ruptures[indices[0]],
		Max: rs.Ruptures[indices[0]],
	}
	for _, i := range indices[1:] {
		r := rs.Ruptures[i]
		b.Min.Mag = math.Min(b.Min.Mag, r.Mag)
		b.Max.Mag = math.Max(b.Max.Mag, r.Mag)
		b.Min.Lon = math.Min(b.Min.Lon, r.Lon)
		b.Max.Lon = math.Max(b.Max.Lon, r.Lon)
		b.Min.Lat = math.Min(b.Min.Lat, r.Lat)
		b.Max.Lat = math.Max(b.Max.Lat, r.Lat)
		b.Min.Depth = math.Min(b.Min.Depth, r.Depth)
		b.Max.Depth = math.Max(b.Max.Depth, r.Depth)
		b.Min.Strike = math.Min(b.Min.Strike, r.Strike)
		b.Max.Strike = math.Max(b.Max.Strike, r.Strike)
		b.Min.Dip = math.Min(b.Min.Dip, r.Dip)
		b.Max.Dip = math.Max(b.Max.Dip, r.Dip)
	}
	return b, indices
}
