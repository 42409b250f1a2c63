package main

import (
	"math"
	"path"
	"strconv"
)

const EPS = 1e-14

// toFloat converts a list of strings to a float64 using
// strconv.ParseFloat
func toFloat(strs []string) []float64 {
	ret := make([]float64, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			panic(err)
		}
	}
	return ret
}

func Equal(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

// TrimExt removes the final extension from filename.
func TrimExt(filename string) string {
	return filename[:len(filename)-len(path.Ext(filename))]
}
