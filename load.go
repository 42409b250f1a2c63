package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Observation is one historical intensity observation: a site and the
// MMI assigned to it, with an optional fitting weight.
type Observation struct {
	Lon    float64
	Lat    float64
	MMI    float64
	Weight float64
}

// LoadObs reads intensity observations from filename. Each line holds
// "lon lat mmi" with an optional fourth weight column; # starts a
// comment.
func LoadObs(filename string) (ret []Observation) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		panic(err)
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") ||
			strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			log.Fatalf("malformed observation line %q", line)
		}
		vals := toFloat(fields)
		obs := Observation{
			Lon: vals[0],
			Lat: vals[1],
			MMI: vals[2],
		}
		if len(vals) > 3 {
			obs.Weight = vals[3]
		}
		ret = append(ret, obs)
	}
	return
}

// MMIValues extracts the observed intensities.
func MMIValues(obs []Observation) (ret []float64) {
	for _, o := range obs {
		ret = append(ret, o.MMI)
	}
	return
}

// Weights extracts the fitting weights, or nil when no observation
// carries one.
func Weights(obs []Observation) (ret []float64) {
	var any bool
	for _, o := range obs {
		if o.Weight != 0 {
			any = true
		}
	}
	if !any {
		return nil
	}
	for _, o := range obs {
		ret = append(ret, o.Weight)
	}
	return
}

// LoadGmfs reads the rupture table the analysis program writes: one
// line per candidate rupture with six comma-separated source
// parameters (mag, lon, lat, depth, strike, dip) followed by the
// predicted SA(1.0) at each observation site.
func LoadGmfs(filename string) (rups []Rupture, rsa [][]float64) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		panic(err)
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 7 {
			log.Fatalf("rupture line %q has no ground motion values", line)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		vals := toFloat(fields)
		rups = append(rups, Rupture{
			Mag:    vals[0],
			Lon:    vals[1],
			Lat:    vals[2],
			Depth:  vals[3],
			Strike: vals[4],
			Dip:    vals[5],
		})
		rsa = append(rsa, vals[6:])
	}
	return
}

// NewRuptureSet converts the per-rupture ground motion fields to MMI
// and pairs them with their ruptures.
func NewRuptureSet(rups []Rupture, rsa [][]float64) *RuptureSet {
	rs := &RuptureSet{Ruptures: rups}
	for _, row := range rsa {
		rs.MMI = append(rs.MMI, Rsa2mmi(row))
	}
	return rs
}

// WriteBestFit writes the best-fit summary for event as CSV: one row
// per source parameter with its best value and fitted range, then the
// minimum RMSE.
func WriteBestFit(w io.Writer, event string, best Rupture, rmse float64,
	b Bounds) {
	fmt.Fprintf(w, "event,quantity,best_fit,min,max\n")
	rows := []struct {
		name           string
		best, min, max float64
	}{
		{"mag", best.Mag, b.Min.Mag, b.Max.Mag},
		{"longitude", best.Lon, b.Min.Lon, b.Max.Lon},
		{"latitude", best.Lat, b.Min.Lat, b.Max.Lat},
		{"depth", best.Depth, b.Min.Depth, b.Max.Depth},
		{"strike", best.Strike, b.Min.Strike, b.Max.Strike},
		{"dip", best.Dip, b.Min.Dip, b.Max.Dip},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s,%s,%.4f,%.4f,%.4f\n",
			event, r.name, r.best, r.min, r.max)
	}
	fmt.Fprintf(w, "%s,rmse,%.4f,,\n", event, rmse)
}
