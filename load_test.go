package main

import (
	"bytes"
	"reflect"
	"testing"
)

func TestLoadObs(t *testing.T) {
	got := LoadObs("testfiles/obs.dat")
	want := []Observation{
		{Lon: 107.60, Lat: -6.90, MMI: 6.0, Weight: 1.0},
		{Lon: 110.40, Lat: -7.80, MMI: 5.0, Weight: 1.0},
		{Lon: 112.75, Lat: -7.25, MMI: 4.0, Weight: 2.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if w := Weights(got); !reflect.DeepEqual(w, []float64{1, 1, 2}) {
		t.Errorf("got %v, wanted [1 1 2]\n", w)
	}
	if m := MMIValues(got); !reflect.DeepEqual(m, []float64{6, 5, 4}) {
		t.Errorf("got %v, wanted [6 5 4]\n", m)
	}
}

func TestLoadObsNoWeights(t *testing.T) {
	got := LoadObs("testfiles/obs_nw.dat")
	if len(got) != 2 {
		t.Fatalf("got %d observations, wanted 2\n", len(got))
	}
	if w := Weights(got); w != nil {
		t.Errorf("got %v, wanted nil weights\n", w)
	}
}

func TestLoadGmfs(t *testing.T) {
	rups, rsa := LoadGmfs("testfiles/gmfs.csv")
	wantRups := []Rupture{
		{Mag: 7.2, Lon: 108.0, Lat: -7.0, Depth: 10, Strike: 0, Dip: 35},
		{Mag: 7.4, Lon: 108.5, Lat: -7.0, Depth: 15, Strike: 45, Dip: 35},
	}
	if !reflect.DeepEqual(rups, wantRups) {
		t.Errorf("got %v, wanted %v\n", rups, wantRups)
	}
	wantRsa := [][]float64{
		{0.05, 0.02, 0.01},
		{0.08, 0.03, 0.01},
	}
	if !reflect.DeepEqual(rsa, wantRsa) {
		t.Errorf("got %v, wanted %v\n", rsa, wantRsa)
	}
}

func TestNewRuptureSet(t *testing.T) {
	rups, rsa := LoadGmfs("testfiles/gmfs.csv")
	rs := NewRuptureSet(rups, rsa)
	if len(rs.MMI) != 2 || len(rs.MMI[0]) != 3 {
		t.Fatalf("got %d x %d predictions, wanted 2 x 3\n",
			len(rs.MMI), len(rs.MMI[0]))
	}
	// stronger shaking converts to higher intensity
	if rs.MMI[0][0] <= rs.MMI[0][2] {
		t.Errorf("conversion not monotonic: %v\n", rs.MMI[0])
	}
}

func TestWriteBestFit(t *testing.T) {
	var buf bytes.Buffer
	best := Rupture{Mag: 7.4, Lon: 108.5, Lat: -7.0, Depth: 15,
		Strike: 45, Dip: 35}
	b := Bounds{
		Min: Rupture{Mag: 7.2, Lon: 108.0, Lat: -7.0, Depth: 10,
			Strike: 0, Dip: 35},
		Max: Rupture{Mag: 7.6, Lon: 109.0, Lat: -6.5, Depth: 20,
			Strike: 90, Dip: 40},
	}
	WriteBestFit(&buf, "1847", best, 0.5321, b)
	got := buf.String()
	want := `event,quantity,best_fit,min,max
1847,mag,7.4000,7.2000,7.6000
1847,longitude,108.5000,108.0000,109.0000
1847,latitude,-7.0000,-7.0000,-6.5000
1847,depth,15.0000,10.0000,20.0000
1847,strike,45.0000,0.0000,90.0000
1847,dip,35.0000,35.0000,40.0000
1847,rmse,0.5321,,
`
	if got != want {
		t.Errorf("got\n%v, wanted\n%v\n", got, want)
	}
}
