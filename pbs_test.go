package main

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWritePBS(t *testing.T) {
	conf, err := LoadConfig("testfiles/test.in")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	run, err := conf.ActiveRun("")
	if err != nil {
		t.Fatalf("ActiveRun: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePBS(&buf, NewPBS(conf, run)); err != nil {
		t.Fatalf("WritePBS: %v", err)
	}
	got := buf.String()
	want := `#!/bin/bash
#PBS -P w84
#PBS -q normal
#PBS -N java1847
#PBS -l walltime=8:00:00
#PBS -l ncpus=1
#PBS -l mem=16GB
#PBS -l wd

module unload python
module load python/2.7.11
module load geos/3.5.0
export SPATIALINDEX_C_LIBRARY=/short/w84/libspatialindex/lib/libspatialindex_c.so
export LD_LIBRARY_PATH=/short/w84/libspatialindex/lib:$LD_LIBRARY_PATH
export PYTHONPATH=/short/w84/oq-engine:/short/w84/eqrm:$PYTHONPATH

python estimate_magnitude.py -param_file data/1847.param > 1847.log 2>&1
`
	if got != want {
		t.Errorf("got\n%#+v, wanted\n%#+v\n", got, want)
	}
}

func TestWritePBSNoProject(t *testing.T) {
	var buf bytes.Buffer
	err := WritePBS(&buf, PBS{
		Name:      "magest_1867",
		Queue:     "express",
		Walltime:  "1:00:00",
		Ncpus:     1,
		Mem:       "4GB",
		Python:    "python",
		Program:   "estimate_magnitude.py",
		ParamFile: "data/1867.param",
		LogFile:   "1867.log",
	})
	if err != nil {
		t.Fatalf("WritePBS: %v", err)
	}
	got := buf.String()
	want := `#!/bin/bash
#PBS -q express
#PBS -N magest_1867
#PBS -l walltime=1:00:00
#PBS -l ncpus=1
#PBS -l mem=4GB
#PBS -l wd


python estimate_magnitude.py -param_file data/1867.param > 1867.log 2>&1
`
	if got != want {
		t.Errorf("got\n%#+v, wanted\n%#+v\n", got, want)
	}
}

func TestSubmit(t *testing.T) {
	tmp := SUBMIT_CMD
	abs, err := filepath.Abs("scripts/qsub")
	if err != nil {
		t.Fatal(err)
	}
	SUBMIT_CMD = abs
	defer func() {
		SUBMIT_CMD = tmp
	}()
	got, err := Submit("testfiles/job.pbs")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	want := "2453251.gadi-pbs"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestStat(t *testing.T) {
	tmp := STAT_CMD
	STAT_CMD = func() (string, []string) {
		return "cat", []string{
			"testfiles/qstat.dat",
		}
	}
	defer func() {
		STAT_CMD = tmp
	}()
	got := map[string]bool{
		"2453251.gadi-pbs": true,
		"2453252.gadi-pbs": true,
		"2453253.gadi-pbs": true,
		"2453254.gadi-pbs": true,
	}
	Stat(&got)
	want := map[string]bool{
		"2453251.gadi-pbs": true,
		"2453252.gadi-pbs": true,
		"2453253.gadi-pbs": false,
		"2453254.gadi-pbs": false,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
