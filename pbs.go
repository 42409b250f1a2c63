package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed pbs.tmpl
var Templates embed.FS

// PBS holds the fields of a rendered job script.
type PBS struct {
	Name      string
	Project   string
	Queue     string
	Walltime  string
	Ncpus     int
	Mem       string
	Unload    []string
	Modules   []string
	Exports   []string
	Python    string
	Program   string
	ParamFile string
	LogFile   string
}

var PBS_TEMPLATE *template.Template

func init() {
	var err error
	PBS_TEMPLATE, err = template.ParseFS(Templates, "pbs.tmpl")
	if err != nil {
		panic(err)
	}
}

// NewPBS assembles the job script fields for one run of conf.
func NewPBS(conf Config, run Run) PBS {
	return PBS{
		Name:      conf.JobName(run),
		Project:   conf.Project,
		Queue:     conf.Queue,
		Walltime:  conf.Walltime,
		Ncpus:     conf.Ncpus,
		Mem:       conf.Mem,
		Unload:    conf.Unload,
		Modules:   conf.Modules,
		Exports:   conf.Exports(),
		Python:    conf.Python,
		Program:   conf.Program,
		ParamFile: run.ParamFile,
		LogFile:   run.LogFile,
	}
}

func WritePBS(w io.Writer, p PBS) error {
	return PBS_TEMPLATE.Execute(w, p)
}

var SUBMIT_CMD string = "qsub"

// Submit sends filename to the queue and returns the job id. The
// submission runs from the script's directory, so the full path needs
// to be present.
func Submit(filename string) (string, error) {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)
	cmd := exec.Command(SUBMIT_CMD, base)
	cmd.Dir = dir
	byts, err := cmd.Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error on %q is: %v\n",
			cmd.String(), err,
		)
		return "", err
	}
	// output like "2453251.gadi-pbs"
	fields := strings.Fields(string(byts))
	if len(fields) == 0 {
		return "", fmt.Errorf("no job id in output of %q", cmd.String())
	}
	return fields[0], nil
}
