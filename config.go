package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Run is one candidate invocation of the analysis program. Exactly one
// run is active at a time unless a name is given on the command line.
type Run struct {
	Name      string
	ParamFile string `toml:"param_file"`
	LogFile   string `toml:"log_file"`
	Active    bool
}

type RawConf struct {
	Name     string
	Project  string
	Queue    string
	Walltime string
	Ncpus    int
	Mem      string
	Python   string
	Program  string
	Cluster  string
	Modules  []string
	Unload   []string
	Env      map[string]string
	LibPath  []string `toml:"ld_library_path"`
	PyPath   []string `toml:"python_path"`
	Runs     []Run
}

type Config struct {
	Name     string
	Project  string
	Queue    string
	Walltime string
	Ncpus    int
	Mem      string
	Python   string
	Program  string
	Cluster  string
	Modules  []string
	Unload   []string
	Env      map[string]string
	LibPath  []string
	PyPath   []string
	Runs     []Run
}

func (rc RawConf) ToConfig() (conf Config) {
	conf.Name = rc.Name
	conf.Project = rc.Project
	conf.Queue = rc.Queue
	conf.Walltime = rc.Walltime
	conf.Ncpus = rc.Ncpus
	conf.Mem = rc.Mem
	conf.Python = rc.Python
	conf.Program = rc.Program
	conf.Cluster = rc.Cluster
	conf.Modules = rc.Modules
	conf.Unload = rc.Unload
	conf.Env = rc.Env
	conf.LibPath = rc.LibPath
	conf.PyPath = rc.PyPath
	conf.Runs = rc.Runs
	for i, r := range conf.Runs {
		if r.LogFile == "" {
			conf.Runs[i].LogFile = r.Name + ".log"
		}
	}
	return
}

var (
	ErrNoActiveRun   = errors.New("no active run in config")
	ErrManyActive    = errors.New("more than one active run in config")
	ErrRunNotFound   = errors.New("no run with the requested name")
	ErrNoRuns        = errors.New("config defines no runs")
	ErrMissingParams = errors.New("param file does not exist")
)

func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	// Defaults match the resource requests the analysis jobs have
	// always been submitted with: one CPU, 16 GB, 8 hours.
	rc := RawConf{
		Queue:    "normal",
		Walltime: "8:00:00",
		Ncpus:    1,
		Mem:      "16GB",
		Python:   "python",
		Program:  "estimate_magnitude.py",
	}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		return Config{}, err
	}
	return rc.ToConfig(), nil
}

// ActiveRun selects the run to launch. With a name it looks the run up
// directly; otherwise exactly one run must be marked active.
func (c Config) ActiveRun(name string) (Run, error) {
	if len(c.Runs) == 0 {
		return Run{}, ErrNoRuns
	}
	if name != "" {
		for _, r := range c.Runs {
			if r.Name == name {
				return r, nil
			}
		}
		return Run{}, fmt.Errorf("%w: %q", ErrRunNotFound, name)
	}
	var (
		found  bool
		active Run
	)
	for _, r := range c.Runs {
		if r.Active {
			if found {
				return Run{}, ErrManyActive
			}
			active = r
			found = true
		}
	}
	if !found {
		return Run{}, ErrNoActiveRun
	}
	return active, nil
}

// Exports flattens the environment configuration into the export lines
// for the job script. Plain variables come first in sorted order, then
// the library and Python search paths with the inherited value
// appended.
func (c Config) Exports() []string {
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ret := make([]string, 0, len(keys)+2)
	for _, k := range keys {
		ret = append(ret, k+"="+c.Env[k])
	}
	if len(c.LibPath) > 0 {
		ret = append(ret, "LD_LIBRARY_PATH="+
			strings.Join(c.LibPath, ":")+":$LD_LIBRARY_PATH")
	}
	if len(c.PyPath) > 0 {
		ret = append(ret, "PYTHONPATH="+
			strings.Join(c.PyPath, ":")+":$PYTHONPATH")
	}
	return ret
}

// JobName returns the scheduler job name for run, falling back to the
// run name when the config does not set one.
func (c Config) JobName(run Run) string {
	if c.Name != "" {
		return c.Name
	}
	return "magest_" + run.Name
}
