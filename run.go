package main

import (
	"os"
	"os/exec"
	"sort"
	"strings"

	"magest/logger"
)

// LocalEnv builds the child environment for a scheduler-less run: the
// current environment plus the config's exports, with the library and
// Python paths prepended to any inherited values.
func LocalEnv(conf Config) []string {
	env := os.Environ()
	keys := make([]string, 0, len(conf.Env))
	for k := range conf.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+conf.Env[k])
	}
	if len(conf.LibPath) > 0 {
		env = append(env, "LD_LIBRARY_PATH="+
			prepend(conf.LibPath, os.Getenv("LD_LIBRARY_PATH")))
	}
	if len(conf.PyPath) > 0 {
		env = append(env, "PYTHONPATH="+
			prepend(conf.PyPath, os.Getenv("PYTHONPATH")))
	}
	return env
}

func prepend(paths []string, old string) string {
	joined := strings.Join(paths, ":")
	if old == "" {
		return joined
	}
	return joined + ":" + old
}

// LocalRun executes the analysis program directly, without the
// scheduler, redirecting the combined output stream to the run's log
// file. Module loads only happen inside batch scripts, so they are
// skipped here. The child's exit status comes back unchanged.
func LocalRun(conf Config, run Run) error {
	if len(conf.Modules) > 0 {
		logger.Warningf("local run skips module loads: %s",
			strings.Join(conf.Modules, " "))
	}
	f, err := os.Create(run.LogFile)
	if err != nil {
		return err
	}
	defer f.Close()
	cmd := exec.Command(conf.Python, conf.Program,
		"-param_file", run.ParamFile)
	cmd.Stdout = f
	cmd.Stderr = f
	cmd.Env = LocalEnv(conf)
	logger.Infof("running %s", cmd.String())
	return cmd.Run()
}
