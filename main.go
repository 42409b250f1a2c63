package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"magest/logger"
)

var parser = flags.NewNamedParser("magest", flags.Default)

// ConfigOpts are the flags shared by every command that reads the job
// configuration.
type ConfigOpts struct {
	Config   string `short:"c" long:"config" default:"magest.toml" description:"job configuration file"`
	Run      string `long:"run" description:"select a run by name instead of by the active flag"`
	Clusters string `long:"clusters" description:"cluster profile file"`
}

func (o ConfigOpts) load() (Config, Run, error) {
	conf, err := LoadConfig(o.Config)
	if err != nil {
		return Config{}, Run{}, err
	}
	if conf.Cluster != "" {
		path := o.Clusters
		if path == "" {
			path = DefaultClustersPath()
		}
		clusters, err := LoadClusters(path)
		if err != nil {
			return Config{}, Run{}, fmt.Errorf(
				"loading cluster profiles: %w", err)
		}
		cl, ok := clusters[conf.Cluster]
		if !ok {
			return Config{}, Run{}, fmt.Errorf(
				"no cluster profile %q in %s", conf.Cluster, path)
		}
		cl.Apply(&conf)
	}
	run, err := conf.ActiveRun(o.Run)
	if err != nil {
		return Config{}, Run{}, err
	}
	logger.DebugObj("config", conf)
	return conf, run, nil
}

// ScriptCommand renders the job script without submitting it.
type ScriptCommand struct {
	ConfigOpts
	Output string `short:"o" long:"output" description:"write the script here instead of stdout"`
}

func (x *ScriptCommand) Execute(args []string) error {
	conf, run, err := x.load()
	if err != nil {
		return err
	}
	w := os.Stdout
	if x.Output != "" {
		f, err := os.Create(x.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return WritePBS(w, NewPBS(conf, run))
}

// SubmitCommand writes the job script for the active run and submits
// it to the scheduler.
type SubmitCommand struct {
	ConfigOpts
	Watch bool `short:"w" long:"watch" description:"block until the job leaves the queue"`
}

func (x *SubmitCommand) Execute(args []string) error {
	conf, run, err := x.load()
	if err != nil {
		return err
	}
	if _, err := os.Stat(run.ParamFile); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingParams, run.ParamFile)
	}
	script := run.Name + ".pbs"
	f, err := os.Create(script)
	if err != nil {
		return err
	}
	if err := WritePBS(f, NewPBS(conf, run)); err != nil {
		f.Close()
		return err
	}
	f.Close()
	jobid, err := Submit(script)
	if err != nil {
		return err
	}
	logger.Infof("submitted %s as %s", script, jobid)
	fmt.Println(jobid)
	if x.Watch {
		Watch([]string{jobid})
	}
	return nil
}

// RunCommand executes the active run directly, without the scheduler.
type RunCommand struct {
	ConfigOpts
}

func (x *RunCommand) Execute(args []string) error {
	conf, run, err := x.load()
	if err != nil {
		return err
	}
	if _, err := os.Stat(run.ParamFile); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingParams, run.ParamFile)
	}
	return LocalRun(conf, run)
}

// WatchCommand blocks until the named jobs leave the queue.
type WatchCommand struct {
	Args struct {
		JobIDs []string `positional-arg-name:"jobid"`
	} `positional-args:"true"`
}

func (x *WatchCommand) Execute(args []string) error {
	if len(x.Args.JobIDs) == 0 {
		return fmt.Errorf("watch: no job ids given")
	}
	Watch(x.Args.JobIDs)
	return nil
}

// FitCommand runs the best-fit analysis over a finished run's rupture
// table and the historical observations.
type FitCommand struct {
	Obs    string `long:"obs" required:"true" description:"MMI observation file"`
	Gmf    string `long:"gmf" required:"true" description:"rupture ground motion table"`
	Event  string `long:"event" description:"event name for the summary (default: table filename)"`
	Output string `short:"o" long:"output" description:"write the summary here instead of stdout"`
}

func (x *FitCommand) Execute(args []string) error {
	obs := LoadObs(x.Obs)
	rups, rsa := LoadGmfs(x.Gmf)
	rs := NewRuptureSet(rups, rsa)
	mmi := MMIValues(obs)
	rmse := rs.RMSE(mmi, Weights(obs))
	best, min := rs.BestFit(rmse)
	bounds, fitted := rs.Uncertainty(rmse, len(obs))
	logger.Infof("%d of %d ruptures within uncertainty bounds",
		len(fitted), len(rs.Ruptures))
	event := x.Event
	if event == "" {
		event = filepath.Base(TrimExt(x.Gmf))
	}
	w := os.Stdout
	if x.Output != "" {
		f, err := os.Create(x.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	WriteBestFit(w, event, best, min, bounds)
	return nil
}

// CheckCommand inspects run logs for completion or failure.
type CheckCommand struct {
	Args struct {
		Logs []string `positional-arg-name:"logfile"`
	} `positional-args:"true"`
}

func (x *CheckCommand) Execute(args []string) error {
	if len(x.Args.Logs) == 0 {
		return fmt.Errorf("check: no log files given")
	}
	var failed bool
	for _, log := range x.Args.Logs {
		summary, err := ReadLog(log)
		switch {
		case err == nil:
			fmt.Printf("%s: ok: %s\n", log, summary)
		case summary != "":
			failed = true
			fmt.Printf("%s: %v: %s\n", log, err, summary)
		default:
			failed = true
			fmt.Printf("%s: %v\n", log, err)
		}
	}
	if failed {
		return fmt.Errorf("some runs failed")
	}
	return nil
}

func init() {
	parser.AddCommand("script",
		"Render the job script",
		"Render the PBS job script for the active run to stdout or a file.",
		&ScriptCommand{})
	parser.AddCommand("submit",
		"Submit the active run",
		"Write the PBS job script for the active run and submit it with qsub.",
		&SubmitCommand{})
	parser.AddCommand("run",
		"Run locally without the scheduler",
		"Execute the analysis program directly, capturing combined output to the run's log file.",
		&RunCommand{})
	parser.AddCommand("watch",
		"Wait for queued jobs",
		"Poll the queue until the named jobs finish.",
		&WatchCommand{})
	parser.AddCommand("fit",
		"Find the best-fit rupture",
		"Compare predicted intensities against observations and report the best-fit rupture and its uncertainty bounds.",
		&FitCommand{})
	parser.AddCommand("check",
		"Inspect run logs",
		"Report whether each log shows a finished run, an error, or no output.",
		&CheckCommand{})
}

func main() {
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok &&
			flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
