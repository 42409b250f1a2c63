package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Cluster is a site profile: the submit and stat commands a machine
// uses plus the modules and environment every job there needs. Kept
// separate from the job config so the same config submits on any
// cluster with a profile.
type Cluster struct {
	SubmitCmd string            `yaml:"submit_cmd"`
	StatCmd   []string          `yaml:"stat_cmd"`
	Modules   []string          `yaml:"modules"`
	Unload    []string          `yaml:"unload"`
	Env       map[string]string `yaml:"env"`
}

type Clusters map[string]Cluster

// DefaultClustersPath is ~/.config/magest/clusters.yaml.
func DefaultClustersPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "magest", "clusters.yaml")
}

func LoadClusters(filename string) (Clusters, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var ret Clusters
	if err := yaml.Unmarshal(cont, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Apply merges the profile into conf and points the scheduler commands
// at the profile's versions. Config entries win over profile entries on
// conflict; profile modules load before the config's own.
func (cl Cluster) Apply(conf *Config) {
	conf.Modules = append(append([]string{}, cl.Modules...), conf.Modules...)
	conf.Unload = append(append([]string{}, cl.Unload...), conf.Unload...)
	if len(cl.Env) > 0 && conf.Env == nil {
		conf.Env = make(map[string]string)
	}
	for k, v := range cl.Env {
		if _, ok := conf.Env[k]; !ok {
			conf.Env[k] = v
		}
	}
	if cl.SubmitCmd != "" {
		SUBMIT_CMD = cl.SubmitCmd
	}
	if len(cl.StatCmd) > 0 {
		STAT_CMD = func() (string, []string) {
			return cl.StatCmd[0], cl.StatCmd[1:]
		}
	}
}
