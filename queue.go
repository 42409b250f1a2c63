package main

import (
	"bufio"
	"os/exec"
	"strings"
	"time"

	"magest/logger"
)

// STAT_CMD produces the command used to query the queue. A variable so
// tests and cluster profiles can swap it out.
var STAT_CMD = func() (string, []string) {
	return "qstat", []string{}
}

var SLEEP_INT = 60 * time.Second

// Stat generates an updated map of job ids to their queue status. The
// map value is true while the job is still in the queue in a live
// state (queued, running, held, waiting, suspended or exiting) and
// false otherwise.
func Stat(qstat *map[string]bool) {
	name, args := STAT_CMD()
	status, _ := exec.Command(name, args...).CombinedOutput()
	scanner := bufio.NewScanner(strings.NewReader(string(status)))
	var (
		line   string
		fields []string
		header = true
	)
	// initialize them all to false and set true if still present
	for key := range *qstat {
		(*qstat)[key] = false
	}
	for scanner.Scan() {
		line = scanner.Text()
		if strings.HasPrefix(line, "---") {
			header = false
			continue
		} else if header {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		if _, ok := (*qstat)[fields[0]]; ok {
			if strings.Contains("EHQRSTW", fields[4]) {
				(*qstat)[fields[0]] = true
			}
		}
	}
}

// Watch blocks until every job in jobids has left the queue.
func Watch(jobids []string) {
	qstat := make(map[string]bool)
	for _, id := range jobids {
		qstat[id] = true
	}
	for {
		Stat(&qstat)
		var remaining int
		for _, live := range qstat {
			if live {
				remaining++
			}
		}
		if remaining == 0 {
			logger.Infof("all jobs done")
			return
		}
		logger.Infof("%d jobs remaining", remaining)
		time.Sleep(SLEEP_INT)
	}
}
