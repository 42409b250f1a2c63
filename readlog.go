package main

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

var (
	ErrLogNotFound      = errors.New("log file not found")
	ErrBlankLog         = errors.New("blank log file")
	ErrLogContainsError = errors.New("log file contains an error")
	ErrFitNotFound      = errors.New("best fit not found in log")
)

// ReadLog inspects the captured output of an analysis run. It returns
// the best-fit summary line when the run finished, or a sentinel error
// for a missing, blank or failed run. For a failed run the returned
// string holds the offending line.
func ReadLog(filename string) (string, error) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		return "", ErrLogNotFound
	}
	scanner := bufio.NewScanner(f)
	var (
		line    string
		summary string
		i       int
	)
	for ; scanner.Scan(); i++ {
		line = scanner.Text()
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(line, "Traceback"),
			strings.Contains(lower, "error:"):
			return line, ErrLogContainsError
		case strings.Contains(lower, "best fit"):
			summary = line
		}
	}
	if i == 0 {
		return "", ErrBlankLog
	}
	if summary == "" {
		return "", ErrFitNotFound
	}
	return summary, nil
}
