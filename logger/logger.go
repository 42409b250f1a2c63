// Package logger provides a leveled logger for the magest CLI. The log
// level and file location are taken from the environment so batch jobs
// can turn on debugging without editing any scripts.
package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

const (
	LevelEnv = "MAGEST_LOGLEVEL"
	PathEnv  = "MAGEST_LOGPATH"

	DebugLevel    = 10
	InfoLevel     = 20
	WarningLevel  = 30
	ErrorLevel    = 40
	CriticalLevel = 50
)

var Log *log.Logger

func init() {
	logPath := os.TempDir()
	if env := os.Getenv(PathEnv); len(env) > 0 {
		logPath = env
	}
	var w io.Writer = os.Stderr
	f, err := os.OpenFile(filepath.Join(logPath, "magest.log"),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err == nil {
		w = io.MultiWriter(os.Stderr, f)
	}
	Log = log.New(w, "", log.LstdFlags)
}

// Level returns the active log level. Messages below it are dropped.
func Level() int {
	if env, err := strconv.Atoi(os.Getenv(LevelEnv)); err == nil {
		return env
	}
	return WarningLevel
}

func levelName(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}

func logf(level int, format string, a ...interface{}) {
	if Level() <= level {
		Log.Printf(levelName(level)+" "+format, a...)
	}
}

func Debugf(format string, a ...interface{})   { logf(DebugLevel, format, a...) }
func Infof(format string, a ...interface{})    { logf(InfoLevel, format, a...) }
func Warningf(format string, a ...interface{}) { logf(WarningLevel, format, a...) }
func Errorf(format string, a ...interface{})   { logf(ErrorLevel, format, a...) }

// DebugObj dumps v as indented JSON under the debug level.
func DebugObj(name string, v interface{}) {
	if Level() <= DebugLevel {
		data, _ := json.MarshalIndent(v, "", " ")
		Log.Printf("DEBUG %s:\n%s\n", name, data)
	}
}
