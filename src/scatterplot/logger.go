package scatterplot

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level represents log severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

func init() {
	currentLevel.Store(int32(LevelWarn))
}

// SetLogLevel parses and sets the package log level. Unknown names are
// ignored. The default level is warn, so a library caller only hears about
// behavior overrides such as forced deduplication.
func SetLogLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		currentLevel.Store(int32(LevelDebug))
	case "info":
		currentLevel.Store(int32(LevelInfo))
	case "warn", "warning":
		currentLevel.Store(int32(LevelWarn))
	case "error":
		currentLevel.Store(int32(LevelError))
	}
}

func logf(l Level, prefix, format string, args ...interface{}) {
	if Level(currentLevel.Load()) > l {
		return
	}
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func Debugf(format string, a ...interface{}) { logf(LevelDebug, "DEBUG", format, a...) }

// Infof logs at info level.
func Infof(format string, a ...interface{}) { logf(LevelInfo, "INFO", format, a...) }

// Warnf logs at warn level.
func Warnf(format string, a ...interface{}) { logf(LevelWarn, "WARN", format, a...) }

// Errorf logs at error level.
func Errorf(format string, a ...interface{}) { logf(LevelError, "ERROR", format, a...) }
