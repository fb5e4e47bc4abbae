// Package logger is daymood's process-wide structured log. Records go to a
// size-rotated file in the config directory; --debug mirrors them to stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/daymood/internal/constants"
)

// Logger is the installed logger. Nil until Init or Discard runs; the package
// helpers are safe to call either way.
var Logger *log.Logger

var logPath string

type Config struct {
	Debug     bool
	ConfigDir string
}

// Init opens <ConfigDir>/logs/daymood.log and installs a logger writing to it.
func Init(cfg Config) error {
	dir := filepath.Join(cfg.ConfigDir, constants.LogDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	logPath = filepath.Join(dir, constants.AppName+".log")

	var out io.Writer = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxFiles,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}
	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
		out = io.MultiWriter(os.Stderr, out)
	}

	Logger = log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Debug,
		CallerOffset:    2,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	return nil
}

// Discard installs a logger that drops everything.
func Discard() {
	logPath = ""
	Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

// Path is the active log file, or "" when nothing is written to disk.
func Path() string {
	if Logger == nil {
		return ""
	}
	return logPath
}

func Debug(msg string, keyvals ...any) { emit(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...any)  { emit(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...any)  { emit(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...any) { emit(log.ErrorLevel, msg, keyvals) }

func emit(level log.Level, msg string, keyvals []any) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}
