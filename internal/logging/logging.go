// Package logging builds the zap loggers used by the passkit CLI.
// The generator and strength engines never log; only the CLI does.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides the level chosen from the verbose flag.
const EnvLogLevel = "PASSKIT_LOG_LEVEL"

// DefaultConfig returns the zap config for CLI use: console encoding on stderr
// so that stdout stays reserved for passwords and reports.
func DefaultConfig(verbose bool) zap.Config {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level = ParseLevel(v)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""

	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableStacktrace: !verbose,
		Encoding:          "console",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// New builds a logger from DefaultConfig.
func New(verbose bool) (*zap.Logger, error) {
	return DefaultConfig(verbose).Build()
}

// NewWithWriter builds a console logger writing to w. Used by tests and by
// commands that redirect their error stream.
func NewWithWriter(w io.Writer, verbose bool) *zap.Logger {
	cfg := DefaultConfig(verbose)
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(w),
		cfg.Level,
	)
	return zap.New(core)
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
