// Package log provides the diagnostic logger. The TUI owns the terminal,
// so all output goes to a rotated JSON file under the state directory.
package log

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options mirrors the log section of the config file.
type Options struct {
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// New creates a file-only zap logger writing to logs/client.log inside the
// state directory.
func New(stateDir string, opts Options) *zap.Logger {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(stateDir, "logs", "client.log"),
		MaxSize:    orDefault(opts.MaxSizeMB, 10),
		MaxBackups: orDefault(opts.MaxBackups, 5),
		MaxAge:     30,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		parseLevel(opts.Level),
	)

	return zap.New(core, zap.AddCaller())
}

// Nop returns a logger that discards everything. Used by tests and by code
// paths that run before the state directory is known.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
