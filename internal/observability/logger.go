package observability

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "pa.log"
	logDirMode    = 0o700
	logMaxSizeMB  = 5
	logMaxBackups = 2
	logMaxAgeDays = 14
)

// NewFileLogger builds a JSON logger writing to <dir>/pa.log with
// rotation. Terminal output stays clean; everything diagnostic goes to
// the file. An empty dir resolves to ~/.paagent.
func NewFileLogger(dir string, debug bool) (*zap.Logger, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".paagent")
	}

	if err := os.MkdirAll(dir, logDirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	})

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)

	return zap.New(core).Named("pa"), nil
}
