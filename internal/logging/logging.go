// Package logging sets up the run log file
package logging

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp format of each log line
const TimeLayout = "2006-01-02 15:04:05,000"

// EncoderConfig renders lines as "time - LEVEL - message" followed by any fields
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeDuration:   zapcore.SecondsDurationEncoder,
		ConsoleSeparator: " - ",
	}
}

// NewRunLogger truncates the log file at path and returns a logger writing to it.
// The returned func flushes and closes the file.
func NewRunLogger(path string, level zapcore.Level) (*zap.Logger, func() error, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, eris.Wrapf(err, "failed to create log directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "failed to open log file %s", path)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(EncoderConfig()),
		zapcore.AddSync(f),
		level,
	)
	logger := zap.New(core)

	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}
