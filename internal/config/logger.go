package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "lifex"

// Prepare builds the file logger. The terminal belongs to the presenter, so
// there is no console core; "none" yields a no-op logger. The returned
// function closes the log file.
func (ls LoggingSettings) Prepare() (*zap.Logger, func(), error) {
	var level zapcore.Level
	switch ls.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "normal":
		level = zapcore.InfoLevel
	default:
		return zap.NewNop(), func() {}, nil
	}

	dest := ls.Destination
	if dest == "" {
		dest = appName + ".log"
	}

	// capture runtime crashes next to the log, quietly skipped when impossible
	if ef, err := openLog(filepath.Join(filepath.Dir(dest), appName+"-panic.log")); err == nil {
		debug.SetCrashOutput(ef, debug.CrashOptions{})
		ef.Close()
	}

	var redirected string
	f, err := openLog(dest)
	if err != nil {
		if f, err = os.CreateTemp("", appName+".*.log"); err != nil {
			return nil, nil, fmt.Errorf("unable to access log destination (%s): %w", dest, err)
		}
		redirected = f.Name()
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(f), zap.NewAtomicLevelAt(level))
	log := zap.New(core, zap.AddCaller()).Named(appName)
	if redirected != "" {
		log.Warn("Log file was redirected to new location", zap.String("location", redirected))
	}

	return log, func() {
		_ = log.Sync()
		f.Close()
	}, nil
}

func openLog(name string) (*os.File, error) {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
