package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logFileName = "trick-runner.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate above 10MB
)

// setupLogging creates the game logger writing to dir/trick-runner.log
// The terminal belongs to tcell, so logs never go to stdout or stderr
// Without debug the logger discards everything and no file is opened
func setupLogging(dir string, debug bool) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if !debug {
		logger.SetOutput(io.Discard)
		return logger, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		return logger, nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("trick-runner-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, nil
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return logger, f
}
