package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	colorable "github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vrecan/death/v3"
)

const logName = "scriptcli"

// setupLogging configures logrus the way the rest of this corpus does:
// colorized text to stdout, JSON lines to a rotating file. Only this
// binary logs; the library packages (opcode, script, pubkey, address,
// bhash, sighash) never do.
func setupLogging(logDir string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	rotateHook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filepath.Join(logDir, logName+".log"),
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.InfoLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})
	if err != nil {
		return fmt.Errorf("initializing rotating file hook: %w", err)
	}

	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetOutput(colorable.NewColorableStdout())
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC822,
	})
	logrus.AddHook(rotateHook)
	return nil
}

// watchShutdown blocks the calling goroutine until SIGINT/SIGTERM, running
// cleanup before exiting. Used by the long-running fixture-watch
// subcommand.
func watchShutdown(cleanup func()) {
	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	d.WaitForDeathWithFunc(func() {
		defer os.Exit(0)
		defer runtime.Goexit()
		cleanup()
	})
}
