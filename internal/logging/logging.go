// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Options struct {
	File  string
	Level string
	JSON  bool
	// Stdout receives a copy of every entry. Nil means os.Stdout.
	Stdout io.Writer
}

// Setup configures the standard logrus logger. The returned closer must be
// called once at shutdown.
func Setup(opts Options) (io.Closer, error) {
	return Configure(logrus.StandardLogger(), opts)
}

// Configure opens the log file in append mode and points logger at both the
// file and stdout.
func Configure(logger *logrus.Logger, opts Options) (io.Closer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	logger.SetOutput(io.MultiWriter(stdout, file))
	logger.SetReportCaller(true)
	logger.SetLevel(level)

	return &closer{logger: logger, file: file, stdout: stdout}, nil
}

type closer struct {
	logger *logrus.Logger
	file   *os.File
	stdout io.Writer
}

func (c *closer) Close() error {
	c.logger.SetOutput(c.stdout)
	if err := c.file.Sync(); err != nil {
		c.file.Close()
		return fmt.Errorf("sync log file: %w", err)
	}
	return c.file.Close()
}
