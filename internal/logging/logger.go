// Package logging builds the logrus logger shared by every command.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/gauthierbraillon/reportmix/internal/config"
)

// Fields represents structured logging fields
type Fields = logrus.Fields

// New creates a logger writing to w with the configured level and format.
func New(cfg config.LogConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// NewWithService creates a logger with a service field on every entry.
func NewWithService(cfg config.LogConfig, w io.Writer, service string) (*logrus.Entry, error) {
	logger, err := New(cfg, w)
	if err != nil {
		return nil, err
	}
	return logger.WithField("service", service), nil
}
