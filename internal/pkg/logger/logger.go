// Package logger adapts logrus to the ports.Logger interface.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger routes application logs through a dedicated logrus instance.
// MCP serves over stdio, so everything goes to stderr.
type LogrusLogger struct {
	log *logrus.Logger
}

// New creates a logger writing to w (stderr when nil).
func New(verbose bool, w io.Writer) *LogrusLogger {
	log := logrus.New()
	if w != nil {
		log.SetOutput(w)
	}
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return &LogrusLogger{log: log}
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).WithError(err).Error(msg)
}
