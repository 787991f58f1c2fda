// Package logger configures the logrus logger used for templ-gen diagnostics.
//
// User-facing output goes through notify. The logger carries debug detail that only shows up
// with --verbose.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

//nolint:gochecknoglobals // one process-wide diagnostics logger
var (
	configureOnce sync.Once
	log           = logrus.New()
)

// Configure sets the logger output and level. The formatter is set up once.
func Configure(out io.Writer, verbose bool) {
	configureOnce.Do(func() {
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:       true,
			DisableLevelTruncation: true,
		})
	})

	if out == nil {
		out = os.Stderr
	}

	log.SetOutput(out)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// L returns the shared logger.
func L() *logrus.Logger {
	return log
}

// WithComponent returns an entry tagged with the emitting component.
func WithComponent(name string) *logrus.Entry {
	return log.WithField("component", name)
}
