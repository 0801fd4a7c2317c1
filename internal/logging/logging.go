// Package logging configures the structured logger shared by runway commands.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level selects verbosity from the CLI flags. quiet wins over verbose.
func Level(verbose, quiet bool) logrus.Level {
	switch {
	case quiet:
		return logrus.ErrorLevel
	case verbose:
		return logrus.DebugLevel
	default:
		return logrus.WarnLevel
	}
}

// New returns a text logger writing to out at the given level.
func New(out io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	return log
}
