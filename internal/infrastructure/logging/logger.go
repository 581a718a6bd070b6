package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing text lines to out at level.
func New(out io.Writer, level logrus.Level, version string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: level < logrus.DebugLevel,
		FullTimestamp:    true,
	}

	return log.WithFields(logrus.Fields{
		"version": version,
	})
}
