package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Tests and library callers never go through a main, so the logger has to
// exist before Init is called.
func init() {
	Init("micro-social", "info")
}

func Init(service, level string) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	Log = logger.WithField("service", service)
}
