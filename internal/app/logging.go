package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logLevelEnv selects the diagnostic log level: debug, info, warn, error.
const logLevelEnv = "TCPT_LOG_LEVEL"

// log carries diagnostics only. Probe results always go through the printer.
var log = logrus.New()

func setupLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv(logLevelEnv))
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
}
