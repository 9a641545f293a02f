// Package logger configures the process-wide logrus logger. Level and format
// come from the environment so a packaged build can be switched to debug or
// JSON output without a rebuild.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to out. LOG_LEVEL selects the level (default
// info); LOG_FORMAT=json switches to the JSON formatter.
func New(out io.Writer) *logrus.Logger {
	log := logrus.New()

	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetOutput(out)
	return log
}
