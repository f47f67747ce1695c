package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the global logger. Format "json" selects the JSON
// formatter; anything else gets the human-readable text formatter.
func Init(level, format string) *logrus.Logger {
	l := logrus.New()

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(parsed)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.SetOutput(os.Stdout)
	log = l
	return l
}

// Get returns the global logger, initializing it with defaults on first use.
func Get() *logrus.Logger {
	if log == nil {
		return Init("info", "text")
	}
	return log
}
