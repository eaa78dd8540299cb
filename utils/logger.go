package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	// usable defaults so packages and tests can log before InitLogger runs
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel, "text")
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel, "text")
}

// InitLogger configures both loggers. level is a logrus level name, format is
// "text" or "json".
func InitLogger(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	InfoLogger = newLogger(os.Stdout, lvl, format)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel, format)

	if err != nil {
		InfoLogger.Warnf("unknown LOG_LEVEL %q, using info", level)
	}
}

// SilenceLoggers discards all output. Used by tests.
func SilenceLoggers() {
	InfoLogger.SetOutput(io.Discard)
	ErrorLogger.SetOutput(io.Discard)
}

func newLogger(out io.Writer, level logrus.Level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return l
}
