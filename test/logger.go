package test

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger that discards output unless TEST_LOGS is set. TEST_LOGS=2 enables debug and
// TEST_LOGS=3 enables trace, any other value logs at info.
func NewLogger() *logrus.Logger {
	l := logrus.New()

	v := os.Getenv("TEST_LOGS")
	if v == "" {
		l.SetOutput(io.Discard)
		return l
	}

	switch v {
	case "2":
		l.SetLevel(logrus.DebugLevel)
	case "3":
		l.SetLevel(logrus.TraceLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}

	return l
}

// LogWriter collects every formatted log line written to it.
type LogWriter struct {
	Logs []string
}

func NewLogWriter() *LogWriter {
	return &LogWriter{Logs: make([]string, 0)}
}

func (tl *LogWriter) Write(p []byte) (n int, err error) {
	tl.Logs = append(tl.Logs, string(p))
	return len(p), nil
}

func (tl *LogWriter) Reset() {
	tl.Logs = tl.Logs[:0]
}

// NewCapturingLogger returns a debug level logger with a stable text format and the writer that receives its output.
func NewCapturingLogger() (*logrus.Logger, *LogWriter) {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	}
	l.SetLevel(logrus.DebugLevel)

	tl := NewLogWriter()
	l.Out = tl
	return l, tl
}
