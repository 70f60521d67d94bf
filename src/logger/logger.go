package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrusLogger configures the standard logrus logger, which every package
// logs through, and returns a handle to it.
func NewLogrusLogger(level string, out io.Writer) (*LogrusLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("NewLogrusLogger: %w", err)
	}

	l := logrus.StandardLogger()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if out != nil {
		l.SetOutput(out)
	}

	return &LogrusLogger{
		logger: l,
	}, nil
}

func (l *LogrusLogger) Logger() *logrus.Logger {
	return l.logger
}

func (l *LogrusLogger) ForRun(runID string) *logrus.Entry {
	return l.logger.WithField("run_id", runID)
}
