package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxFileSizeMB = 50
	maxBackups    = 5
	maxAgeDays    = 14
)

// Setup configures the standard logrus logger. An empty file keeps output on stdout only.
// The returned closer releases the log file, if any.
func Setup(level, file string) io.Closer {
	var fileWriter *lumberjack.Logger
	writers := []io.Writer{os.Stdout}
	if file != "" {
		fileWriter = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		writers = append(writers, fileWriter)
	}
	logrus.SetOutput(io.MultiWriter(writers...))
	logrus.SetLevel(ParseLevel(level))

	if fileWriter == nil {
		return nopCloser{}
	}
	return fileWriter
}

// ParseLevel falls back to info for unknown levels.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
