package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleWriter wraps zerolog.ConsoleWriter to satisfy the LevelWriter
// interface. It must report len(p) rather than the bytes written, because the
// console output is a different length than the JSON it was given, and
// zerolog treats that as a short write.
type consoleWriter struct {
	zerolog.ConsoleWriter
}

func (c consoleWriter) Write(p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

func (c consoleWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	return c.Write(p)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger writing to stderr, and also as JSON to a rotated file when file is
// set. An unknown level falls back to warn.
func newLogger(level, file string) (zerolog.Logger, io.Closer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	writers := []io.Writer{consoleWriter{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}}
	var closer io.Closer = nopCloser{}
	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
		}
		writers = append(writers, rotator)
		closer = rotator
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().Timestamp().Logger()
	return logger, closer
}
