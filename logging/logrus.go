package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // text or json

	// optional log file, rotated by size
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogrusLogger implements LoggingInterface on top of a logrus logger
type LogrusLogger struct {
	*logrus.Logger

	closer io.Closer
}

var _ LoggingInterface = (*LogrusLogger)(nil)

func NewLogrusLogger(cfg Config) (*LogrusLogger, error) {
	logger := logrus.New()

	levelName := cfg.Level
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s, %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	result := &LogrusLogger{Logger: logger}

	if cfg.File != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // MB
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		logger.SetOutput(writer)
		result.closer = writer
	} else {
		logger.SetOutput(os.Stderr)
	}

	return result, nil
}

// flushes and closes the log file, if one is used
func (l *LogrusLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
