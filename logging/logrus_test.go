package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusLogger(t *testing.T) {
	logger, err := NewLogrusLogger(Config{Level: "debug", Format: "json"})
	assert.Nil(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	assert.Nil(t, logger.Close())

	logger, err = NewLogrusLogger(Config{})
	assert.Nil(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	_, err = NewLogrusLogger(Config{Level: "verbose"})
	assert.NotNil(t, err)

	_, err = NewLogrusLogger(Config{Format: "xml"})
	assert.NotNil(t, err)
}

func TestLogrusLoggerFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wattpilot.log")

	logger, err := NewLogrusLogger(Config{
		Level:      "warn",
		File:       file,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	assert.Nil(t, err)

	logger.Info("skipped")
	logger.Warnf("charger %s unreachable", "12345678")
	assert.Nil(t, logger.Close())

	data, err := os.ReadFile(file)
	assert.Nil(t, err)
	assert.Contains(t, string(data), "charger 12345678 unreachable")
	assert.NotContains(t, string(data), "skipped")
}
