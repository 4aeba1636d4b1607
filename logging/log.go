package logging

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// The logger used by all packages of the library
//
// *logrus.Logger and *logrus.Entry satisfy it, as does LogrusLogger.
type LoggingInterface interface {
	Trace(args ...interface{})
	Tracef(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

var (
	discard LoggingInterface = newDiscardLogger()

	log LoggingInterface = discard
	mux sync.RWMutex
)

// a logrus logger that drops everything before formatting
func newDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// Sets the logger of the library
//
// Nothing is logged until a logger is set, nil restores that default.
func SetLogging(logger LoggingInterface) {
	mux.Lock()
	defer mux.Unlock()

	if logger == nil {
		log = discard
		return
	}
	log = logger
}

func Log() LoggingInterface {
	mux.RLock()
	defer mux.RUnlock()

	return log
}
