// Package log provides the process-wide structured logger, backed by logrus.
package log

import (
	"io"
	"os"
	"sync"

	"firestige.xyz/pitwall/internal/config"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsDebugEnabled() bool
}

var (
	once   sync.Once
	mu     sync.RWMutex
	logger Logger
	closer io.Closer
)

// GetLogger returns the global logger. Before Init it is an info-level
// text logger on stderr.
func GetLogger() Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if logger == nil {
			l, _, _ := New(config.LogConfig{Level: "info", Format: "text"}, os.Stderr)
			logger = l
		}
	})
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init replaces the global logger according to cfg. Records go to stderr,
// since stdout belongs to the console sink, plus the rotating file when
// enabled.
func Init(cfg config.LogConfig) error {
	l, c, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	// Mark the default as built before taking the lock GetLogger's once needs.
	once.Do(func() {})

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
	}
	logger, closer = l, c
	return nil
}

// Close releases the file output of the global logger, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}
