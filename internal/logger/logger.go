package logger

import (
	"io"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/rs/zerolog"
)

// Logger wraps a configured zerolog instance together with the writers it
// owns, so file writers can be closed on shutdown.
type Logger struct {
	zerolog zerolog.Logger
	config  LoggerConfig
	closers []io.Closer
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// GetConfig returns the effective logger configuration
func (l *Logger) GetConfig() LoggerConfig {
	return l.config
}

// Close releases any file writers owned by the logger.
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// New creates a zerolog logger from application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	logger, err := NewLoggerBuilder().WithConfig(cfg).Build()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return *logger.GetZerolog(), nil
}
