package codec

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger shared by encode and decode walks.
// It is a no-op logger until SetLogger installs one.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs the logger used for walk diagnostics.
// Call it before the first encode or decode.
func SetLogger(l *zap.Logger) {
	logger = l
}
