package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Production config unless APP_ENV=development.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNop returns a no-op logger for tests.
func NewNop() *zap.Logger { return zap.NewNop() }
