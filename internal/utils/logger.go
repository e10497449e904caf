package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Production encoding unless ENV=dev.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "dev" {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
