package kit

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production logger every service entry point uses.
// LOG_LEVEL overrides the default info level; bad values are ignored.
func NewLogger(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}

	if lv := os.Getenv("LOG_LEVEL"); lv != "" {
		if parsed, err := zapcore.ParseLevel(lv); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	l, _ := cfg.Build()
	return l
}
