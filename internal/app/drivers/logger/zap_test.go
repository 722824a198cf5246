package logger

import (
	"testing"

	"telecare-service/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestBuildZapConfig(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		env         string
		wantLevel   zapcore.Level
		wantOutputs []string
	}{
		{"debug in development", "debug", "development", zapcore.DebugLevel, []string{"stdout"}},
		{"warn in staging", "warn", "staging", zapcore.WarnLevel, []string{"stdout"}},
		{"unknown level falls back to info", "verbose", "development", zapcore.InfoLevel, []string{"stdout"}},
		{"production writes to file", "error", "production", zapcore.ErrorLevel, []string{"app.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverConfig := &config.DriverConfig{Logger: config.Logger{Level: tt.level, OutputFileName: "app.log", OutputErrorFileName: "app_error.log"}}
			internalConfig := &config.InternalConfig{App: config.App{Env: tt.env}}

			cfg := buildZapConfig(driverConfig, internalConfig)
			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, tt.wantOutputs, cfg.OutputPaths)
			assert.Equal(t, "json", cfg.Encoding)
		})
	}
}
