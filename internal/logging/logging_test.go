package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/argonia/internal/config"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"chatty", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewLogger(config.LoggerConfig{Level: tt.level})
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}
