package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/argonia/internal/config"
)

// NewLogger creates a structured zap.Logger writing JSON to stderr, so that
// command output on stdout stays machine readable. An empty or unknown
// level falls back to warn.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
			level = zapcore.WarnLevel
		}
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}
