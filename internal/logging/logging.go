// Package logging builds the zap logger shared by the game and its tools.
package logging

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects level, encoding and destination. The game owns the
// terminal, so the defaults keep logs quiet and off stdout.
type Config struct {
	Level      string `env:"LOG_LEVEL" envDefault:"warn"`
	Encoding   string `env:"LOG_ENCODING" envDefault:"console"`
	OutputPath string `env:"LOG_FILE"`
}

func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	logLevel := strings.ToLower(strings.TrimSpace(cfg.Level))
	if logLevel == "" {
		logLevel = "warn"
	}
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" && encoding != "json" {
		encoding = "console"
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stderr"
	}

	zapConfig := zap.Config{
		Level:             level,
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// WithRunID tags every entry of one game with a fresh run id.
func WithRunID(logger *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return logger.With(zap.String("run_id", id)), id
}
