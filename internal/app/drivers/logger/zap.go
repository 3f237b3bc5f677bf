package logger

import (
	"log"
	"medibook-web/internal/app/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development:       internalConfig.App.Env == "development",
		DisableStacktrace: internalConfig.App.Env == "production",
		Encoding:          "json",
		EncoderConfig:     encoderConfig(),
		InitialFields: map[string]interface{}{
			"app_version": internalConfig.App.Version,
			"app_env":     internalConfig.App.Env,
		},
	}
	cfg.OutputPaths, cfg.ErrorOutputPaths = outputPaths(driverConfig, internalConfig.App.Env)

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func outputPaths(driverConfig *config.DriverConfig, env string) ([]string, []string) {
	if env == "production" {
		return []string{driverConfig.Logger.OutputFileName},
			[]string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}
	return []string{"stdout"}, []string{"stderr"}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
