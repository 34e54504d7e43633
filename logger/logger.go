package logger

import (
	"os"

	"github.com/ava-labs/ava-explorer/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
)

func init() {
	// Default logger before the configuration is read
	logger, _ := zap.NewDevelopment()
	sugar = logger.Sugar()

	config.GlobalConfigCallback.AddCallback(func(cfg config.GlobalConfig) {
		configureLogger(cfg.LoggerConfig())
	})
}

func configureLogger(cfg config.LoggerConfig) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	cores := make([]zapcore.Core, 0, 2)
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}
	if len(cfg.File) > 0 {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(f), level))
		}
	}

	logger := zap.New(zapcore.NewTee(cores...))
	sugar = logger.Sugar()
}

func Debug(msg string, args ...interface{}) {
	sugar.Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	sugar.Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	sugar.Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	sugar.Errorf(msg, args...)
}
