package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger on STDERR, logging from Info up when verbose
func newLogger(verbose bool) *zap.Logger {
	level := zap.WarnLevel
	if verbose {
		level = zap.InfoLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}

// setLogger makes l the logger handed to the tree builder and its sugared
// version the one behind the config's Infof
func (rcc *rootCmdConfig) setLogger(l *zap.Logger) {
	rcc.logger = l
	rcc.SugaredLogger = l.Sugar()
}
