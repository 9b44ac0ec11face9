package main

import (
	"io"

	paginate "github.com/alnah/go-paginate"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel picks the console level from the output flags.
// Quiet wins over debug.
func logLevel(quiet, debug bool) zapcore.Level {
	switch {
	case quiet:
		return zapcore.WarnLevel
	case debug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

// logObserver forwards generator diagnostics to a zap logger.
type logObserver struct {
	log *zap.Logger
}

// Compile-time interface implementation check.
var _ paginate.Observer = logObserver{}

func (o logObserver) Info(msg string)  { o.log.Info(msg) }
func (o logObserver) Warn(msg string)  { o.log.Warn(msg) }
func (o logObserver) Debug(msg string) { o.log.Debug(msg) }
