package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface shared across packages.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// ParseLevel maps a configured level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options configure Init.
type Options struct {
	Level string
	// Verbose guarantees info-level output so request tracing is never filtered.
	Verbose bool
	App     string
	Env     string
}

// Init initializes a JSON zap logger writing to stderr. Stdout is left for
// command output.
func Init(opts Options) (Logger, error) {
	l := build(opts, zapcore.Lock(os.Stderr))
	S = l.Sugar()
	return New(l), nil
}

// EffectiveLevel is the minimum level Init enables for opts.
func EffectiveLevel(opts Options) zapcore.Level {
	level := ParseLevel(opts.Level)
	if opts.Verbose && level > zapcore.InfoLevel {
		level = zapcore.InfoLevel
	}
	return level
}

func build(opts Options, out zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), out, EffectiveLevel(opts))

	var fields []zap.Field
	if opts.App != "" {
		fields = append(fields, zap.String("app", opts.App))
	}
	if opts.Env != "" {
		fields = append(fields, zap.String("env", opts.Env))
	}
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel), zap.Fields(fields...))
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// New adapts a zap.Logger to Logger.
func New(l *zap.Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return &zapLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}

// Minimal object logging helpers -------------------------------------------------
// These log the given object as a single structured field named `key`.
type zapLogger struct {
	l *zap.Logger
}

func (z *zapLogger) InfoObj(msg, key string, obj interface{})  { z.l.Info(msg, zap.Any(key, obj)) }
func (z *zapLogger) DebugObj(msg, key string, obj interface{}) { z.l.Debug(msg, zap.Any(key, obj)) }
func (z *zapLogger) WarnObj(msg, key string, obj interface{})  { z.l.Warn(msg, zap.Any(key, obj)) }
func (z *zapLogger) ErrorObj(msg, key string, obj interface{}) { z.l.Error(msg, zap.Any(key, obj)) }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) InfoObj(string, string, interface{})  {}
func (NopLogger) DebugObj(string, string, interface{}) {}
func (NopLogger) WarnObj(string, string, interface{})  {}
func (NopLogger) ErrorObj(string, string, interface{}) {}

// Ensure returns log, or a NopLogger when log is nil.
func Ensure(log Logger) Logger {
	if log == nil {
		return NopLogger{}
	}
	return log
}
