// Package log is a field logger over zap. Every Logger shares one process wide
// core, so Configure and SetDebug affect loggers created earlier.
package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

// Logger is an immutable set of fields. WithField returns a copy.
type Logger struct {
	fields []interface{}
}

type Options struct {
	// Level is one of debug, info, warn, error. Empty keeps the current level.
	Level string
	// Console writes human readable colored lines instead of json.
	Console bool
}

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar atomic.Value
)

func init() {
	_ = Configure(Options{})
}

// Configure rebuilds the process logger. Output goes to stderr.
func Configure(o Options) error {
	if o.Level != "" {
		if err := level.UnmarshalText([]byte(o.Level)); err != nil {
			return err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if o.Console {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	use(core)
	return nil
}

func use(core zapcore.Core) {
	sugar.Store(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar())
}

// SetDebug switches between debug and info level.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Sync flushes buffered entries, call it before the process exits.
func Sync() {
	_ = current().Sync()
}

func current() *zap.SugaredLogger {
	return sugar.Load().(*zap.SugaredLogger)
}

// Log returns a logger without fields.
func Log() Logger {
	return Logger{}
}

func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, len(l.fields), len(l.fields)+2)
	copy(fields, l.fields)
	return Logger{fields: append(fields, key, value)}
}

func (l Logger) WithFields(kvs Fields) Logger {
	fields := make([]interface{}, len(l.fields), len(l.fields)+2*len(kvs))
	copy(fields, l.fields)
	for k, v := range kvs {
		fields = append(fields, k, v)
	}
	return Logger{fields: fields}
}

func (l Logger) Debug(args ...interface{}) { current().With(l.fields...).Debug(args...) }
func (l Logger) Info(args ...interface{})  { current().With(l.fields...).Info(args...) }
func (l Logger) Warn(args ...interface{})  { current().With(l.fields...).Warn(args...) }
func (l Logger) Error(args ...interface{}) { current().With(l.fields...).Error(args...) }

// Panic logs then panics with the message.
func (l Logger) Panic(args ...interface{}) { current().With(l.fields...).Panic(args...) }
