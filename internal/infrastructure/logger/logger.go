package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level, encoding and destination of the process logger.
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // console or json
	Output     string // stdout, stderr or file
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	mu    sync.RWMutex
	base  = zap.NewNop()
	sugar = base.Sugar()
)

func init() {
	l, err := New(Options{Level: "info", Format: "console", Output: "stdout"})
	if err == nil {
		replace(l)
	}
}

// New builds a zap logger from opts without installing it.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q", opts.Level)
		}
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	switch opts.Format {
	case "json":
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var ws zapcore.WriteSyncer
	switch opts.Output {
	case "", "stdout":
		ws = zapcore.Lock(os.Stdout)
	case "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "file":
		if opts.File == "" {
			return nil, fmt.Errorf("log output is file but no log file is set")
		}
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		})
	default:
		return nil, fmt.Errorf("invalid log output %q", opts.Output)
	}

	core := zapcore.NewCore(enc, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Setup builds a logger from opts and installs it as the process logger.
func Setup(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	replace(l)
	return nil
}

// Use installs l as the process logger. Tests use it with zaptest/observer.
func Use(l *zap.Logger) {
	replace(l)
}

func replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	sugar = l.Sugar()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// With returns a child logger carrying the given key/value pairs.
func With(keysAndValues ...any) *zap.SugaredLogger {
	return current().WithOptions(zap.AddCallerSkip(-1)).With(keysAndValues...)
}

func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

func Debugf(template string, args ...any) { current().Debugf(template, args...) }
func Infof(template string, args ...any)  { current().Infof(template, args...) }
func Warnf(template string, args ...any)  { current().Warnf(template, args...) }
func Errorf(template string, args ...any) { current().Errorf(template, args...) }
