/*
Copyright 2024 Alexandre Mahdhaoui

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging configures the process-wide loggers. slog is the logging API used across the
// module; its records are handled by a zap logger exposed as a logr.Logger.
package logging

import (
	"log/slog"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger behavior.
type Options struct {
	// Development enables development mode logging (console encoding, stack traces on warnings).
	Development bool

	// Level sets the minimum log level. Defaults to slog.LevelInfo.
	Level slog.Level
}

// DefaultOptions returns the default logging options.
func DefaultOptions() Options {
	return Options{
		Development: false,
		Level:       slog.LevelInfo,
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog.Level. An empty string is
// slog.LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// Setup builds the zap logger, wraps it in a logr.Logger and makes it the handler of the
// default slog logger. It must be called early in main() before anything logs.
func Setup(opts Options) (logr.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(zapLevel(opts.Level))

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}

	logger := zapr.NewLoggerWithOptions(zl, zapr.LogInfoLevel("v"))
	slog.SetDefault(slog.New(logr.ToSlogHandler(logger)))

	return logger, nil
}

// SetupDefault sets up logging with default options.
func SetupDefault() (logr.Logger, error) {
	return Setup(DefaultOptions())
}

// zapLevel converts a slog level. logr.ToSlogHandler turns slog levels below Info into logr
// V-levels (Debug is V(4)) and zapr logs V(n) at zap level -n, so those levels are kept as is.
func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	case level < -127:
		return zapcore.Level(-127)
	default:
		return zapcore.Level(level)
	}
}
