// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package logger provides the configurable logger shared by the imath
// packages.
//
// The root logger uses github.com/rs/zerolog with a console writer. Under
// `go test` it is silenced unless the debug build tag is set.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/imath-go/imath/debug"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return logger
}

// With returns a sublogger tagged with a component name.
func With(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
