// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"

	"golang.org/x/term"
)

// newLogger creates the diagnostic logger. When stderr is a terminal it
// uses slog.TextHandler for human-readable output; when stderr is piped
// (the usual case when another program drives pty-exec) it uses
// slog.JSONHandler so the caller can parse it.
func newLogger(stderr io.Writer, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if isTerminal(stderr) {
		handler = slog.NewTextHandler(stderr, options)
	} else {
		handler = slog.NewJSONHandler(stderr, options)
	}
	return slog.New(handler)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(file.Fd()))
}
