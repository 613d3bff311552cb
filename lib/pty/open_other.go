// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package pty

import (
	"fmt"
	"os"

	creackpty "github.com/creack/pty"
)

// open defers to creack/pty, which implements posix_openpt and the BSD
// variants. On platforms without pseudo-terminals it returns an error
// wrapping creackpty.ErrUnsupported.
func open() (master, slave *os.File, err error) {
	master, slave, err = creackpty.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open PTY: %w", err)
	}
	return master, slave, nil
}
