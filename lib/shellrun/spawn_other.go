// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package shellrun

import (
	"errors"
	"io/fs"
	"os/exec"
)

// No controlling-terminal setup exists here; pty.Open already fails
// with an unsupported error before a child is started.
func attachTerminal(child *exec.Cmd) {}

func isExecFailure(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

func isTerminalClosed(err error) bool { return false }
