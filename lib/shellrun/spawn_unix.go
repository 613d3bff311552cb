// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package shellrun

import (
	"errors"
	"io/fs"
	"os/exec"
	"syscall"
)

// attachTerminal makes the child a session leader whose controlling
// terminal is its stdin, the PTY slave.
func attachTerminal(child *exec.Cmd) {
	child.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0, // fd 0 in child = slave PTY
	}
}

// isExecFailure reports whether a Start error means the shell image
// could not be executed, as opposed to the fork itself failing.
func isExecFailure(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.EACCES) ||
		errors.Is(err, syscall.ENOEXEC) ||
		errors.Is(err, syscall.ENOTDIR)
}

// isTerminalClosed reports whether a master read error is the normal
// end of a session. Linux returns EIO once the last slave descriptor
// closes; other systems return EOF.
func isTerminalClosed(err error) bool {
	return errors.Is(err, syscall.EIO)
}
