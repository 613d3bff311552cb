// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"os"
	"syscall"
)

// AbnormalExit is the code reported for a child that did not exit on
// its own: terminated by a signal, stopped, or not reaped.
const AbnormalExit = -1

// ExitCode returns the child's exit code when it exited normally and
// AbnormalExit otherwise. The signal number of a killed child is
// deliberately not reported. A nil state means the child was never
// reaped.
func ExitCode(state *os.ProcessState) int {
	if state == nil {
		return AbnormalExit
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok {
		if status.Exited() {
			return status.ExitStatus()
		}
		return AbnormalExit
	}
	// No wait status to inspect; ExitCode already reports -1 for a
	// process that did not exit.
	return state.ExitCode()
}

// ExitStatus truncates code to the one-byte exit status a Unix parent
// observes, so AbnormalExit is reported as 255.
func ExitStatus(code int) int {
	return code & 0xff
}
