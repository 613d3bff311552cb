// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellrun

import "fmt"

const (
	// SpawnFailure is the exit code for a run that never produced a
	// child: the terminal could not be allocated or the process could
	// not be created.
	SpawnFailure = 2

	// ExecFailure is the exit code for a shell image that could not be
	// executed. It matches the shell's own "command not found" code.
	ExecFailure = 127
)

// SpawnError reports a failure to allocate the terminal or create the
// child process.
type SpawnError struct {
	// Op names the step that failed, e.g. "allocate terminal".
	Op  string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitCode returns SpawnFailure.
func (e *SpawnError) ExitCode() int { return SpawnFailure }

// ExecError reports that the shell binary could not be executed
// (missing, not executable, or not a valid image).
type ExecError struct {
	Shell string
	Err   error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("exec: %v", e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// ExitCode returns ExecFailure.
func (e *ExecError) ExitCode() int { return ExecFailure }
