// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellrun

import (
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/bureau-foundation/pty-exec/lib/process"
	"github.com/bureau-foundation/pty-exec/lib/pty"
)

// DefaultBufferSize is the relay read size used when Runner.BufferSize
// is not positive.
const DefaultBufferSize = 1024

// Runner runs shell commands in a pseudo-terminal. The zero value is
// ready to use. A Runner holds no per-run state, so one value can serve
// any number of sequential or concurrent runs.
type Runner struct {
	// Shell is the path of the shell binary. Empty means DefaultShell.
	// The shell receives "-c" and the command string, nothing else.
	Shell string

	// BufferSize is the size of each read from the terminal master.
	// Zero or negative means DefaultBufferSize.
	BufferSize int

	// Logger receives spawn, relay and reap events. Nil discards them.
	Logger *slog.Logger
}

// Run executes command with the shell inside a new pseudo-terminal,
// copies all terminal output to stdout until the terminal closes, then
// waits for the shell and returns its exit code.
//
// The returned error is non-nil only when no shell ran: a *SpawnError
// (exit code SpawnFailure) or an *ExecError (exit code ExecFailure).
// Once the shell has started, Run always returns a nil error and the
// child's exit code, or process.AbnormalExit if it did not exit on its
// own. Read errors on the terminal end the relay without being
// reported; a failing stdout is logged and the remaining output is
// discarded so the child can still finish.
func (r *Runner) Run(command string, stdout io.Writer) (int, error) {
	logger := r.logger()
	shell := r.shell()

	pair, err := pty.Open()
	if err != nil {
		return SpawnFailure, &SpawnError{Op: "allocate terminal", Err: err}
	}
	defer pair.Close()

	child := exec.Command(shell)
	child.Args = []string{filepath.Base(shell), "-c", command}
	child.Stdin = pair.Slave
	child.Stdout = pair.Slave
	child.Stderr = pair.Slave
	attachTerminal(child)

	if err := child.Start(); err != nil {
		if isExecFailure(err) {
			return ExecFailure, &ExecError{Shell: shell, Err: err}
		}
		return SpawnFailure, &SpawnError{Op: "start shell", Err: err}
	}
	logger.Debug("shell started", "pid", child.Process.Pid, "shell", shell)

	// Whatever happens during the relay, the child is reaped before
	// Run returns.
	reaped := false
	defer func() {
		if !reaped {
			_ = child.Process.Kill()
			_ = child.Wait()
		}
	}()

	// The child holds its own copies of the slave on fd 0/1/2.
	if err := pair.CloseSlave(); err != nil {
		logger.Debug("closing parent slave descriptor", "error", err)
	}

	relayed := r.relay(pair.Master, stdout, logger)

	if err := pair.Close(); err != nil {
		logger.Debug("closing terminal", "error", err)
	}

	waitErr := child.Wait()
	reaped = true
	if waitErr != nil && child.ProcessState == nil {
		logger.Warn("waiting for shell", "pid", child.Process.Pid, "error", waitErr)
	}

	exitCode := process.ExitCode(child.ProcessState)
	logger.Debug("shell exited",
		"pid", child.Process.Pid,
		"exit_code", exitCode,
		"state", child.ProcessState.String(),
		"bytes_relayed", relayed,
	)
	return exitCode, nil
}

// relay copies master to stdout one read at a time until the terminal
// closes or a read fails, and returns the number of bytes written to
// stdout. After the first write failure further output is read and
// dropped, keeping the terminal drained.
func (r *Runner) relay(master io.Reader, stdout io.Writer, logger *slog.Logger) int64 {
	readBuffer := make([]byte, r.bufferSize())
	var relayed int64
	var writeErr error
	for {
		bytesRead, readErr := master.Read(readBuffer)
		if bytesRead > 0 && writeErr == nil {
			written, err := stdout.Write(readBuffer[:bytesRead])
			relayed += int64(written)
			if err == nil && written < bytesRead {
				err = io.ErrShortWrite
			}
			if err != nil {
				writeErr = err
				logger.Warn("writing relayed output, discarding the rest", "error", err)
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) && !isTerminalClosed(readErr) {
				logger.Debug("terminal read ended relay", "error", readErr)
			}
			return relayed
		}
		if bytesRead == 0 {
			return relayed
		}
	}
}

func (r *Runner) shell() string {
	if r.Shell == "" {
		return DefaultShell
	}
	return r.Shell
}

func (r *Runner) bufferSize() int {
	if r.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return r.BufferSize
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
