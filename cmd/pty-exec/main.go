// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pty-exec/lib/process"
	"github.com/bureau-foundation/pty-exec/lib/shellrun"
)

// exitUsage is the exit code for a missing command or unparseable flags.
const exitUsage = 1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the command and returns the process exit
// status. Relayed output goes to stdout; usage text, log records and
// errors other than a failed shell exec go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	options, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "pty-exec: %v\n\n", err)
		printUsage(stderr)
		return exitCodeOf(err)
	}
	if options.help {
		printUsage(stderr)
		return 0
	}

	runner := &shellrun.Runner{
		Logger: newLogger(stderr, options.logLevel),
	}
	return execute(runner, options.command, stdout, stderr)
}

// execute runs command with runner and reports a failed start. A shell
// that could not be executed is reported on stdout, terminal-style,
// where the message would appear had the shell failed inside the
// terminal; every other failure goes to stderr.
func execute(runner *shellrun.Runner, command string, stdout, stderr io.Writer) int {
	exitCode, err := runner.Run(command, stdout)
	if err != nil {
		var execErr *shellrun.ExecError
		if errors.As(err, &execErr) {
			fmt.Fprintf(stdout, "%v\r\n", err)
		} else {
			fmt.Fprintf(stderr, "pty-exec: %v\n", err)
		}
		exitCode = exitCodeOf(err)
	}
	return process.ExitStatus(exitCode)
}

// usageError is a command-line mistake. It exits with exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
func (e *usageError) ExitCode() int { return exitUsage }

func usagef(format string, args ...any) *usageError {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exitCodeOf returns the code carried by err, or 1 when err does not
// carry one.
func exitCodeOf(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

type options struct {
	command  string
	logLevel slog.Level
	help     bool
}

// parseArgs accepts:
//
//	pty-exec <command>
//	pty-exec [--log-level LEVEL] [-h|--help] [--] <command> [ignored...]
//
// A single argument is always the command string, whatever it looks
// like. Flags are only parsed when more than one argument is given, and
// parsing stops at the first positional. Positionals after the first
// are ignored.
func parseArgs(args []string) (options, error) {
	var result options
	var levelName string

	if len(args) == 1 {
		return options{command: args[0], logLevel: slog.LevelWarn}, nil
	}

	flagSet := pflag.NewFlagSet("pty-exec", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&levelName, "log-level", "warn", "log level: debug, info, warn, or error")
	flagSet.BoolVarP(&result.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return options{}, usagef("%v", err)
	}
	if result.help {
		return result, nil
	}

	if err := result.logLevel.UnmarshalText([]byte(levelName)); err != nil {
		return options{}, usagef("invalid --log-level %q", levelName)
	}

	positional := flagSet.Args()
	if len(positional) == 0 {
		return options{}, usagef("command string argument required")
	}
	result.command = positional[0]
	return result, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: pty-exec "<shell command>"
       pty-exec [flags] [--] "<shell command>"

Runs the command with %s -c inside a pseudo-terminal, copies the
terminal output to stdout and exits with the command's exit code.

A lone argument is always the command, even if it starts with a dash.

Flags (only read when more than one argument is given):
  --log-level LEVEL   log level for stderr diagnostics (default: warn)
  -h, --help          show this help
`, shellrun.DefaultShell)
}
