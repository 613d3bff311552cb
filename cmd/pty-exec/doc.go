// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// pty-exec runs a shell command inside a pseudo-terminal and copies
// everything the command writes to the terminal onto its own stdout,
// then exits with the command's exit code.
//
// Usage:
//
//	pty-exec "<shell command>"
//	pty-exec [--log-level LEVEL] [--] "<shell command>"
//
// The command string is handed verbatim to "/bin/sh -c" (on Android,
// "/system/bin/sh -c"). A lone argument is always the command string,
// even "-h" or "--". Flags are only recognized when more than one
// argument is given, and only before the command.
//
// The command sees a terminal on stdin, stdout and stderr, so programs
// that only produce colored or unbuffered output on a TTY do so here,
// and both streams arrive on pty-exec's stdout in the order written.
// Nothing is forwarded to the command's stdin.
//
// Exit status:
//
//	0-255  the command's own exit code, unchanged, except as below
//	1      also: missing command or bad flags
//	2      also: the pseudo-terminal or process could not be created
//	127    also: the shell could not be executed (message on stdout)
//	255    also: the command was killed by a signal
//
// Diagnostics go to stderr. Logging defaults to warn level, so a
// normal run writes nothing to stderr; --log-level debug reports the
// spawn, the relay and the exit status.
package main
