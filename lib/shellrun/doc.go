// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shellrun runs a shell command inside a pseudo-terminal and
// relays everything the command writes to the terminal into an
// io.Writer.
//
// A [Runner] performs one run in three strictly sequential phases:
//
//   - spawn: allocate a PTY pair and start the shell as
//     "sh -c <command>" with the slave as its stdin, stdout, stderr and
//     controlling terminal
//   - relay: copy the master into the writer until the terminal closes
//   - reap: wait for the shell and translate its termination status
//
// The child sees a real terminal, so programs that change behavior on
// isatty (color, line buffering) behave as they would interactively,
// and the default line discipline applies (a written "\n" arrives as
// "\r\n"). Stdout and stderr share the terminal and arrive interleaved
// in the order written.
//
// Exit codes follow the shell convention: the child's own code when it
// exited, [process.AbnormalExit] when it was signalled, [SpawnFailure]
// when no child could be created, and [ExecFailure] when the shell
// image itself could not be executed. ExecFailure shares 127 with
// commands that legitimately exit 127; callers cannot tell them apart
// from the code alone.
//
// There is no input relay, no window-size handling, no signal
// forwarding and no timeout. The relay blocks for as long as anything
// holds the slave open.
package shellrun
