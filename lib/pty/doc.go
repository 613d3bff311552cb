// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pty allocates pseudo-terminal pairs for running a child
// process attached to a terminal.
//
// [Open] returns a [Pair]: the master end stays with the caller and the
// slave end is handed to the child as its standard streams. After the
// child has started the caller must call [Pair.CloseSlave], otherwise
// reads from the master never observe the terminal closing when the
// child exits.
//
// On Linux the pair is allocated directly through /dev/ptmx with the
// TIOCGPTN and TIOCSPTLCK ioctls. Other Unix systems go through
// github.com/creack/pty, which knows each platform's allocation dance.
package pty
