// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process translates child termination into process exit codes.
//
// A child that exited normally contributes its own exit code. Anything
// else (killed by a signal, stopped, or a wait that never produced a
// status) maps to [AbnormalExit]. [ExitStatus] folds a code into the
// single byte a Unix parent actually observes, so AbnormalExit becomes
// 255 at the process boundary.
//
// The package has no Bureau-internal dependencies.
package process
