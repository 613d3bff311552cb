// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !android

package shellrun

// DefaultShell is the POSIX shell every Unix system provides.
const DefaultShell = "/bin/sh"
