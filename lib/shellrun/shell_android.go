// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellrun

// DefaultShell is the system shell on Android, which has no /bin.
const DefaultShell = "/system/bin/sh"
