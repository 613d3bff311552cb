// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pty

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/term"
)

// openPair allocates a PTY or skips the test when the environment has
// no pseudo-terminal support (some containers lack /dev/pts).
func openPair(t *testing.T) *Pair {
	t.Helper()
	pair, err := Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	t.Cleanup(func() { pair.Close() })
	return pair
}

func TestOpenReturnsTerminal(t *testing.T) {
	pair := openPair(t)

	if pair.Master == nil || pair.Slave == nil {
		t.Fatalf("Open returned nil end: master=%v slave=%v", pair.Master, pair.Slave)
	}
	if !term.IsTerminal(int(pair.Slave.Fd())) {
		t.Error("slave end is not a terminal")
	}
}

func TestSlaveWriteReachesMaster(t *testing.T) {
	pair := openPair(t)

	if _, err := pair.Slave.Write([]byte("ping\n")); err != nil {
		t.Fatalf("write slave: %v", err)
	}

	type readResult struct {
		data string
		err  error
	}
	result := make(chan readResult, 1)
	go func() {
		var collected strings.Builder
		buffer := make([]byte, 64)
		for !strings.Contains(collected.String(), "\n") {
			count, err := pair.Master.Read(buffer)
			collected.Write(buffer[:count])
			if err != nil {
				result <- readResult{collected.String(), err}
				return
			}
		}
		result <- readResult{collected.String(), nil}
	}()

	select {
	case got := <-result:
		if got.err != nil {
			t.Fatalf("read master: %v (collected %q)", got.err, got.data)
		}
		// The default line discipline maps NL to CR NL on output.
		if got.data != "ping\r\n" {
			t.Errorf("master read %q, want %q", got.data, "ping\r\n")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out reading from PTY master")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	pair, err := Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}

	if err := pair.CloseSlave(); err != nil {
		t.Fatalf("first CloseSlave: %v", err)
	}
	if pair.Slave != nil {
		t.Error("Slave should be nil after CloseSlave")
	}
	if err := pair.CloseSlave(); err != nil {
		t.Errorf("second CloseSlave: %v", err)
	}
	if err := pair.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if pair.Master != nil {
		t.Error("Master should be nil after Close")
	}
	if err := pair.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
