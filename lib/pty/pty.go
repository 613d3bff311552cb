// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pty

import (
	"errors"
	"fmt"
	"os"
)

// Pair is an allocated pseudo-terminal. Master is read and written by
// the owning process; Slave is the terminal device the child attaches
// to. Either end is nil once closed.
type Pair struct {
	Master *os.File
	Slave  *os.File
}

// Open allocates a new pseudo-terminal pair. Both ends are open on
// return; the caller owns them and must call Close.
func Open() (*Pair, error) {
	master, slave, err := open()
	if err != nil {
		return nil, err
	}
	return &Pair{Master: master, Slave: slave}, nil
}

// CloseSlave closes the caller's copy of the slave end. Call it once
// the child holds its own descriptors so that the master sees EOF
// (EIO on Linux) when the child's last reference goes away. Calling it
// again is a no-op.
func (p *Pair) CloseSlave() error {
	if p.Slave == nil {
		return nil
	}
	err := p.Slave.Close()
	p.Slave = nil
	if err != nil {
		return fmt.Errorf("close PTY slave: %w", err)
	}
	return nil
}

// Close closes whichever ends are still open. It is safe to call more
// than once; only the first call closes anything.
func (p *Pair) Close() error {
	slaveErr := p.CloseSlave()
	if p.Master == nil {
		return slaveErr
	}
	masterErr := p.Master.Close()
	p.Master = nil
	if masterErr != nil {
		masterErr = fmt.Errorf("close PTY master: %w", masterErr)
	}
	return errors.Join(slaveErr, masterErr)
}
