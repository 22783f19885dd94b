// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package regio

import (
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

// Transport performs register-indexed reads.
//
// ReadRegister reads len(r) bytes starting at register reg of the device at
// the 7-bit address addr. It blocks until the transaction completes or timeout
// elapses. A timeout <= 0 waits without bound.
type Transport interface {
	ReadRegister(addr uint16, reg byte, r []byte, timeout time.Duration) error
}

// Bus is a Transport on top of a bus exposing a combined write-then-read
// transaction.
//
// Both periph.io/x/conn/v3/i2c.Bus and tinygo.org/x/drivers.I2C have that
// shape, so the same adapter serves a host with /dev/i2c-* and a
// microcontroller.
//
// Bus is not safe for concurrent use. It is meant to be owned by a single
// Reader.
type Bus struct {
	b drivers.I2C
	// pending is non-nil while a timed out transaction is still on the bus.
	pending chan error
}

// NewBus returns a Transport using b.
func NewBus(b drivers.I2C) *Bus {
	return &Bus{b: b}
}

func (b *Bus) String() string {
	if s, ok := b.b.(fmt.Stringer); ok {
		return s.String()
	}
	return "regio.Bus"
}

// ReadRegister implements Transport.
//
// The transaction runs into a private buffer so an abandoned transaction never
// writes into r after ReadRegister returned.
func (b *Bus) ReadRegister(addr uint16, reg byte, r []byte, timeout time.Duration) error {
	if addr > 0x7F {
		return &AddressError{Addr: addr}
	}
	var t <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		t = timer.C
	}
	if b.pending != nil {
		select {
		case <-b.pending:
			b.pending = nil
		case <-t:
			return &BusyError{}
		}
	}

	buf := make([]byte, len(r))
	done := make(chan error, 1)
	go func() {
		done <- b.b.Tx(addr, []byte{reg}, buf)
	}()
	select {
	case err := <-done:
		if err != nil {
			return err
		}
		copy(r, buf)
		return nil
	case <-t:
		b.pending = done
		return &TimeoutError{Addr: addr}
	}
}

var _ Transport = &Bus{}
var _ fmt.Stringer = &Bus{}
