// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package regio

import (
	"fmt"
	"io"
	"time"
)

// MaxLength is the largest number of bytes a single ReadRegs may request.
const MaxLength = 3

// DebugF is the debug function type.
type DebugF func(string, ...interface{})

// Opts holds the configuration options for a Reader.
type Opts struct {
	// Timeout bounds every transaction. Default is 100ms.
	Timeout time.Duration
	// Debug receives a trace of every transaction. Default is a no-op.
	Debug DebugF
}

// DefaultOpts holds the default configuration options for a Reader.
var DefaultOpts = Opts{
	Timeout: 100 * time.Millisecond,
}

// Reader issues register reads over a Transport.
type Reader struct {
	t     Transport
	diag  io.Writer
	opts  Opts
	debug DebugF
}

// New returns a Reader using t. Failed ReadReg calls are reported to diag,
// which is usually the same sink the identification report goes to. diag may
// be nil. The Opts can be nil.
func New(t Transport, diag io.Writer, opts *Opts) *Reader {
	if opts == nil {
		opts = &DefaultOpts
	}
	r := &Reader{t: t, diag: diag, opts: *opts, debug: opts.Debug}
	if r.opts.Timeout <= 0 {
		r.opts.Timeout = DefaultOpts.Timeout
	}
	if r.debug == nil {
		r.debug = noop
	}
	if r.diag == nil {
		r.diag = io.Discard
	}
	return r
}

func (r *Reader) String() string {
	return fmt.Sprintf("regio.Reader{%v, %s}", r.t, r.opts.Timeout)
}

// ReadReg reads the register reg of the device at addr.
//
// A failed read is not returned. It is written to the diagnostic writer and
// the value 0 is returned instead, so a missing device does not keep the
// caller from reading the others.
func (r *Reader) ReadReg(addr uint16, reg byte) byte {
	var b [1]byte
	r.debug("read register %#02x of %#02x", reg, addr)
	if err := r.t.ReadRegister(addr, reg, b[:], r.opts.Timeout); err != nil {
		r.debug("read register %#02x of %#02x: %v", reg, addr, err)
		_, _ = fmt.Fprintf(r.diag, "Error reading register 0x%02X from device 0x%02X\r\n", reg, addr)
		return 0
	}
	r.debug("register %#02x of %#02x = %#02x", reg, addr, b[0])
	return b[0]
}

// ReadRegs reads n consecutive registers of the device at addr starting at
// reg. Unlike ReadReg the failure is returned to the caller, nothing is
// written to the diagnostic writer.
func (r *Reader) ReadRegs(addr uint16, reg byte, n int) ([]byte, error) {
	if n < 1 || n > MaxLength {
		return nil, &LengthError{Len: n}
	}
	r.debug("read %d register(s) from %#02x of %#02x", n, reg, addr)
	b := make([]byte, n)
	if err := r.t.ReadRegister(addr, reg, b, r.opts.Timeout); err != nil {
		return nil, &ReadError{Addr: addr, Reg: reg, Len: n, Err: err}
	}
	r.debug("registers from %#02x of %#02x = % x", reg, addr, b)
	return b, nil
}

func noop(string, ...interface{}) {}

var _ fmt.Stringer = &Reader{}
