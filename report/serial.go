// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// SerialOpts holds the UART settings of a serial sink.
type SerialOpts struct {
	// Port is the device path, e.g. /dev/ttyAMA0 or COM3. Required.
	Port     string
	BaudRate int
	DataBits int
	StopBits int
	// Parity is "N", "E" or "O".
	Parity string
	// Timeout bounds reads on the port. Writes are not affected.
	Timeout time.Duration
}

// DefaultSerialOpts is 115200 baud 8N1.
var DefaultSerialOpts = SerialOpts{
	BaudRate: 115200,
	DataBits: 8,
	StopBits: 1,
	Parity:   "N",
	Timeout:  time.Second,
}

// OpenSerial opens a serial port as a sink. Zero fields of opts take the
// value from DefaultSerialOpts.
func OpenSerial(opts *SerialOpts) (io.WriteCloser, error) {
	if opts == nil || opts.Port == "" {
		return nil, errors.New("report: serial port required")
	}
	c := serialConfig(opts)
	p, err := serial.Open(c)
	if err != nil {
		return nil, fmt.Errorf("report: can't open %s: %w", opts.Port, err)
	}
	return p, nil
}

func serialConfig(opts *SerialOpts) *serial.Config {
	c := &serial.Config{
		Address:  opts.Port,
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		StopBits: opts.StopBits,
		Parity:   opts.Parity,
		Timeout:  opts.Timeout,
	}
	if c.BaudRate == 0 {
		c.BaudRate = DefaultSerialOpts.BaudRate
	}
	if c.DataBits == 0 {
		c.DataBits = DefaultSerialOpts.DataBits
	}
	if c.StopBits == 0 {
		c.StopBits = DefaultSerialOpts.StopBits
	}
	if c.Parity == "" {
		c.Parity = DefaultSerialOpts.Parity
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultSerialOpts.Timeout
	}
	return c
}
