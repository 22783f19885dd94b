// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package regio

import "fmt"

// TimeoutError is returned when a transaction did not complete in time.
type TimeoutError struct {
	Addr uint16
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("regio: transaction with device 0x%02X timed out", e.Addr)
}

// BusyError is returned when a previously timed out transaction still holds
// the bus.
type BusyError struct{}

func (e *BusyError) Error() string {
	return "regio: bus is busy with an abandoned transaction"
}

// AddressError is returned for addresses that do not fit in 7 bits.
type AddressError struct {
	Addr uint16
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("regio: invalid 7-bit address 0x%X", e.Addr)
}

// LengthError is returned when a read length is outside 1..MaxLength.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("regio: invalid read length %d, must be 1..%d", e.Len, MaxLength)
}

// ReadError wraps a failed register read.
type ReadError struct {
	Addr uint16
	Reg  byte
	Len  int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("regio: reading %d byte(s) at register 0x%02X from device 0x%02X: %v", e.Len, e.Reg, e.Addr, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
