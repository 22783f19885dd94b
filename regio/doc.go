// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package regio reads 8-bit indexed registers of I²C devices.
//
// A Transport performs a single "read N bytes starting at register R from the
// device at 7-bit address A" transaction bounded by a timeout. Bus adapts any
// bus with a combined write-then-read Tx, a periph.io i2c.Bus or a TinyGo
// drivers.I2C, into a Transport.
//
// Reader sits on top of a Transport. ReadReg never fails: a failed 1-byte
// read is reported to the diagnostic writer and reads as 0. ReadRegs returns
// the failure to the caller.
package regio
