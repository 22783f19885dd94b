// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ident identifies the sensors on an I²C bus by their ID registers.
//
// A Registry lists the devices to probe: where the identification register
// is, how many bytes it spans and how to render it. A Prober walks the
// registry once per pass and writes one human readable line per device to a
// sink:
//
//	BMI270 ID: 0x24 (expect 0x24)
//	QMC5883L ID: QMC (expect QMC)
//	MPL3115A2 ID: 0xC4 (expect 0xC4)
//
// A pass never stops on a failed read. Devices with the Sentinel policy
// report 0x00, the others report "error". Whether the value matches the
// expectation is left to the reader of the report.
//
// The default registry covers the Bosch BMI270 IMU, the QST QMC5883L
// magnetometer and the NXP MPL3115A2 altimeter.
package ident
