// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sensorid is a container for the sensor identification packages.
//
// regio reads device registers over I²C, ident probes a fixed set of sensors
// for their identity and report holds the sinks the results are written to.
package sensorid
