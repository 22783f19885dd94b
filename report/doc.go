// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package report holds the byte sinks identification reports are written to.
//
// A sink is a plain io.Writer. Writes block until the data is handed to the
// underlying transport; a short write is not retried.
package report
