// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/mattn/go-colorable"
)

// NewConsole returns a sink writing to stdout.
//
// Lines are terminated with "\r\n" like on a serial terminal; the colorable
// wrapper keeps that output sane on Windows consoles.
func NewConsole() io.Writer {
	return colorable.NewColorableStdout()
}
