// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strings"
	"sync"
)

// Lines is an in-memory sink that collects complete lines.
//
// Line terminators, "\n" or "\r\n", are stripped. A trailing partial line is
// kept until its terminator arrives. OnLine, when set, is called for every
// completed line from inside Write.
type Lines struct {
	OnLine func(line string)

	mu    sync.Mutex
	lines []string
	buf   bytes.Buffer
}

// Write implements io.Writer.
func (l *Lines) Write(p []byte) (int, error) {
	l.mu.Lock()
	_, _ = l.buf.Write(p)
	var done []string
	for {
		i := bytes.IndexByte(l.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSuffix(string(l.buf.Next(i+1)[:i]), "\r")
		l.lines = append(l.lines, line)
		done = append(done, line)
	}
	f := l.OnLine
	l.mu.Unlock()
	if f != nil {
		for _, line := range done {
			f(line)
		}
	}
	return len(p), nil
}

// Lines returns a copy of the lines collected so far.
func (l *Lines) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Reset discards everything collected.
func (l *Lines) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.buf.Reset()
}
