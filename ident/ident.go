// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ident

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/GermanBionicSystems/sensorid/regio"
)

// State is the state of a Prober.
type State int32

const (
	// Idle is the state between passes.
	Idle State = iota
	// Probing is the state while a pass runs.
	Probing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Probing:
		return "Probing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Opts holds the configuration options for a Prober.
type Opts struct {
	// Registry is the list of devices to probe. Default is DefaultRegistry().
	Registry Registry
	// Interval is the delay between the end of a pass and the start of the
	// next one. Default is 2s.
	Interval time.Duration
	// Banner is the line Banner() writes. Default is "Sensor ID Reader Started".
	Banner string
	// Debug receives a trace of the passes. Default is a no-op.
	Debug regio.DebugF
}

// DefaultOpts holds the default configuration options for a Prober.
var DefaultOpts = Opts{
	Interval: 2 * time.Second,
	Banner:   "Sensor ID Reader Started",
}

// Result is the outcome of probing one device.
type Result struct {
	Descriptor Descriptor
	// Value holds Descriptor.Length bytes, or nil when Err is set. A failed
	// Sentinel read has Value 0x00 and no Err.
	Value []byte
	Err   error
}

// Prober identifies the devices of a Registry.
//
// A Prober owns its Reader and is not safe for concurrent use; passes never
// overlap.
type Prober struct {
	r     *regio.Reader
	sink  io.Writer
	reg   Registry
	opts  Opts
	debug regio.DebugF
	state atomic.Int32
	pass  uint64
}

// New returns a Prober reading through r and reporting to sink. The Opts can
// be nil. The registry is copied; later changes to opts.Registry have no
// effect.
func New(r *regio.Reader, sink io.Writer, opts *Opts) (*Prober, error) {
	if r == nil {
		return nil, errors.New("ident: reader required")
	}
	if sink == nil {
		return nil, errors.New("ident: sink required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	p := &Prober{r: r, sink: sink, opts: *opts, debug: opts.Debug}
	if p.opts.Registry == nil {
		p.opts.Registry = DefaultRegistry()
	}
	if err := p.opts.Registry.Validate(); err != nil {
		return nil, err
	}
	p.reg = p.opts.Registry.clone()
	p.opts.Registry = nil
	if p.opts.Interval <= 0 {
		p.opts.Interval = DefaultOpts.Interval
	}
	if p.opts.Banner == "" {
		p.opts.Banner = DefaultOpts.Banner
	}
	if p.debug == nil {
		p.debug = func(string, ...interface{}) {}
	}
	return p, nil
}

func (p *Prober) String() string {
	return fmt.Sprintf("ident.Prober{%d devices, every %s}", len(p.reg), p.opts.Interval)
}

// Registry returns a copy of the devices probed, in report order.
func (p *Prober) Registry() Registry {
	return p.reg.clone()
}

// State returns whether a pass is running.
func (p *Prober) State() State {
	return State(p.state.Load())
}

// Banner writes the startup line to the sink.
func (p *Prober) Banner() error {
	_, err := io.WriteString(p.sink, p.opts.Banner+"\r\n")
	return err
}

// Pass probes every device once, in registry order, and writes one report
// line per device. It never stops early: a failed read still produces its
// line.
func (p *Prober) Pass() []Result {
	p.state.Store(int32(Probing))
	defer p.state.Store(int32(Idle))
	p.pass++
	p.debug("pass %d", p.pass)

	results := make([]Result, 0, len(p.reg))
	for i := range p.reg {
		d := &p.reg[i]
		res := p.probe(d)
		if res.Err != nil {
			p.debug("%s: %v", d.Name, res.Err)
			_, _ = fmt.Fprintf(p.sink, "Error reading %s ID\r\n", d.Name)
		}
		_, _ = io.WriteString(p.sink, line(d, res.Value, res.Err))
		results = append(results, res)
	}
	return results
}

// Run runs passes until ctx is done, sleeping Opts.Interval after each pass.
// With a context that is never canceled it does not return.
func (p *Prober) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Pass()
		t := time.NewTimer(p.opts.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (p *Prober) probe(d *Descriptor) Result {
	res := Result{Descriptor: *d}
	res.Descriptor.Expect = append([]byte(nil), d.Expect...)
	if d.Length == 1 && d.OnError == Sentinel {
		res.Value = []byte{p.r.ReadReg(d.Addr, d.Reg)}
		return res
	}
	res.Value, res.Err = p.r.ReadRegs(d.Addr, d.Reg, d.Length)
	return res
}

// line formats the report line of one device.
func line(d *Descriptor, v []byte, err error) string {
	value := "error"
	if err == nil {
		value = d.format(v)
	}
	return fmt.Sprintf("%s ID: %s (expect %s)\r\n", d.Name, value, d.format(d.Expect))
}

var _ fmt.Stringer = &Prober{}
