// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ident

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/sensorid/regio"
)

// Decoding selects how the identification bytes are rendered.
type Decoding uint8

const (
	// Numeric renders the bytes as one hexadecimal number, e.g. 0x24.
	Numeric Decoding = iota
	// ASCII renders the bytes as characters, e.g. QMC.
	ASCII
)

func (d Decoding) String() string {
	switch d {
	case Numeric:
		return "Numeric"
	case ASCII:
		return "ASCII"
	default:
		return fmt.Sprintf("Decoding(%d)", uint8(d))
	}
}

// OnError selects what a failed read of the identification register shows.
type OnError uint8

const (
	// Sentinel reads through regio.Reader.ReadReg; a failed read is logged by
	// the reader and reported as 0x00. Only valid for 1-byte identifiers.
	Sentinel OnError = iota
	// Explicit reads through regio.Reader.ReadRegs; a failed read is reported
	// as "error".
	Explicit
)

func (o OnError) String() string {
	switch o {
	case Sentinel:
		return "Sentinel"
	case Explicit:
		return "Explicit"
	default:
		return fmt.Sprintf("OnError(%d)", uint8(o))
	}
}

// Descriptor describes how to identify one device.
type Descriptor struct {
	// Name is the label of the report line.
	Name string
	// Addr is the 7-bit I²C address, not shifted.
	Addr uint16

	// Reg is the first identification register and Length the number of
	// consecutive registers to read.
	Reg      byte
	Length   int
	Decoding Decoding
	OnError  OnError

	// Expect is the documented identification value, Length bytes. It is
	// printed next to the value read, never compared.
	Expect []byte
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s{0x%02X, reg 0x%02X, %d byte(s), %s, %s}", d.Name, d.Addr, d.Reg, d.Length, d.Decoding, d.OnError)
}

// format renders b according to the decoding of d.
func (d *Descriptor) format(b []byte) string {
	var s strings.Builder
	switch d.Decoding {
	case ASCII:
		for _, c := range b {
			if c < 0x20 || c > 0x7E {
				c = '.'
			}
			s.WriteByte(c)
		}
	default:
		s.WriteString("0x")
		for _, c := range b {
			fmt.Fprintf(&s, "%02X", c)
		}
	}
	return s.String()
}

// Registry is the ordered list of devices to probe. The order is the report
// order.
type Registry []Descriptor

// Validate checks that every descriptor can be probed.
func (r Registry) Validate() error {
	if len(r) == 0 {
		return errors.New("ident: empty registry")
	}
	seen := make(map[string]bool, len(r))
	for i := range r {
		d := &r[i]
		switch {
		case d.Name == "":
			return fmt.Errorf("ident: descriptor #%d has no name", i)
		case seen[d.Name]:
			return fmt.Errorf("ident: duplicate descriptor %q", d.Name)
		case d.Addr > 0x7F:
			return fmt.Errorf("ident: %s: address 0x%X is not a 7-bit address", d.Name, d.Addr)
		case d.Length < 1 || d.Length > regio.MaxLength:
			return fmt.Errorf("ident: %s: length %d, must be 1..%d", d.Name, d.Length, regio.MaxLength)
		case len(d.Expect) != d.Length:
			return fmt.Errorf("ident: %s: expected value has %d byte(s), want %d", d.Name, len(d.Expect), d.Length)
		case d.Decoding != Numeric && d.Decoding != ASCII:
			return fmt.Errorf("ident: %s: unknown %s", d.Name, d.Decoding)
		case d.OnError != Sentinel && d.OnError != Explicit:
			return fmt.Errorf("ident: %s: unknown %s", d.Name, d.OnError)
		case d.Length > 1 && d.OnError == Sentinel:
			return fmt.Errorf("ident: %s: multi-byte identifiers can't use %s", d.Name, d.OnError)
		}
		seen[d.Name] = true
	}
	return nil
}

// clone returns a deep copy of r.
func (r Registry) clone() Registry {
	out := make(Registry, len(r))
	for i, d := range r {
		d.Expect = append([]byte(nil), d.Expect...)
		out[i] = d
	}
	return out
}

// Addresses and identification registers of the default devices.
const (
	BMI270Addr      uint16 = 0x68
	bmi270RegChipID byte   = 0x00

	QMC5883LAddr      uint16 = 0x1A
	qmc5883lRegChipID byte   = 0x0D // 'Q', 'M', 'C' at 0x0D..0x0F

	MPL3115A2Addr      uint16 = 0x60
	mpl3115a2RegWhoAmI byte   = 0x0C
)

// DefaultRegistry returns the three devices of the sensor board.
//
// The MPL3115A2 uses the Explicit policy so a missing altimeter reads as
// "error" rather than a plausible 0x00.
func DefaultRegistry() Registry {
	return Registry{
		{
			Name:     "BMI270",
			Addr:     BMI270Addr,
			Reg:      bmi270RegChipID,
			Length:   1,
			Decoding: Numeric,
			OnError:  Sentinel,
			Expect:   []byte{0x24},
		},
		{
			Name:     "QMC5883L",
			Addr:     QMC5883LAddr,
			Reg:      qmc5883lRegChipID,
			Length:   3,
			Decoding: ASCII,
			OnError:  Explicit,
			Expect:   []byte("QMC"),
		},
		{
			Name:     "MPL3115A2",
			Addr:     MPL3115A2Addr,
			Reg:      mpl3115a2RegWhoAmI,
			Length:   1,
			Decoding: Numeric,
			OnError:  Explicit,
			Expect:   []byte{0xC4},
		},
	}
}
