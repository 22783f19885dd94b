// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ident

import (
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	if err := reg.Validate(); err != nil {
		t.Fatal(err)
	}
	expected := []string{"BMI270", "QMC5883L", "MPL3115A2"}
	if len(reg) != len(expected) {
		t.Fatalf("%d devices", len(reg))
	}
	for i, d := range reg {
		if d.Name != expected[i] {
			t.Errorf("#%d is %s, expected %s", i, d.Name, expected[i])
		}
		t.Log(d.String())
	}
	// Each call returns an independent copy.
	reg[1].Expect[0] = 'X'
	if DefaultRegistry()[1].Expect[0] != 'Q' {
		t.Error("DefaultRegistry shares its backing arrays")
	}
}

func TestRegistryValidate(t *testing.T) {
	good := Descriptor{Name: "dev", Addr: 0x40, Reg: 0x0F, Length: 1, Expect: []byte{0x01}}
	tests := []struct {
		name   string
		modify func(d *Descriptor)
		err    string
	}{
		{"no name", func(d *Descriptor) { d.Name = "" }, "no name"},
		{"shifted address", func(d *Descriptor) { d.Addr = 0x40 << 1 }, "7-bit"},
		{"zero length", func(d *Descriptor) { d.Length = 0; d.Expect = nil }, "length 0"},
		{"too long", func(d *Descriptor) { d.Length = 4; d.Expect = []byte("ABCD") }, "length 4"},
		{"expect mismatch", func(d *Descriptor) { d.Expect = []byte{1, 2} }, "expected value"},
		{"decoding", func(d *Descriptor) { d.Decoding = 7 }, "Decoding(7)"},
		{"policy", func(d *Descriptor) { d.OnError = 9 }, "OnError(9)"},
		{"multi-byte sentinel", func(d *Descriptor) { d.Length = 2; d.Expect = []byte{1, 2} }, "multi-byte"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := good
			test.modify(&d)
			err := Registry{d}.Validate()
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Errorf("Validate() = %v, expected error containing %q", err, test.err)
			}
		})
	}

	if err := (Registry{good, good}).Validate(); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Validate() = %v, expected duplicate error", err)
	}
	if err := (Registry{}).Validate(); err == nil {
		t.Error("empty registry accepted")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d        Descriptor
		v        []byte
		expected string
	}{
		{Descriptor{Decoding: Numeric}, []byte{0x24}, "0x24"},
		{Descriptor{Decoding: Numeric}, []byte{0x00}, "0x00"},
		{Descriptor{Decoding: Numeric}, []byte{0xC4}, "0xC4"},
		{Descriptor{Decoding: Numeric}, []byte{0x12, 0xAB}, "0x12AB"},
		{Descriptor{Decoding: ASCII}, []byte{0x51, 0x4D, 0x43}, "QMC"},
		{Descriptor{Decoding: ASCII}, []byte{'\n', 'M', 0x80}, ".M."},
	}
	for _, test := range tests {
		if s := test.d.format(test.v); s != test.expected {
			t.Errorf("format(% x) = %q, expected %q", test.v, s, test.expected)
		}
	}
}

func TestLine(t *testing.T) {
	reg := DefaultRegistry()
	if s := line(&reg[0], []byte{0x24}, nil); s != "BMI270 ID: 0x24 (expect 0x24)\r\n" {
		t.Errorf("unexpected line %q", s)
	}
	if s := line(&reg[1], []byte("QMC"), nil); s != "QMC5883L ID: QMC (expect QMC)\r\n" {
		t.Errorf("unexpected line %q", s)
	}
	if s := line(&reg[2], nil, errNack); s != "MPL3115A2 ID: error (expect 0xC4)\r\n" {
		t.Errorf("unexpected line %q", s)
	}
}
