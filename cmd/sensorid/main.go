// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// sensorid polls the BMI270, QMC5883L and MPL3115A2 on the first I²C bus for
// their identification registers and prints one line per sensor every two
// seconds, forever.
//
// The report goes to stdout. To send it to a UART instead, set the port at
// link time:
//
//	go build -ldflags "-X main.serialPort=/dev/ttyAMA0" ./cmd/sensorid
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/GermanBionicSystems/sensorid/ident"
	"github.com/GermanBionicSystems/sensorid/regio"
	"github.com/GermanBionicSystems/sensorid/report"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// serialPort is the UART the report is written to. Empty means stdout.
var serialPort string

func openSink() (io.Writer, func() error, error) {
	if serialPort == "" {
		return report.NewConsole(), func() error { return nil }, nil
	}
	p, err := report.OpenSerial(&report.SerialOpts{Port: serialPort})
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

func mainImpl() error {
	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open("")
	if err != nil {
		return err
	}
	defer b.Close()
	// Standard mode. Buses whose speed is fixed by the kernel refuse this.
	if err := b.SetSpeed(100 * physic.KiloHertz); err != nil {
		log.Printf("sensorid: keeping the bus speed: %v", err)
	}

	sink, closeSink, err := openSink()
	if err != nil {
		return err
	}
	defer closeSink()

	p, err := ident.New(regio.New(regio.NewBus(b), sink, nil), sink, nil)
	if err != nil {
		return err
	}
	if err := p.Banner(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("sensorid: %v", err)
	}
}
