// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package example

import (
	"fmt"
	"log"
	"time"

	"github.com/motionworks/devices/pmw3360"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Example polls the sensor and forwards displacement deltas, gated by the
// chip's motion interrupt pin so the bus stays idle while the mouse is still.
func Example() {
	// Initialize the host.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	d, err := pmw3360.New(p, &pmw3360.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	// The MOTION pin is driven low while the chip has unread motion.
	motion := gpioreg.ByName("GPIO22")
	if motion == nil {
		log.Fatal("failed to find the motion pin")
	}
	if err := motion.In(gpio.PullUp, gpio.NoEdge); err != nil {
		log.Fatal(err)
	}

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	stop := time.After(10 * time.Second)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if motion.Read() == gpio.High {
				continue
			}
			s, err := d.ReadBurst()
			if err != nil {
				log.Fatal(err)
			}
			if s.Motion && s.OnSurface {
				// Forward dx/dy to the pointing device layer here.
				fmt.Printf("dx=%d dy=%d\n", s.DX, s.DY)
			}
		}
	}
}
