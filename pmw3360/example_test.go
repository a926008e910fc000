// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmw3360_test

import (
	"fmt"
	"log"
	"time"

	"github.com/motionworks/devices/pmw3360"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	// Reset the sensor, upload its firmware and set 1600 CPI.
	opts := pmw3360.DefaultOpts
	opts.CPI = 1600
	d, err := pmw3360.New(p, &opts)
	if err != nil {
		log.Fatal(err)
	}

	// Poll displacement for one second.
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s, err := d.ReadBurst()
			if err != nil {
				log.Fatal(err)
			}
			if s.Motion {
				fmt.Println(s)
			}
		}
	}
}
