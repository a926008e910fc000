// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pmw3360 controls a PixArt PMW3360 optical motion sensor over SPI.
//
// The PMW3360 is the sensor found in many gaming mice. It tracks displacement
// over a surface and reports it in counts per inch (CPI). The driver uploads
// the vendor SROM firmware during initialization, verifies the chip
// signature, and reads motion through the chip's burst mode so one SPI
// transaction returns a full snapshot (displacement, surface quality,
// shutter).
//
// The bus runs in SPI mode 3 at 8MHz with one chip select line per sensor.
//
// **Datasheet:** https://www.pixart.com/products-detail/10/PMW3360DM-T2QU
package pmw3360
