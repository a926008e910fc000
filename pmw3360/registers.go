// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmw3360

// Register map of the PMW3360. Addresses are 7 bits wide; the framing layer
// sets bit 7 of the address byte on writes and clears it on reads.
const (
	RegProductID        = 0x00 // Product ID, expected to be 0x42
	RegRevisionID       = 0x01 // Silicon revision
	RegMotion           = 0x02 // Motion status, bit 7 = motion occurred
	RegDeltaXL          = 0x03 // X displacement, low byte
	RegDeltaXH          = 0x04 // X displacement, high byte
	RegDeltaYL          = 0x05 // Y displacement, low byte
	RegDeltaYH          = 0x06 // Y displacement, high byte
	RegSQUAL            = 0x07 // Surface quality, number of features = SQUAL * 8
	RegRawDataSum       = 0x08 // Upper byte of the frame raw data sum
	RegMaximumRawData   = 0x09 // Max raw data value in current frame
	RegMinimumRawData   = 0x0A // Min raw data value in current frame
	RegShutterLower     = 0x0B // Shutter time, low byte
	RegShutterUpper     = 0x0C // Shutter time, high byte
	RegControl          = 0x0D // XY axis control
	RegConfig1          = 0x0F // Resolution, CPI = (value + 1) * 100
	RegConfig2          = 0x10 // Rest mode enable and misc features
	RegAngleTune        = 0x11 // Angle tuning, -30 to +30 degrees
	RegFrameCapture     = 0x12 // Raw frame capture arming
	RegSROMEnable       = 0x13 // SROM download control
	RegRunDownshift     = 0x14 // Run to Rest1 downshift time
	RegRest1RateLower   = 0x15
	RegRest1RateUpper   = 0x16
	RegRest1Downshift   = 0x17
	RegRest2RateLower   = 0x18
	RegRest2RateUpper   = 0x19
	RegRest2Downshift   = 0x1A
	RegRest3RateLower   = 0x1B
	RegRest3RateUpper   = 0x1C
	RegObservation      = 0x24 // SROM running status
	RegDataOutLower     = 0x25
	RegDataOutUpper     = 0x26
	RegRawDataDump      = 0x29
	RegSROMID           = 0x2A // SROM version, expected to be 0x04 after upload
	RegMinSQRun         = 0x2B
	RegRawDataThreshold = 0x2C
	RegConfig5          = 0x2F
	RegPowerUpReset     = 0x3A // Write 0x5A to force a full reset
	RegShutdown         = 0x3B // Write 0xB6 to shut the chip down
	RegInverseProductID = 0x3F // Ones complement of Product ID, expected 0xBD

	RegLiftCutoffTune3       = 0x41
	RegAngleSnap             = 0x42
	RegLiftCutoffTune1       = 0x4A
	RegMotionBurst           = 0x50 // Burst mode, 12 byte motion snapshot
	RegLiftCutoffTuneTimeout = 0x58
	RegLiftCutoffTuneMinLen  = 0x5A
	RegSROMLoadBurst         = 0x62 // SROM image download target
	RegLiftConfig            = 0x63
	RegRawDataBurst          = 0x64 // Raw frame pixel readout
	RegLiftCutoffTune2       = 0x65
)

// Constants the chip reports when it is healthy and the SROM is running.
const (
	productID        = 0x42
	inverseProductID = 0xBD
	sromVersion      = 0x04
)
