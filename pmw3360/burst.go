// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmw3360

import "fmt"

// burstFrameLen is the size of one Motion_Burst snapshot.
const burstFrameLen = 12

// MotionSample is one decoded Motion_Burst snapshot.
type MotionSample struct {
	// Motion reports whether displacement occurred since the last read.
	Motion bool
	// OnSurface reports whether the chip is tracking a surface. It is false
	// while the sensor is lifted.
	OnSurface bool
	// DX and DY are the displacement since the last read, in counts.
	// Count / CPI gives the distance in inches.
	DX int16
	DY int16
	// SQUAL is the surface quality. The number of features seen by the
	// sensor is SQUAL * 8, the maximum value is 0x80.
	SQUAL uint8
	// RawDataSum is the upper byte of the 18-bit sum of all 1296 raw pixel
	// values in the current frame.
	RawDataSum uint8
	// MaxRawData and MinRawData are the extreme pixel values in the current
	// frame, at most 127.
	MaxRawData uint8
	MinRawData uint8
	// Shutter is the exposure time in internal clock cycles. The chip
	// adjusts it to keep the raw data in its operating range.
	Shutter uint16
}

// String returns a short representation of the sample.
func (m MotionSample) String() string {
	return fmt.Sprintf("dx:%d dy:%d motion:%t surface:%t squal:%d", m.DX, m.DY, m.Motion, m.OnSurface, m.SQUAL)
}

// decodeBurst interprets one 12 byte Motion_Burst payload.
//
// Layout: 0 status (bit 7 motion, bit 3 lifted), 1 observation, 2-3 dx, 4-5
// dy, 6 SQUAL, 7 raw data sum, 8 max raw data, 9 min raw data, 10-11 shutter.
// Multi-byte fields are low byte first and the displacements are two's
// complement.
func decodeBurst(buf []byte) MotionSample {
	return MotionSample{
		Motion:     buf[0]&0x80 != 0,
		OnSurface:  buf[0]&0x08 == 0,
		DX:         int16(uint16(buf[3])<<8 | uint16(buf[2])),
		DY:         int16(uint16(buf[5])<<8 | uint16(buf[4])),
		SQUAL:      buf[6],
		RawDataSum: buf[7],
		MaxRawData: buf[8],
		MinRawData: buf[9],
		Shutter:    uint16(buf[11])<<8 | uint16(buf[10]),
	}
}
