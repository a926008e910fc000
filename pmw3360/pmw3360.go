// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmw3360

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI bus parameters used to communicate with the device.
var (
	SpiFrequency = 8 * physic.MegaHertz
	SpiMode      = spi.Mode3 // Clock idles high, data sampled on the trailing edge.
	SpiBits      = 8
)

// Frame dimensions of the raw image sensor.
const (
	FrameWidth  = 36
	FrameHeight = 36
)

// burstStaleAfter is how long a burst transaction stays valid. After this the
// chip may have dropped out of burst mode on its own, so the next read re-arms
// it first.
const burstStaleAfter = 500 * time.Millisecond

var (
	// ErrSignatureMismatch is returned by New when the chip does not report
	// the documented Product_ID/Inverse_Product_ID/SROM_ID triple. The usual
	// cause is a failed SROM upload or a different chip on the bus.
	ErrSignatureMismatch = errors.New("pmw3360: signature mismatch")
	// ErrCPITimeout is returned by SetCPI when the Config1 readback still
	// disagrees with the requested resolution after the maximum number of
	// write attempts.
	ErrCPITimeout = errors.New("pmw3360: resolution not latched")
)

// DefaultOpts is the recommended default configuration.
var DefaultOpts = Opts{
	CPI:            800,
	MaxCPIAttempts: 5,
}

// Opts holds the configuration options for the device.
type Opts struct {
	// CPI is the resolution in counts per inch, rounded to the nearest 100
	// and clamped to [100, 12000].
	CPI int
	// MaxCPIAttempts bounds how often a resolution write is retried when the
	// readback disagrees. Zero means the DefaultOpts value.
	MaxCPIAttempts int
}

// Dev is a driver for the PMW3360 optical motion sensor over SPI.
//
// A Dev is not safe for concurrent use; when several goroutines or several
// sensors share one bus the caller must serialize access.
type Dev struct {
	name      string
	c         spi.Conn
	maxTxSize int

	maxCPIAttempts int
	inBurst        bool
	lastBurst      time.Time

	sleep func(time.Duration)
	now   func() time.Time
}

// New opens a PMW3360 on the given SPI port and brings it to the Ready state:
// power-up reset, SROM firmware upload, resolution configuration and
// signature verification. It returns ErrSignatureMismatch when the chip does
// not identify as a PMW3360 running the uploaded firmware.
//
// The reset settle time makes this call block for a little over 300ms.
func New(p spi.Port, o *Opts) (*Dev, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("pmw3360: %w", err)
	}
	// The SROM image is pushed in a single transaction, so figure out how
	// much the port can take per transfer.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Use a conservative default.
	}
	attempts := o.MaxCPIAttempts
	if attempts <= 0 {
		attempts = DefaultOpts.MaxCPIAttempts
	}
	d := &Dev{
		name:           "PMW3360",
		c:              c,
		maxTxSize:      maxTxSize,
		maxCPIAttempts: attempts,
		sleep:          time.Sleep,
		now:            time.Now,
	}
	if err := d.begin(o.CPI); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return d.name
}

// Halt implements conn.Resource. It shuts the sensor down; a new power-up
// reset sequence is needed to use it again.
func (d *Dev) Halt() error {
	d.inBurst = false
	return d.writeReg(RegShutdown, 0xB6)
}

// begin runs the full initialization sequence.
func (d *Dev) begin(cpi int) error {
	if err := d.writeReg(RegShutdown, 0xB6); err != nil {
		return err
	}
	// Hardware reset settle time, a hard lower bound.
	d.sleep(300 * time.Millisecond)
	if err := d.writeReg(RegPowerUpReset, 0x5A); err != nil {
		return err
	}
	// Read the motion registers once and discard the values to clear any
	// stale motion latch left over from before the reset.
	for _, reg := range [...]byte{RegMotion, RegDeltaXL, RegDeltaXH, RegDeltaYL, RegDeltaYH} {
		if _, err := d.readReg(reg); err != nil {
			return err
		}
	}
	if err := d.uploadFirmware(); err != nil {
		return err
	}
	d.sleep(10 * time.Millisecond)
	if err := d.SetCPI(cpi); err != nil {
		return err
	}
	ok, err := d.CheckSignature()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSignatureMismatch
	}
	return nil
}

// uploadFirmware downloads the SROM image into the chip. The sensor tracks
// motion even without it, but with degraded behavior, so the upload is a
// mandatory part of initialization.
func (d *Dev) uploadFirmware() error {
	// Rest mode must be off while the SROM loads.
	if err := d.writeReg(RegConfig2, 0x00); err != nil {
		return err
	}
	if err := d.writeReg(RegSROMEnable, 0x1D); err != nil {
		return err
	}
	// Wait for more than one frame period. Assume the frame rate is as low
	// as 100fps even though it should never be that low.
	d.sleep(10 * time.Millisecond)
	if err := d.writeReg(RegSROMEnable, 0x18); err != nil {
		return err
	}
	// The whole image has to go out in one chip-select scope, address byte
	// first. There is no ack; a botched upload only shows up later as a
	// signature mismatch.
	burst := make([]byte, 0, len(sromFirmware)+1)
	burst = append(burst, RegSROMLoadBurst|0x80)
	burst = append(burst, sromFirmware...)
	if len(burst) <= d.maxTxSize {
		if err := d.c.Tx(burst, nil); err != nil {
			return fmt.Errorf("pmw3360: uploading firmware: %w", err)
		}
	} else {
		// Too large for one transfer on this port. Split it up but keep
		// chip select asserted across the chunks.
		var p []spi.Packet
		for len(burst) > 0 {
			n := len(burst)
			if n > d.maxTxSize {
				n = d.maxTxSize
			}
			p = append(p, spi.Packet{W: burst[:n], KeepCS: true})
			burst = burst[n:]
		}
		p[len(p)-1].KeepCS = false
		if err := d.c.TxPackets(p); err != nil {
			return fmt.Errorf("pmw3360: uploading firmware: %w", err)
		}
	}
	// Reading SROM_ID latches the version for the later signature check.
	if _, err := d.readReg(RegSROMID); err != nil {
		return err
	}
	// 0x00 for a wired design; a wireless one would write 0x20 here.
	return d.writeReg(RegConfig2, 0x00)
}

// CheckSignature reports whether the chip identifies as a PMW3360 running the
// uploaded firmware. It has no side effects beyond three register reads.
func (d *Dev) CheckSignature() (bool, error) {
	pid, err := d.readReg(RegProductID)
	if err != nil {
		return false, err
	}
	inv, err := d.readReg(RegInverseProductID)
	if err != nil {
		return false, err
	}
	srom, err := d.readReg(RegSROMID)
	if err != nil {
		return false, err
	}
	return pid == productID && inv == inverseProductID && srom == sromVersion, nil
}

// SetCPI sets the sensor resolution in counts per inch. The value is rounded
// to the nearest 100 and clamped to [100, 12000]. The chip sometimes ignores
// the first write, so the write is retried while the readback disagrees, up
// to Opts.MaxCPIAttempts times, then ErrCPITimeout is returned.
func (d *Dev) SetCPI(cpi int) error {
	code := (cpi+50)/100 - 1
	if code < 0 {
		code = 0
	} else if code > 119 {
		code = 119
	}
	want := (code + 1) * 100
	for i := 0; i < d.maxCPIAttempts; i++ {
		if err := d.writeReg(RegConfig1, byte(code)); err != nil {
			return err
		}
		got, err := d.CPI()
		if err != nil {
			return err
		}
		if got == want {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts", ErrCPITimeout, d.maxCPIAttempts)
}

// CPI returns the current sensor resolution in counts per inch.
func (d *Dev) CPI() (int, error) {
	v, err := d.readReg(RegConfig1)
	if err != nil {
		return 0, err
	}
	return (int(v) + 1) * 100, nil
}

// ReadBurst reads one motion snapshot using the chip's burst mode. Burst mode
// is armed transparently on the first call, after a different register was
// touched, or when the previous burst read is older than 500ms.
func (d *Dev) ReadBurst() (MotionSample, error) {
	if !d.inBurst || d.now().Sub(d.lastBurst) > burstStaleAfter {
		if err := d.writeReg(RegMotionBurst, 0x00); err != nil {
			return MotionSample{}, err
		}
		d.inBurst = true
	}
	// One transaction: address byte, then the chip streams the snapshot.
	var w, r [burstFrameLen + 1]byte
	w[0] = RegMotionBurst
	if err := d.c.Tx(w[:], r[:]); err != nil {
		d.inBurst = false
		return MotionSample{}, fmt.Errorf("pmw3360: reading burst: %w", err)
	}
	buf := r[1:]
	// The low three status bits are always zero on a healthy frame. Seeing
	// them set means the burst stream is desynchronized; drop out of burst
	// mode so the next call re-arms it.
	if buf[0]&0b111 != 0 {
		d.inBurst = false
	}
	d.lastBurst = d.now()
	return decodeBurst(buf), nil
}

// ReadRegister reads a single register. Advanced use only; touching any
// register other than Motion_Burst drops the chip out of burst mode.
func (d *Dev) ReadRegister(reg byte) (byte, error) {
	return d.readReg(reg)
}

// WriteRegister writes a single register. Advanced use only.
func (d *Dev) WriteRegister(reg, value byte) error {
	return d.writeReg(reg, value)
}

// PrepareImage puts the sensor in frame capture mode and addresses the raw
// data burst register. Motion tracking stops until the next power-up reset.
// This path is slow and meant for surface debugging, not for sampling.
func (d *Dev) PrepareImage() error {
	if err := d.writeReg(RegConfig2, 0x00); err != nil {
		return err
	}
	if err := d.writeReg(RegFrameCapture, 0x83); err != nil {
		return err
	}
	if err := d.writeReg(RegFrameCapture, 0xC5); err != nil {
		return err
	}
	d.sleep(20 * time.Millisecond)
	w := [1]byte{RegRawDataBurst &^ 0x80}
	var r [1]byte
	if err := d.c.Tx(w[:], r[:]); err != nil {
		return fmt.Errorf("pmw3360: preparing image: %w", err)
	}
	return nil
}

// ReadImagePixel clocks one raw pixel out of the frame capture buffer.
func (d *Dev) ReadImagePixel() (byte, error) {
	var w, r [1]byte
	if err := d.c.Tx(w[:], r[:]); err != nil {
		return 0, fmt.Errorf("pmw3360: reading pixel: %w", err)
	}
	return r[0], nil
}

// CaptureFrame grabs one full raw frame, FrameWidth*FrameHeight pixels in row
// order. The sensor needs a new power-up reset (New) afterwards to resume
// motion tracking.
func (d *Dev) CaptureFrame() ([]byte, error) {
	if err := d.PrepareImage(); err != nil {
		return nil, err
	}
	frame := make([]byte, FrameWidth*FrameHeight)
	for i := range frame {
		p, err := d.ReadImagePixel()
		if err != nil {
			return nil, err
		}
		frame[i] = p
	}
	return frame, nil
}

// writeReg writes one register. Bit 7 of the address byte marks a write.
func (d *Dev) writeReg(reg, value byte) error {
	if reg != RegMotionBurst {
		d.inBurst = false
	}
	if err := d.c.Tx([]byte{reg | 0x80, value}, nil); err != nil {
		return fmt.Errorf("pmw3360: writing register 0x%02x: %w", reg, err)
	}
	return nil
}

// readReg reads one register. Bit 7 of the address byte is clear for reads;
// the value arrives on the following byte.
func (d *Dev) readReg(reg byte) (byte, error) {
	if reg != RegMotionBurst {
		d.inBurst = false
	}
	w := [2]byte{reg &^ 0x80, 0x00}
	var r [2]byte
	if err := d.c.Tx(w[:], r[:]); err != nil {
		return 0, fmt.Errorf("pmw3360: reading register 0x%02x: %w", reg, err)
	}
	return r[1], nil
}

var _ conn.Resource = &Dev{}
