// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmw3360

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

// testDev returns a Dev over the given port without running the power-up
// sequence, with delays and the clock stubbed out.
func testDev(t *testing.T, p spi.Port) *Dev {
	t.Helper()
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		t.Fatal(err)
	}
	return &Dev{
		name:           "PMW3360",
		c:              c,
		maxTxSize:      4096,
		maxCPIAttempts: 5,
		sleep:          func(time.Duration) {},
		now:            time.Now,
	}
}

func playback(ops []conntest.IO) *spitest.Playback {
	return &spitest.Playback{Playback: conntest.Playback{Ops: ops, DontPanic: true}}
}

func TestDecodeBurst(t *testing.T) {
	for _, tc := range []struct {
		name string
		buf  []byte
		want MotionSample
	}{
		{
			name: "motion on surface",
			buf:  []byte{0x80, 0x00, 0x02, 0x01, 0x00, 0x00, 0x40, 0x10, 0x7F, 0x02, 0x55, 0x01},
			want: MotionSample{
				Motion:     true,
				OnSurface:  true,
				DX:         258,
				DY:         0,
				SQUAL:      0x40,
				RawDataSum: 0x10,
				MaxRawData: 0x7F,
				MinRawData: 0x02,
				Shutter:    0x0155,
			},
		},
		{
			name: "lifted, no motion",
			buf:  []byte{0x08, 0x00, 0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: MotionSample{
				Motion:    false,
				OnSurface: false,
				DY:        -2,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeBurst(tc.buf)
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("decodeBurst() difference (-got +want):\n%s", diff)
			}
		})
	}
}

// TestSignConversion pins the two's-complement interpretation of the 16-bit
// displacement fields across the boundary values.
func TestSignConversion(t *testing.T) {
	for _, tc := range []struct {
		raw  uint16
		want int16
	}{
		{0x0001, 1},
		{0x7FFF, 32767},
		{0x8001, -32767},
		{0x8000, -32768},
		{0xFFFF, -1},
	} {
		buf := make([]byte, burstFrameLen)
		buf[2] = byte(tc.raw)
		buf[3] = byte(tc.raw >> 8)
		buf[4] = byte(tc.raw)
		buf[5] = byte(tc.raw >> 8)
		s := decodeBurst(buf)
		if s.DX != tc.want || s.DY != tc.want {
			t.Errorf("raw %#04x: dx=%d dy=%d, want %d", tc.raw, s.DX, s.DY, tc.want)
		}
	}
}

func signatureOps(pid, inv, srom byte) []conntest.IO {
	return []conntest.IO{
		{W: []byte{RegProductID, 0x00}, R: []byte{0x00, pid}},
		{W: []byte{RegInverseProductID, 0x00}, R: []byte{0x00, inv}},
		{W: []byte{RegSROMID, 0x00}, R: []byte{0x00, srom}},
	}
}

func TestCheckSignature(t *testing.T) {
	for _, tc := range []struct {
		name           string
		pid, inv, srom byte
		want           bool
	}{
		{"healthy", 0x42, 0xBD, 0x04, true},
		{"wrong product", 0x00, 0xBD, 0x04, false},
		{"wrong inverse", 0x42, 0xFF, 0x04, false},
		{"firmware not running", 0x42, 0xBD, 0x00, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pb := playback(signatureOps(tc.pid, tc.inv, tc.srom))
			defer pb.Close()
			d := testDev(t, pb)
			ok, err := d.CheckSignature()
			if err != nil {
				t.Fatal(err)
			}
			if ok != tc.want {
				t.Errorf("CheckSignature() = %t, want %t", ok, tc.want)
			}
		})
	}
}

func TestSetCPI(t *testing.T) {
	pb := playback([]conntest.IO{
		{W: []byte{RegConfig1 | 0x80, 0x0F}},
		{W: []byte{RegConfig1, 0x00}, R: []byte{0x00, 0x0F}},
	})
	defer pb.Close()
	d := testDev(t, pb)
	if err := d.SetCPI(1600); err != nil {
		t.Fatal(err)
	}
}

func TestSetCPIClamp(t *testing.T) {
	// 20000 CPI is out of range; the register code clamps to 119 (12000).
	pb := playback([]conntest.IO{
		{W: []byte{RegConfig1 | 0x80, 119}},
		{W: []byte{RegConfig1, 0x00}, R: []byte{0x00, 119}},
	})
	defer pb.Close()
	d := testDev(t, pb)
	if err := d.SetCPI(20000); err != nil {
		t.Fatal(err)
	}
}

func TestSetCPITimeout(t *testing.T) {
	// The chip never latches the value: the write is retried a bounded
	// number of times and then gives up.
	var ops []conntest.IO
	for i := 0; i < 5; i++ {
		ops = append(ops,
			conntest.IO{W: []byte{RegConfig1 | 0x80, 0x07}},
			conntest.IO{W: []byte{RegConfig1, 0x00}, R: []byte{0x00, 0x00}},
		)
	}
	pb := playback(ops)
	defer pb.Close()
	d := testDev(t, pb)
	err := d.SetCPI(800)
	if !errors.Is(err, ErrCPITimeout) {
		t.Errorf("SetCPI() error = %v, want ErrCPITimeout", err)
	}
}

func TestCPIRoundTrip(t *testing.T) {
	var ops []conntest.IO
	for cpi := 100; cpi <= 12000; cpi += 100 {
		code := byte(cpi/100 - 1)
		ops = append(ops,
			conntest.IO{W: []byte{RegConfig1 | 0x80, code}},
			conntest.IO{W: []byte{RegConfig1, 0x00}, R: []byte{0x00, code}},
			conntest.IO{W: []byte{RegConfig1, 0x00}, R: []byte{0x00, code}},
		)
	}
	pb := playback(ops)
	defer pb.Close()
	d := testDev(t, pb)
	for cpi := 100; cpi <= 12000; cpi += 100 {
		if err := d.SetCPI(cpi); err != nil {
			t.Fatalf("SetCPI(%d): %v", cpi, err)
		}
		got, err := d.CPI()
		if err != nil {
			t.Fatalf("CPI() after SetCPI(%d): %v", cpi, err)
		}
		if got != cpi {
			t.Errorf("CPI() = %d, want %d", got, cpi)
		}
	}
}

func firmwareOps() []conntest.IO {
	return []conntest.IO{
		{W: []byte{RegConfig2 | 0x80, 0x00}},
		{W: []byte{RegSROMEnable | 0x80, 0x1D}},
		{W: []byte{RegSROMEnable | 0x80, 0x18}},
		{W: append([]byte{RegSROMLoadBurst | 0x80}, sromFirmware...)},
		{W: []byte{RegSROMID, 0x00}, R: []byte{0x00, 0x04}},
		{W: []byte{RegConfig2 | 0x80, 0x00}},
	}
}

func TestUploadFirmware(t *testing.T) {
	if len(sromFirmware) != 4094 {
		t.Fatalf("SROM image is %d bytes, want 4094", len(sromFirmware))
	}
	// The image goes out as one unbroken transaction, address byte first.
	pb := playback(firmwareOps())
	d := testDev(t, pb)
	if err := d.uploadFirmware(); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func burstIO(status byte, payload ...byte) conntest.IO {
	w := make([]byte, burstFrameLen+1)
	w[0] = RegMotionBurst
	r := make([]byte, burstFrameLen+1)
	r[1] = status
	copy(r[2:], payload)
	return conntest.IO{W: w, R: r}
}

func TestReadBurst(t *testing.T) {
	pb := playback([]conntest.IO{
		// First call arms burst mode.
		{W: []byte{RegMotionBurst | 0x80, 0x00}},
		burstIO(0x80, 0x00, 0x02, 0x01, 0x00, 0x00),
		// Second call within the staleness window reads directly.
		burstIO(0x80, 0x00, 0xFF, 0xFF, 0x00, 0x00),
		// Third call is stale and re-arms first.
		{W: []byte{RegMotionBurst | 0x80, 0x00}},
		burstIO(0x00),
	})
	defer pb.Close()
	d := testDev(t, pb)
	cur := time.Unix(1000, 0)
	d.now = func() time.Time { return cur }

	s, err := d.ReadBurst()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Motion || !s.OnSurface || s.DX != 258 || s.DY != 0 {
		t.Errorf("unexpected first sample: %s", s)
	}

	cur = cur.Add(10 * time.Millisecond)
	s, err = d.ReadBurst()
	if err != nil {
		t.Fatal(err)
	}
	if s.DX != -1 {
		t.Errorf("DX = %d, want -1", s.DX)
	}

	cur = cur.Add(600 * time.Millisecond)
	if _, err = d.ReadBurst(); err != nil {
		t.Fatal(err)
	}
}

func TestReadBurstDesync(t *testing.T) {
	pb := playback([]conntest.IO{
		{W: []byte{RegMotionBurst | 0x80, 0x00}},
		// Low status bits set: the burst stream is desynchronized.
		burstIO(0x87),
		// The next call must re-arm even though the last read was recent.
		{W: []byte{RegMotionBurst | 0x80, 0x00}},
		burstIO(0x80),
	})
	defer pb.Close()
	d := testDev(t, pb)
	cur := time.Unix(1000, 0)
	d.now = func() time.Time { return cur }

	if _, err := d.ReadBurst(); err != nil {
		t.Fatal(err)
	}
	if d.inBurst {
		t.Error("inBurst still set after a desynchronized frame")
	}
	cur = cur.Add(time.Millisecond)
	if _, err := d.ReadBurst(); err != nil {
		t.Fatal(err)
	}
}

func TestReadRegisterClearsBurst(t *testing.T) {
	pb := playback([]conntest.IO{
		{W: []byte{RegMotionBurst | 0x80, 0x00}},
		burstIO(0x80),
		// Touching any other register drops the chip out of burst mode.
		{W: []byte{RegSQUAL, 0x00}, R: []byte{0x00, 0x30}},
	})
	defer pb.Close()
	d := testDev(t, pb)
	cur := time.Unix(1000, 0)
	d.now = func() time.Time { return cur }

	if _, err := d.ReadBurst(); err != nil {
		t.Fatal(err)
	}
	if !d.inBurst {
		t.Fatal("expected burst mode to be active")
	}
	if _, err := d.ReadRegister(RegSQUAL); err != nil {
		t.Fatal(err)
	}
	if d.inBurst {
		t.Error("inBurst still set after reading another register")
	}
}

func initOps(pid byte) []conntest.IO {
	ops := []conntest.IO{
		{W: []byte{RegShutdown | 0x80, 0xB6}},
		{W: []byte{RegPowerUpReset | 0x80, 0x5A}},
		{W: []byte{RegMotion, 0x00}, R: []byte{0x00, 0x00}},
		{W: []byte{RegDeltaXL, 0x00}, R: []byte{0x00, 0x00}},
		{W: []byte{RegDeltaXH, 0x00}, R: []byte{0x00, 0x00}},
		{W: []byte{RegDeltaYL, 0x00}, R: []byte{0x00, 0x00}},
		{W: []byte{RegDeltaYH, 0x00}, R: []byte{0x00, 0x00}},
	}
	ops = append(ops, firmwareOps()...)
	ops = append(ops,
		conntest.IO{W: []byte{RegConfig1 | 0x80, 0x07}},
		conntest.IO{W: []byte{RegConfig1, 0x00}, R: []byte{0x00, 0x07}},
	)
	return append(ops, signatureOps(pid, 0xBD, 0x04)...)
}

func TestNew(t *testing.T) {
	pb := playback(initOps(0x42))
	d, err := New(pb, &DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	if s := d.String(); s != "PMW3360" {
		t.Errorf("String() = %q", s)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewSignatureMismatch(t *testing.T) {
	pb := playback(initOps(0x00))
	defer pb.Close()
	if _, err := New(pb, &DefaultOpts); !errors.Is(err, ErrSignatureMismatch) {
		t.Errorf("New() error = %v, want ErrSignatureMismatch", err)
	}
}

func TestHalt(t *testing.T) {
	pb := playback([]conntest.IO{{W: []byte{RegShutdown | 0x80, 0xB6}}})
	defer pb.Close()
	d := testDev(t, pb)
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
}

func TestCaptureFrame(t *testing.T) {
	ops := []conntest.IO{
		{W: []byte{RegConfig2 | 0x80, 0x00}},
		{W: []byte{RegFrameCapture | 0x80, 0x83}},
		{W: []byte{RegFrameCapture | 0x80, 0xC5}},
		{W: []byte{RegRawDataBurst}, R: []byte{0x00}},
	}
	want := make([]byte, FrameWidth*FrameHeight)
	for i := range want {
		want[i] = byte(i % 128)
		ops = append(ops, conntest.IO{W: []byte{0x00}, R: []byte{want[i]}})
	}
	pb := playback(ops)
	defer pb.Close()
	d := testDev(t, pb)
	frame, err := d.CaptureFrame()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(frame, want); diff != "" {
		t.Errorf("CaptureFrame() difference (-got +want):\n%s", diff)
	}
}
