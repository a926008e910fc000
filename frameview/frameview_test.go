// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package frameview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestWriteASCII(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 4, H: 2, Writer: &buf})
	n, err := d.Write([]byte{0, 127, 0, 127, 64, 64, 64, 64})
	if err != nil {
		t.Fatal(err)
	}
	// Two rows of four characters plus newlines.
	want := " @ @\n++++\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() rendered %q, want %q", got, want)
	}
	if n != len(want) {
		t.Errorf("Write() = %d, want %d", n, len(want))
	}
}

func TestWriteColor(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 2, H: 1, Writer: &buf, Color: true})
	if _, err := d.Write([]byte{0, 127}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Errorf("color output contains no ANSI escape: %q", out)
	}
	if !strings.HasSuffix(out, "\033[0m\n") {
		t.Errorf("color output does not reset colors: %q", out)
	}
}

func TestWriteBadLength(t *testing.T) {
	d := New(&Opts{W: 4, H: 4, Writer: &bytes.Buffer{}})
	if _, err := d.Write(make([]byte, 3)); err == nil {
		t.Error("expected an error for a short frame")
	}
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 2, H: 2, Writer: &buf})
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(1, 1, color.Gray{Y: 255})
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "@ \n @\n"; got != want {
		t.Errorf("Draw() rendered %q, want %q", got, want)
	}
}
