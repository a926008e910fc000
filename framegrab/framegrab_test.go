// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framegrab

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func gradientFrame(w, h int) []byte {
	frame := make([]byte, w*h)
	for i := range frame {
		frame[i] = byte(i * 127 / (len(frame) - 1))
	}
	return frame
}

func TestRender(t *testing.T) {
	frame := gradientFrame(36, 36)
	im, err := Render(frame, 36, 36, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := im.Bounds(), image.Rect(0, 0, 144, 144); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	// First pixel is black, last is full white.
	if r, _, _, _ := im.At(0, 0).RGBA(); r != 0 {
		t.Errorf("top-left red channel = %d, want 0", r)
	}
	if g := color.GrayModel.Convert(im.At(143, 143)).(color.Gray); g.Y != 255 {
		t.Errorf("bottom-right gray = %d, want 255", g.Y)
	}
}

func TestRenderWithMeta(t *testing.T) {
	frame := gradientFrame(36, 36)
	im, err := Render(frame, 36, 36, 2, &Meta{CPI: 800, SQUAL: 0x40, Shutter: 0x155})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := im.Bounds(), image.Rect(0, 0, 72, 72+legendHeight); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestRenderBadLength(t *testing.T) {
	if _, err := Render(make([]byte, 10), 36, 36, 1, nil); err == nil {
		t.Error("expected an error for a short frame")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(path, gradientFrame(36, 36), 36, 36, 1, nil); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("wrote an empty PNG")
	}
}
