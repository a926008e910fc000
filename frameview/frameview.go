// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package frameview renders raw PMW3360 sensor frames to the terminal using
// ANSI color codes.
//
// Useful to check what surface the sensor actually sees without wiring up an
// image pipeline.
package frameview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/display"
)

// asciiRamp maps pixel brightness to characters when color output is off.
const asciiRamp = " .:-=+*#%@"

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the frame dimensions in pixels.
	W, H    int
	Palette *ansi256.Palette

	// Writer overrides the output. When nil the display writes to stdout
	// and uses color if stdout is a terminal.
	Writer io.Writer
	// Color forces ANSI output when Writer is set.
	Color bool

	_ struct{}
}

// Dev renders 8-bit grayscale frames at the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette
	color   bool

	pixels []byte
	buf    bytes.Buffer
}

// New returns a Dev that displays raw frames at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		width:   opts.W,
		height:  opts.H,
		palette: *p,
		pixels:  make([]byte, opts.W*opts.H),
	}
	if opts.Writer != nil {
		d.w = opts.Writer
		d.color = opts.Color
	} else {
		d.w = colorable.NewColorableStdout()
		d.color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("FrameView{%dx%d}", d.width, d.height)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the display is not corrupted.
func (d *Dev) Halt() error {
	if !d.color {
		return nil
	}
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write accepts one raw frame, width*height pixels in row order, and renders
// it. Pixel values use the sensor's 0-127 range.
func (d *Dev) Write(frame []byte) (int, error) {
	if len(frame) != len(d.pixels) {
		return 0, fmt.Errorf("frameview: invalid frame length %d, want %d", len(frame), len(d.pixels))
	}
	copy(d.pixels, frame)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	for sY := srcR.Min.Y; sY < srcR.Max.Y; sY++ {
		dY := r.Min.Y + sY - srcR.Min.Y
		for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
			g := color.GrayModel.Convert(src.At(sX, sY)).(color.Gray)
			// Back to the sensor's 7-bit pixel range.
			d.pixels[dY*d.width+r.Min.X+sX-srcR.Min.X] = g.Y >> 1
		}
	}
	_, err := d.refresh()
	return err
}

func (d *Dev) refresh() (int, error) {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	for y := 0; y < d.height; y++ {
		if d.color {
			_, _ = d.buf.WriteString("\033[0m")
		}
		for x := 0; x < d.width; x++ {
			p := d.pixels[y*d.width+x]
			if p > 127 {
				p = 127
			}
			if d.color {
				// Raw pixels are 7 bits, stretch to 8-bit gray.
				g := p << 1
				c := color.NRGBA{g, g, g, 255}
				_, _ = io.WriteString(&d.buf, d.palette.Block(c))
			} else {
				_ = d.buf.WriteByte(asciiRamp[int(p)*len(asciiRamp)/128])
			}
		}
		if d.color {
			_, _ = d.buf.WriteString("\033[0m")
		}
		_ = d.buf.WriteByte('\n')
	}
	n, err := d.buf.WriteTo(d.w)
	return int(n), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
