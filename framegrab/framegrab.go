// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package framegrab renders raw PMW3360 sensor frames to images for offline
// surface inspection.
package framegrab

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// legendHeight is the pixel height of the annotation strip below the frame.
const legendHeight = 18

// Meta annotates a rendered frame with the sensor state it was captured
// under.
type Meta struct {
	// CPI is the resolution the sensor was configured to.
	CPI int
	// SQUAL is the surface quality reported around the capture.
	SQUAL uint8
	// Shutter is the exposure time reported around the capture.
	Shutter uint16
}

// Render draws one raw frame, w*h pixels in row order in the sensor's 0-127
// range, scaled up by scale. A non-nil meta adds an annotation strip below
// the frame.
func Render(frame []byte, w, h, scale int, meta *Meta) (image.Image, error) {
	if len(frame) != w*h {
		return nil, fmt.Errorf("framegrab: invalid frame length %d, want %d", len(frame), w*h)
	}
	if scale < 1 {
		scale = 1
	}
	legend := 0
	if meta != nil {
		legend = legendHeight
	}
	dc := gg.NewContext(w*scale, h*scale+legend)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := frame[y*w+x]
			if p > 127 {
				p = 127
			}
			v := float64(p) / 127
			dc.SetRGB(v, v, v)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}
	if meta != nil {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("framegrab: parsing font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))
		dc.SetRGB(1, 1, 1)
		label := fmt.Sprintf("cpi=%d squal=%d shutter=%d", meta.CPI, meta.SQUAL, meta.Shutter)
		dc.DrawString(label, 2, float64(h*scale+legend-5))
	}
	return dc.Image(), nil
}

// SavePNG renders the frame and writes it to path as a PNG.
func SavePNG(path string, frame []byte, w, h, scale int, meta *Meta) error {
	im, err := Render(frame, w, h, scale, meta)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, im)
}
