// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce    sync.Once
	regularFont  *truetype.Font
	boldFont     *truetype.Font
	errFontParse error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regularFont, errFontParse = truetype.Parse(goregular.TTF)
		if errFontParse != nil {
			return
		}
		boldFont, errFontParse = truetype.Parse(gobold.TTF)
	})
	return errFontParse
}

// ImageCanvas is a Canvas backed by an in-memory RGBA image.
type ImageCanvas struct {
	dc    *gg.Context
	faces map[fontKey]font.Face
}

type fontKey struct {
	size float64
	bold bool
}

// NewImageCanvas returns a width x height canvas cleared to the background.
func NewImageCanvas(width, height int) (*ImageCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("parse embedded fonts: %w", err)
	}

	c := &ImageCanvas{
		dc:    gg.NewContext(width, height),
		faces: make(map[fontKey]font.Face),
	}
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.Clear()
	return c, nil
}

// Size implements Canvas.
func (c *ImageCanvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear() {
	c.dc.ClearPath()
	c.dc.SetHexColor(ColorBackground)
	c.dc.Clear()
}

// SetColor implements Canvas.
func (c *ImageCanvas) SetColor(hex string) {
	c.dc.SetHexColor(hex)
}

// SetLineWidth implements Canvas.
func (c *ImageCanvas) SetLineWidth(width float64) {
	c.dc.SetLineWidth(width)
}

// SetFont implements Canvas.
func (c *ImageCanvas) SetFont(size float64, bold bool) {
	key := fontKey{size: size, bold: bold}
	face, ok := c.faces[key]
	if !ok {
		f := regularFont
		if bold {
			f = boldFont
		}
		face = truetype.NewFace(f, &truetype.Options{Size: size})
		c.faces[key] = face
	}
	c.dc.SetFontFace(face)
}

// MoveTo implements Canvas.
func (c *ImageCanvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// LineTo implements Canvas.
func (c *ImageCanvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// Arc implements Canvas.
func (c *ImageCanvas) Arc(x, y, radius, startAngle, endAngle float64) {
	c.dc.DrawArc(x, y, radius, startAngle, endAngle)
}

// Stroke implements Canvas.
func (c *ImageCanvas) Stroke() {
	c.dc.Stroke()
}

// FillCircle implements Canvas.
func (c *ImageCanvas) FillCircle(x, y, radius float64) {
	c.dc.NewSubPath()
	c.dc.DrawCircle(x, y, radius)
	c.dc.Fill()
}

// StrokeCircle implements Canvas.
func (c *ImageCanvas) StrokeCircle(x, y, radius float64) {
	c.dc.NewSubPath()
	c.dc.DrawCircle(x, y, radius)
	c.dc.Stroke()
}

// DrawText implements Canvas.
func (c *ImageCanvas) DrawText(s string, x, y float64, align TextAlign) {
	ax := 0.0
	if align == AlignCenter {
		ax = 0.5
	}
	c.dc.DrawStringAnchored(s, x, y, ax, 0)
}

// EncodePNG writes the image as PNG.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the image to path atomically, creating parent directories.
func (c *ImageCanvas) SavePNG(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".render-*.png")
	if err != nil {
		return fmt.Errorf("create temp image: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := c.dc.EncodePNG(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp image: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename image into place: %w", err)
	}
	return nil
}
