// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package render draws the travelled path and the speedometer onto a 2D
// raster surface.
//
// Drawing code talks only to the Canvas interface. ImageCanvas implements it
// on top of fogleman/gg and writes PNG files; tests use a recording canvas.
// Coordinates are in pixels with the origin at the top-left corner and y
// growing downwards. Angles are radians, clockwise from the positive x axis.
package render

// TextAlign positions text horizontally relative to its anchor x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// Canvas is a minimal immediate-mode 2D drawing surface.
type Canvas interface {
	// Size returns the drawable width and height in pixels.
	Size() (width, height float64)

	// Clear resets every pixel to the background.
	Clear()

	// SetColor sets the stroke and fill color from a "#RRGGBB" string.
	SetColor(hex string)
	SetLineWidth(width float64)
	SetFont(size float64, bold bool)

	// MoveTo, LineTo and Arc extend the current path; Stroke draws and
	// clears it.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Stroke()

	FillCircle(x, y, radius float64)
	StrokeCircle(x, y, radius float64)

	// DrawText draws s with its baseline at y.
	DrawText(s string, x, y float64, align TextAlign)
}

// Palette.
const (
	ColorPath        = "#3B82F6"
	ColorStart       = "#10B981"
	ColorCurrent     = "#EF4444"
	ColorPointBorder = "#FFFFFF"
	ColorPlaceholder = "#9CA3AF"
	ColorLegendText  = "#4B5563"
	ColorBackground  = "#F9FAFB"

	ColorRing      = "#E5E7EB"
	ColorSlow      = "#10B981"
	ColorModerate  = "#F59E0B"
	ColorFast      = "#EF4444"
	ColorSpeedText = "#1F2937"
	ColorUnitText  = "#6B7280"
	ColorNeedle    = "#3B82F6"
)
