// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package render

import (
	"fmt"
	"math"
)

// Speedometer defaults.
const (
	SpeedometerSize = 200

	SpeedometerRadius  = 80.0
	SpeedometerFullKmh = 120.0
	ModerateSpeedKmh   = 30.0
	FastSpeedKmh       = 60.0
	needleLength       = 30.0
	ringWidth          = 8.0
)

// SpeedColor returns the arc color for speed: green up to 30 km/h, amber up
// to 60 km/h, red above.
func SpeedColor(kmh float64) string {
	switch {
	case kmh > FastSpeedKmh:
		return ColorFast
	case kmh > ModerateSpeedKmh:
		return ColorModerate
	default:
		return ColorSlow
	}
}

// SpeedArcEnd returns the end angle of the speed arc, which starts at 12
// o'clock and sweeps clockwise. A full turn is SpeedometerFullKmh; faster
// speeds are clamped to a full ring.
func SpeedArcEnd(kmh float64) float64 {
	frac := math.Max(0, math.Min(kmh/SpeedometerFullKmh, 1))
	return -math.Pi/2 + frac*2*math.Pi
}

// NeedleTip returns the end point of the heading needle. 0° points up and
// angles grow clockwise, as on a compass.
func NeedleTip(cx, cy, heading float64) (x, y float64) {
	rad := heading * math.Pi / 180
	return cx + needleLength*math.Sin(rad), cy - needleLength*math.Cos(rad)
}

// RenderSpeedometer draws a ring gauge with the speed arc, the numeric
// speed and a heading needle.
func RenderSpeedometer(c Canvas, speedKmh, heading float64) {
	w, h := c.Size()
	cx, cy := w/2, h/2
	c.Clear()

	c.SetColor(ColorRing)
	c.SetLineWidth(ringWidth)
	c.StrokeCircle(cx, cy, SpeedometerRadius)

	if speedKmh > 0 {
		c.SetColor(SpeedColor(speedKmh))
		c.SetLineWidth(ringWidth)
		c.Arc(cx, cy, SpeedometerRadius, -math.Pi/2, SpeedArcEnd(speedKmh))
		c.Stroke()
	}

	c.SetColor(ColorSpeedText)
	c.SetFont(24, true)
	c.DrawText(fmt.Sprintf("%.1f", speedKmh), cx, cy-5, AlignCenter)

	c.SetColor(ColorUnitText)
	c.SetFont(12, false)
	c.DrawText("km/h", cx, cy+15, AlignCenter)

	nx, ny := NeedleTip(cx, cy, heading)
	c.SetColor(ColorNeedle)
	c.SetLineWidth(3)
	c.MoveTo(cx, cy)
	c.LineTo(nx, ny)
	c.Stroke()

	c.FillCircle(cx, cy, 4)
}
