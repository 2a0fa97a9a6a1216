// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package render

import (
	"github.com/tomtom215/travelcompanion/internal/models"
)

// Path canvas defaults.
const (
	PathWidth  = 300
	PathHeight = 200

	PathPadding     = 20.0
	PointRadius     = 4.0
	PathPlaceholder = "Path will appear here"
)

// Projection maps geographic coordinates into the padded drawing area.
type Projection struct {
	minLat, maxLat float64
	minLng, maxLng float64
	width, height  float64
	padding        float64
}

// NewProjection fits the bounding box of points into a width x height
// canvas with the given padding on every side. points must not be empty.
func NewProjection(points []models.LocationRecord, width, height, padding float64) Projection {
	p := Projection{
		minLat:  points[0].Latitude,
		maxLat:  points[0].Latitude,
		minLng:  points[0].Longitude,
		maxLng:  points[0].Longitude,
		width:   width - 2*padding,
		height:  height - 2*padding,
		padding: padding,
	}
	for _, pt := range points[1:] {
		p.minLat = min(p.minLat, pt.Latitude)
		p.maxLat = max(p.maxLat, pt.Latitude)
		p.minLng = min(p.minLng, pt.Longitude)
		p.maxLng = max(p.maxLng, pt.Longitude)
	}
	return p
}

// Project returns canvas coordinates. North is up. An axis with zero span
// places every point in the middle of that axis.
func (p Projection) Project(lat, lng float64) (x, y float64) {
	if span := p.maxLng - p.minLng; span > 0 {
		x = p.padding + (lng-p.minLng)/span*p.width
	} else {
		x = p.padding + p.width/2
	}
	if span := p.maxLat - p.minLat; span > 0 {
		y = p.padding + (p.maxLat-lat)/span*p.height
	} else {
		y = p.padding + p.height/2
	}
	return x, y
}

// RenderPath draws the history as a polyline with a dot per fix, the
// first fix in green and the latest in red, plus a small legend.
// With fewer than two points it draws a centered placeholder instead.
func RenderPath(c Canvas, points []models.LocationRecord) {
	w, h := c.Size()
	c.Clear()

	if len(points) < 2 {
		c.SetColor(ColorPlaceholder)
		c.SetFont(14, false)
		c.DrawText(PathPlaceholder, w/2, h/2, AlignCenter)
		return
	}

	proj := NewProjection(points, w, h, PathPadding)

	c.SetColor(ColorPath)
	c.SetLineWidth(2)
	for i, pt := range points {
		x, y := proj.Project(pt.Latitude, pt.Longitude)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.Stroke()

	last := len(points) - 1
	for i, pt := range points {
		x, y := proj.Project(pt.Latitude, pt.Longitude)

		switch i {
		case 0:
			c.SetColor(ColorStart)
		case last:
			c.SetColor(ColorCurrent)
		default:
			c.SetColor(ColorPath)
		}
		c.FillCircle(x, y, PointRadius)

		c.SetColor(ColorPointBorder)
		c.SetLineWidth(2)
		c.StrokeCircle(x, y, PointRadius)
	}

	drawLegend(c, h)
}

func drawLegend(c Canvas, h float64) {
	y := h - 15
	c.SetFont(12, false)

	c.SetColor(ColorStart)
	c.FillCircle(15, y, 3)
	c.SetColor(ColorLegendText)
	c.DrawText("Start", 25, y+4, AlignLeft)

	c.SetColor(ColorCurrent)
	c.FillCircle(80, y, 3)
	c.SetColor(ColorLegendText)
	c.DrawText("Current", 90, y+4, AlignLeft)
}
