// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package render

import (
	"fmt"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// Output file names written by the tracker snapshot.
const (
	PathFileName        = "path.png"
	SpeedometerFileName = "speedometer.png"
)

// WritePathPNG renders points at the default path size and saves it to file.
func WritePathPNG(file string, points []models.LocationRecord) error {
	c, err := NewImageCanvas(PathWidth, PathHeight)
	if err != nil {
		return err
	}
	RenderPath(c, points)
	if err := c.SavePNG(file); err != nil {
		return fmt.Errorf("save path image: %w", err)
	}
	return nil
}

// WriteSpeedometerPNG renders the gauge at the default size and saves it to file.
func WriteSpeedometerPNG(file string, speedKmh, heading float64) error {
	c, err := NewImageCanvas(SpeedometerSize, SpeedometerSize)
	if err != nil {
		return err
	}
	RenderSpeedometer(c, speedKmh, heading)
	if err := c.SavePNG(file); err != nil {
		return fmt.Errorf("save speedometer image: %w", err)
	}
	return nil
}
