// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package travel

import (
	"fmt"
	"math"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// FormatTime renders seconds as "Hh Mm", "Mm Ss" or "Ss", dropping the
// largest zero units.
func FormatTime(seconds float64) string {
	hours := int64(math.Floor(seconds / 3600))
	minutes := int64(math.Floor(math.Mod(seconds, 3600) / 60))
	secs := int64(math.Floor(math.Mod(seconds, 60)))

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// FormatDistance renders km as whole meters below 1 km and as km with two
// decimals otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int64(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.2fkm", km)
}

// FormatSpeed renders km/h with one decimal.
func FormatSpeed(kmh float64) string {
	return fmt.Sprintf("%.1f km/h", kmh)
}

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CardinalDirection maps a heading in degrees to an 8-point compass label.
// Headings outside [0, 360) are normalized first.
func CardinalDirection(heading float64) string {
	h := math.Mod(heading, 360)
	if h < 0 {
		h += 360
	}
	idx := int(math.Round(h/45)) % len(compassPoints)
	return compassPoints[idx]
}

// Trivia figures shown next to the statistics.
const (
	footballFieldKm = 0.4
	moonDistanceKm  = 384400.0
)

// FunFacts are playful restatements of a trip's distance.
type FunFacts struct {
	Meters         int64 `json:"meters"`
	FootballFields int64 `json:"footballFields"`
	// DaysToMoon is -1 when the average speed is zero.
	DaysToMoon int64 `json:"daysToMoon"`
}

// ComputeFunFacts returns ok=false when no distance has been covered.
func ComputeFunFacts(s models.TravelStats) (FunFacts, bool) {
	if s.TotalDistance <= 0 {
		return FunFacts{}, false
	}
	facts := FunFacts{
		Meters:         int64(math.Round(s.TotalDistance * 1000)),
		FootballFields: int64(math.Floor(s.TotalDistance / footballFieldKm)),
		DaysToMoon:     -1,
	}
	if s.AverageSpeed > 0 {
		days := (moonDistanceKm / s.TotalDistance) * (s.TotalTime / 3600 / 24)
		facts.DaysToMoon = int64(math.Round(days))
	}
	return facts, true
}
