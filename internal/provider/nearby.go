// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package provider

import (
	"context"
	"slices"
	"time"

	"github.com/tomtom215/travelcompanion/internal/models"
)

var mockSuggestions = []models.Suggestion{
	{ID: "1", Name: "Central Park Cafe", Type: models.SuggestionCafe, Distance: "0.3 km", Rating: 4.5,
		Description: "Cozy coffee shop with outdoor seating and fresh pastries"},
	{ID: "2", Name: "Mediterranean Grill", Type: models.SuggestionRestaurant, Distance: "0.5 km", Rating: 4.7,
		Description: "Authentic Mediterranean cuisine with vegetarian options"},
	{ID: "3", Name: "City Mall", Type: models.SuggestionShopping, Distance: "1.2 km", Rating: 4.2,
		Description: "Large shopping center with 100+ stores and restaurants"},
	{ID: "4", Name: "Shell Gas Station", Type: models.SuggestionGas, Distance: "0.8 km", Rating: 4.0,
		Description: "Full-service gas station with convenience store"},
	{ID: "5", Name: "Art Museum", Type: models.SuggestionAttraction, Distance: "2.1 km", Rating: 4.8,
		Description: "Contemporary art museum with rotating exhibitions"},
	{ID: "6", Name: "Riverside Restaurant", Type: models.SuggestionRestaurant, Distance: "1.5 km", Rating: 4.6,
		Description: "Fine dining with scenic river views and local cuisine"},
}

// MockNearby returns the same six suggestions for every coordinate.
type MockNearby struct {
	latency time.Duration
}

func NewMockNearby(latency time.Duration) *MockNearby {
	return &MockNearby{latency: latency}
}

// FetchNearby returns a fresh copy of the fixed suggestions.
func (m *MockNearby) FetchNearby(ctx context.Context, _, _ float64) ([]models.Suggestion, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	return slices.Clone(mockSuggestions), nil
}
