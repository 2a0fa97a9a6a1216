// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package models

// WeatherData is a point-in-time weather reading for a location.
type WeatherData struct {
	Temperature int    `json:"temperature"` // °C
	Condition   string `json:"condition"`   // sunny, cloudy, rainy
	Humidity    int    `json:"humidity"`    // percent
	WindSpeed   int    `json:"windSpeed"`   // km/h
	Visibility  int    `json:"visibility"`  // km
	Description string `json:"description"`
}

// Suggestion types.
const (
	SuggestionRestaurant = "restaurant"
	SuggestionCafe       = "cafe"
	SuggestionShopping   = "shopping"
	SuggestionGas        = "gas"
	SuggestionAttraction = "attraction"
)

// Suggestion is a nearby place of interest.
type Suggestion struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Distance    string  `json:"distance"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}
