// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package provider

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// Weather conditions reported by the mock.
const (
	ConditionSunny  = "sunny"
	ConditionCloudy = "cloudy"
	ConditionRainy  = "rainy"
)

const mockWeatherDescription = "Partly cloudy with light winds"

var conditions = []string{ConditionSunny, ConditionCloudy, ConditionRainy}

// MockWeather generates plausible readings after a simulated latency.
// The coordinate is ignored.
type MockWeather struct {
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockWeather creates a mock with the given latency and a randomly
// seeded generator.
func NewMockWeather(latency time.Duration) *MockWeather {
	return NewMockWeatherWithRand(latency, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewMockWeatherWithRand uses rng, for deterministic tests.
func NewMockWeatherWithRand(latency time.Duration, rng *rand.Rand) *MockWeather {
	return &MockWeather{latency: latency, rng: rng}
}

// FetchWeather returns temperature 20-35 °C, humidity 40-80 %, wind
// 5-20 km/h and visibility 8-15 km.
func (m *MockWeather) FetchWeather(ctx context.Context, _, _ float64) (models.WeatherData, error) {
	if err := wait(ctx, m.latency); err != nil {
		return models.WeatherData{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return models.WeatherData{
		Temperature: m.between(20, 15),
		Condition:   conditions[m.rng.IntN(len(conditions))],
		Humidity:    m.between(40, 40),
		WindSpeed:   m.between(5, 15),
		Visibility:  m.between(8, 7),
		Description: mockWeatherDescription,
	}, nil
}

// between returns round(base + U[0,1) * span).
func (m *MockWeather) between(base, span float64) int {
	return int(math.Round(base + m.rng.Float64()*span))
}
