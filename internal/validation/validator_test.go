// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/travelcompanion/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_LocationCandidate(t *testing.T) {
	lat, lng, ts := 0.0, 0.0, int64(0)

	tests := []struct {
		name       string
		input      models.LocationCandidate
		wantFields []string
	}{
		{
			name:  "zero values are present",
			input: models.LocationCandidate{Latitude: &lat, Longitude: &lng, Timestamp: &ts},
		},
		{
			name:       "missing latitude",
			input:      models.LocationCandidate{Longitude: &lng, Timestamp: &ts},
			wantFields: []string{"latitude"},
		},
		{
			name:       "everything missing",
			input:      models.LocationCandidate{},
			wantFields: []string{"latitude", "longitude", "timestamp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := strings.Join(err.Fields(), ","); got != strings.Join(tt.wantFields, ",") {
				t.Errorf("Fields() = %s, want %s", got, strings.Join(tt.wantFields, ","))
			}
		})
	}
}

type rangeStruct struct {
	Lat   float64 `json:"lat" validate:"latitude"`
	Kind  string  `json:"kind" validate:"oneof=json badger"`
	Count int     `validate:"min=1"`
}

func TestValidateStruct_Messages(t *testing.T) {
	err := ValidateStruct(&rangeStruct{Lat: 91, Kind: "csv", Count: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{
		"lat must be a valid latitude (-90 to 90)",
		"kind must be one of: json badger",
		"Count must be at least 1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}

	if tag := err.Errors()[0].Tag(); tag != "latitude" {
		t.Errorf("first tag = %q, want latitude", tag)
	}
}
