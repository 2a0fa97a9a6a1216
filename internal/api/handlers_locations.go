// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/models"
	"github.com/tomtom215/travelcompanion/internal/validation"
)

// ListLocations returns the whole history.
//
// @Summary List locations
// @Description Returns every stored location in insertion order. No pagination.
// @Tags Locations
// @Produce json
// @Success 200 {array} models.LocationRecord
// @Failure 500 {object} models.ErrorResponse "Failed to fetch locations"
// @Router /locations [get]
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListAll(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, msgFetchFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// CreateLocation appends one location.
//
// @Summary Append a location
// @Description Stores a position fix. latitude, longitude and timestamp are required; 0 is a valid value.
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body models.LocationCandidate true "Position fix"
// @Success 201 {object} models.LocationRecord
// @Failure 400 {object} models.ErrorResponse "Missing required fields or invalid JSON body"
// @Failure 415 "Content-Type is not application/json"
// @Failure 500 {object} models.ErrorResponse "Failed to save location"
// @Router /locations [post]
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var candidate models.LocationCandidate
	if err := decodeJSON(r, &candidate); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Rejected location body")
		respondError(w, r, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	if verr := validation.ValidateStruct(&candidate); verr != nil {
		logging.Ctx(r.Context()).Debug().Strs("fields", verr.Fields()).Msg("Location missing required fields")
		respondError(w, r, http.StatusBadRequest, msgMissingFields, nil)
		return
	}

	rec, err := h.store.Append(r.Context(), candidate)
	if err != nil {
		status, msg := storeErrorStatus(err, msgSaveFailed)
		respondError(w, r, status, msg, err)
		return
	}

	logging.Ctx(r.Context()).Debug().Str("id", rec.ID).Msg("Location stored")
	respondJSON(w, http.StatusCreated, rec)
}

// DeleteLocations clears the history.
//
// @Summary Delete all locations
// @Tags Locations
// @Produce json
// @Success 200 {object} models.MessageResponse "All locations deleted"
// @Failure 500 {object} models.ErrorResponse "Failed to delete locations"
// @Router /locations [delete]
func (h *Handler) DeleteLocations(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		respondError(w, r, http.StatusInternalServerError, msgDeleteFailed, err)
		return
	}
	logging.Ctx(r.Context()).Info().Msg("Location history cleared")
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: msgDeleted})
}

// GetLocation returns one record by id.
//
// @Summary Get a location
// @Tags Locations
// @Produce json
// @Param id path string true "Location id"
// @Success 200 {object} models.LocationRecord
// @Failure 404 {object} models.ErrorResponse "Location not found"
// @Failure 500 {object} models.ErrorResponse "Failed to fetch location"
// @Router /locations/{id} [get]
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		status, msg := storeErrorStatus(err, msgGetFailed)
		if status == http.StatusNotFound {
			err = nil
		}
		respondError(w, r, status, msg, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
