// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/travelcompanion/internal/config"
	"github.com/tomtom215/travelcompanion/internal/middleware"
	"github.com/tomtom215/travelcompanion/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	basePath      string
	enableMetrics bool
	enableSwagger bool
}

// NewRouter creates a router for h using the server and security sections of cfg.
func NewRouter(h *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       h,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg.Security)),
		basePath:      normalizeBasePath(cfg.Server.BasePath),
		enableMetrics: cfg.Server.EnableMetrics,
		enableSwagger: cfg.Server.EnableSwagger,
	}
}

// normalizeBasePath returns "" for the root and "/x" otherwise.
func normalizeBasePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// Setup builds the HTTP handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	// Unknown path and unknown method on a known path both count as an unmatched route.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	api := func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/health", router.handler.Health)

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", router.handler.ListLocations)
			r.With(chimiddleware.AllowContentType("application/json")).
				Post("/", router.handler.CreateLocation)
			r.Delete("/", router.handler.DeleteLocations)
			r.Get("/{id}", router.handler.GetLocation)
		})
	}
	if router.basePath == "" {
		r.Group(api)
	} else {
		r.Route(router.basePath, api)
	}

	if router.enableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if router.enableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	return r
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, models.ErrorResponse{Error: msgRouteNotFound})
}
