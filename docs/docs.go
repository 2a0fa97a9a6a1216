// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Always returns OK with the current server time",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.HealthStatus"}
                    }
                }
            }
        },
        "/locations": {
            "get": {
                "description": "Returns every stored location in insertion order. No pagination.",
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "List locations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LocationRecord"}}
                    },
                    "500": {
                        "description": "Failed to fetch locations",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Stores a position fix. latitude, longitude and timestamp are required; 0 is a valid value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Append a location",
                "parameters": [
                    {
                        "description": "Position fix",
                        "name": "location",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.LocationCandidate"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/models.LocationRecord"}
                    },
                    "400": {
                        "description": "Missing required fields or invalid JSON body",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "415": {
                        "description": "Content-Type is not application/json"
                    },
                    "500": {
                        "description": "Failed to save location",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Delete all locations",
                "responses": {
                    "200": {
                        "description": "All locations deleted",
                        "schema": {"$ref": "#/definitions/models.MessageResponse"}
                    },
                    "500": {
                        "description": "Failed to delete locations",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        },
        "/locations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Get a location",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Location id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.LocationRecord"}
                    },
                    "404": {
                        "description": "Location not found",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    },
                    "500": {
                        "description": "Failed to fetch location",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.LocationCandidate": {
            "type": "object",
            "required": ["latitude", "longitude", "timestamp"],
            "properties": {
                "address": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "timestamp": {"type": "integer"}
            }
        },
        "models.LocationRecord": {
            "type": "object",
            "properties": {
                "address": {"type": "string", "x-nullable": true},
                "id": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "timestamp": {"type": "integer"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Travel Companion API",
	Description:      "Location history service for the travel companion tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
