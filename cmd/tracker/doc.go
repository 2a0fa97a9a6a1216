// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

/*
Command tracker is the headless travel companion client.

It samples the device position, forwards each sample to the history
service every SYNC_INTERVAL, and keeps OUTPUT_DIR up to date with:

	path.png         the travelled path
	speedometer.png  current speed and heading
	map.geojson      path, start and current markers
	status.json      history, statistics, weather, nearby places, network

# Position Sources

POSITION_SOURCE selects where fixes come from:

	static  STATIC_LATITUDE / STATIC_LONGITUDE (default Central Park)
	nmea    NMEA 0183 from NMEA_DEVICE at NMEA_BAUD, or replayed from NMEA_FILE
	google  Google Geolocation API with GOOGLE_MAPS_API_KEY
	none    no source; tracking reports that geolocation is unsupported

# Signals

	SIGUSR1          toggle tracking
	SIGUSR2          clear the stored history
	SIGINT, SIGTERM  write a final snapshot and exit
*/
package main
