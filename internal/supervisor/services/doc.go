// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

/*
Package services provides suture.Service wrappers for the server and
tracker components.

Each wrapper translates a lifecycle pattern into suture's Serve:

	HTTPServerService  ListenAndServe / Shutdown  (*http.Server)
	SyncService        Start / Stop               (tracker.SyncTask)
	RunnerService      blocking Run(ctx)          (snapshot writer, enricher,
	                                               tracking controller, network poll)

Every wrapper returns ctx.Err() after a requested shutdown and a wrapped
error on failure, so the supervisor restarts only what actually crashed.
String() names the service in supervisor log events.
*/
package services
