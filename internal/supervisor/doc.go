// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

/*
Package supervisor provides process supervision using suture v4.

Both binaries run their long-lived components under the same three-layer
tree:

	RootSupervisor
	├── data-layer
	│   ├── tracking-control RunnerService (tracker)
	│   └── network-monitor RunnerService  (tracker)
	├── worker-layer
	│   ├── SyncService                    (tracker)
	│   ├── enrich RunnerService           (tracker)
	│   └── snapshot RunnerService         (tracker)
	└── api-layer
	    └── HTTPServerService              (server)

Crashed services are restarted with suture's failure decay and backoff.
Supervisor events are logged through sutureslog into the zerolog pipeline
(see logging.NewSlogLogger).

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return behavior:
  - Return nil: service stopped cleanly and will not be restarted
  - Return error: service crashed and will be restarted
  - Context canceled: shutdown requested, return promptly

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	return tree.Serve(ctx)

If services do not stop within the timeout, UnstoppedServiceReport lists them.
*/
package supervisor
