// SPDX-License-Identifier: Apache-2.0

// Package stream implements the realtime synchronization layer of the
// work-link client: long-lived, authenticated server-push event streams
// that deliver typed domain events to reactive consumers.
//
// The layer is built from four pieces, leaves first:
//
//   - [Transport] opens one HTTP streaming connection per call and reports
//     raw server-sent frames until the server closes the link or it fails.
//   - [Client] (one per resource family) owns a single transport connection,
//     decodes each frame into the family's event union, and republishes it
//     on a broadcast [Hub].
//   - [Hub] fans events out to any number of subscribers with a bounded
//     per-subscriber buffer; publishing never blocks, late subscribers only
//     see future events.
//   - [Registry] lazily constructs exactly one typed client per resource
//     family and exposes bulk ConnectAll/DisconnectAll operations for the
//     application bootstrap and the logout flow.
//
// The layer never retries on its own: any connect-time or mid-stream failure
// returns the client to the idle state, logged but otherwise silent, and a
// future explicit Connect (idempotent, usable from a keep-alive worker) is
// the only way back.
package stream
