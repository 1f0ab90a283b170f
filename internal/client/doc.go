// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, the session store, and the
// realtime stream layer into a single process lifecycle.
package client
