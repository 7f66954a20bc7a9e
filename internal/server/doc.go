// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the dashboard's transport servers.
//
// It owns the HTTP server (dashboard pages and JSON API) and the optional
// gRPC health server, handling startup, signal handling and graceful
// shutdown of every enabled transport.
package server
