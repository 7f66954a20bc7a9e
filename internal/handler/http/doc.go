// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the dashboard.
//
// It serves the HTML pages and the JSON API used by them. Tracing, access
// logging, metrics, compression, basic authentication and the dispatch rate
// limit are handled here before requests reach the service layer.
package http
