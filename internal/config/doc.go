// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields still zero after merging receive defaults; in particular the HTTP
// server binds 0.0.0.0 on PORT, which defaults to 5001.
// The main entry point is [GetStructuredConfig].
package config
