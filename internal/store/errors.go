// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactAlreadyExists is returned when a contact is created or
	// updated with a phone number another contact already has.
	ErrContactAlreadyExists = errors.New("phone number already exists")

	// ErrContactNotFound is returned when an update or delete targets a
	// contact id that does not exist.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrCallNotFound is returned when an update targets a call id that does
	// not exist, or a transcript message references an unknown call.
	ErrCallNotFound = errors.New("call was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Errors of the file-backed stores.
var (
	// ErrReadingSettings is returned when the settings file exists but cannot
	// be read or parsed.
	ErrReadingSettings = errors.New("error reading settings file")

	// ErrWritingSettings is returned when the settings file cannot be written.
	ErrWritingSettings = errors.New("error writing settings file")

	// ErrReadingAgentConfig is returned when the agent persona file exists
	// but cannot be read or decoded.
	ErrReadingAgentConfig = errors.New("error reading agent config")

	// ErrWritingAgentConfig is returned when the agent persona file cannot
	// be written.
	ErrWritingAgentConfig = errors.New("error writing agent config")
)
