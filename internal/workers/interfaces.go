// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the dashboard's scheduled background jobs.
//
// Jobs are registered on a robfig/cron scheduler under a cron spec
// ("@every 6h", "*/5 * * * *"). Every run is logged, counted in the
// worker metrics and receives a context that is cancelled on Stop.
package workers

import "context"

// Worker is one background job.
//
// Run performs a single unit of work and returns. Scheduling is left to
// [Workers]; implementations must honour ctx cancellation.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
