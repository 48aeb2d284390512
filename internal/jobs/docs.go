// Package jobs provides scheduled background tasks for the campus delivery
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to simulate platform activity in demo and load-testing environments.
//
// # Available Jobs
//
// 1. OrderLoadJob - Periodically places synthetic orders against random
// restaurants on behalf of a pool of demo customers.
//
// 2. FulfillmentJob - Periodically takes the oldest orders in each active
// status and advances them one lifecycle step, so synthetic orders flow
// SENT -> RECEIVED -> SHIPPING -> DELIVERED over time.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(loadJob, fulfillmentJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Either job may be nil in the manager; disabled jobs are simply skipped.
//
// # Error Handling
//
// Both jobs go through the real command handlers, so every synthetic order
// and every status advance obeys the same validation as a live request. Tick
// errors are logged and the schedule keeps running.
package jobs
