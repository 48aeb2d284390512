package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderLoadJob   *OrderLoadJob
	fulfillmentJob *FulfillmentJob
}

// NewJobManager creates a new job manager. Either job may be nil, meaning
// that job is disabled by configuration.
func NewJobManager(orderLoadJob *OrderLoadJob, fulfillmentJob *FulfillmentJob) *JobManager {
	return &JobManager{
		orderLoadJob:   orderLoadJob,
		fulfillmentJob: fulfillmentJob,
	}
}

// StartAll starts every enabled job.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderLoadJob != nil {
		if err := jm.orderLoadJob.Start(); err != nil {
			return fmt.Errorf("failed to start order load job: %w", err)
		}
	}

	if jm.fulfillmentJob != nil {
		if err := jm.fulfillmentJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			if jm.orderLoadJob != nil {
				jm.orderLoadJob.Stop()
			}
			return fmt.Errorf("failed to start fulfillment job: %w", err)
		}
	}

	return nil
}

// StopAll stops every enabled job gracefully.
func (jm *JobManager) StopAll() {
	if jm.fulfillmentJob != nil {
		jm.fulfillmentJob.Stop()
	}
	if jm.orderLoadJob != nil {
		jm.orderLoadJob.Stop()
	}
}
