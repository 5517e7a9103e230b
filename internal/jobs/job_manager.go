package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	reconciliationJob *PickupReconciliationJob
}

func NewJobManager(
	reconcileHandler ReconcilePickupsHandler,
	reconcileSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationJob: NewPickupReconciliationJob(reconcileHandler, reconcileSchedule, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start pickup reconciliation job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
