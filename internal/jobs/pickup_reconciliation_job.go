package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pickup/internal/core/application/usecases/commands"
)

// DefaultReconcileSchedule runs reconciliation every five minutes. The
// expression has a leading seconds field.
const DefaultReconcileSchedule = "0 */5 * * * *"

type ReconcilePickupsHandler interface {
	Handle(ctx context.Context, command commands.ReconcilePickupsCommand) error
}

// PickupReconciliationJob periodically settles ambiguous pickups. A pass that
// is still running when the next one is due makes the next one skip.
type PickupReconciliationJob struct {
	handler  ReconcilePickupsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPickupReconciliationJob(handler ReconcilePickupsHandler, schedule string, logger *slog.Logger) *PickupReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &PickupReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "pickup_reconciliation_job"),
	}
}

func (j *PickupReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *PickupReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pickup reconciliation job stopped")
}

func (j *PickupReconciliationJob) run() {
	ctx := context.Background()
	cmd := commands.NewReconcilePickupsCommand()

	if err := j.handler.Handle(ctx, cmd); err != nil {
		// nothing pending is the normal case
		if !errors.Is(err, commands.ErrNoAmbiguousPickups) {
			j.logger.ErrorContext(ctx, "Pickup reconciliation job failed", "error", err)
		}
	}
}
