// Package jobs runs the service's scheduled background work on
// github.com/robfig/cron/v3 with a seconds field.
//
// # Jobs
//
// PickupReconciliationJob settles pickups whose fulfillment request may have
// been applied upstream even though the shopper saw an error. It runs on
// RECONCILE_SCHEDULE (default every five minutes) and never sends a
// fulfillment request itself.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, cfg.ReconcileSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A pass with nothing to reconcile is silent. Any other failure is logged and
// the affected entries are retried on the next pass.
package jobs
