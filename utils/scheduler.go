package utils

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// CounterReconciler recomputes denormalized course counters.
type CounterReconciler interface {
	ReconcileCourseCounters(ctx context.Context) (int, error)
}

// InitializeReconcileScheduler registers the counter reconciliation job on
// schedule and starts the cron runner. Callers stop it on shutdown.
func InitializeReconcileScheduler(schedule string, reconciler CounterReconciler) (*cron.Cron, error) {
	log.Println("[SCHEDULER] Initializing course counter reconciliation...")

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { RunReconcile(reconciler) }); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[SCHEDULER] Reconciliation scheduled with %q", schedule)
	return c, nil
}

// RunReconcile performs one reconciliation pass.
func RunReconcile(reconciler CounterReconciler) {
	log.Println("[SCHEDULER] Reconciling course counters...")
	fixed, err := reconciler.ReconcileCourseCounters(context.Background())
	if err != nil {
		log.Printf("[SCHEDULER] Error reconciling course counters: %v", err)
		return
	}
	log.Printf("[SCHEDULER] Reconciliation done, %d course(s) corrected", fixed)
}
