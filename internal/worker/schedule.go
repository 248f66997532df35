package worker

import (
	"context"
	"fmt"
	"linkgap/internal/gap"
	"linkgap/pkg/logger"
	"linkgap/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// scheduleBatchSize caps how many cached properties one scheduler run may
// enqueue refreshes for.
const scheduleBatchSize = 500

// ScheduleWorker enqueues background refreshes for cached properties so the
// cache stays warm and interactive requests rarely pay for provider fetches.
// Refresh jobs are unique per property, so re-enqueueing an already queued
// property is a no-op.
type ScheduleWorker struct {
	river.WorkerDefaults[gap.ScheduleRefreshJobArgs]

	storage storage.AllStorage
}

// NewScheduleWorker constructs a ScheduleWorker using the provided storage.
func NewScheduleWorker(st storage.AllStorage) *ScheduleWorker {
	return &ScheduleWorker{storage: st}
}

func (w *ScheduleWorker) Work(ctx context.Context, job *river.Job[gap.ScheduleRefreshJobArgs]) error {
	properties, err := w.storage.CachedProperties(ctx, scheduleBatchSize)
	if err != nil {
		return fmt.Errorf("could not list cached properties: %w", err)
	}

	enqueued := 0
	for _, property := range properties {
		added, err := w.storage.AddJob(ctx, gap.RefreshJobArgs{Property: property}, nil)
		if err != nil {
			return fmt.Errorf("could not enqueue refresh for %s: %w", property, err)
		}
		if added {
			enqueued++
		}
	}

	if enqueued > 0 {
		logger.Info(ctx, "scheduled background refreshes", zap.Int("count", enqueued))
	}

	return nil
}
