package worker

import (
	"context"
	"fmt"
	"linkgap/internal/gap"
	"linkgap/pkg/logger"
	"linkgap/pkg/storage"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// cleanupInterval is how often expired cached analyses are evicted.
const cleanupInterval = time.Hour

// refreshScheduleInterval is how often background refreshes are enqueued for
// cached properties. Refresh jobs are unique per property, so a shorter
// interval only costs one cheap query.
const refreshScheduleInterval = 24 * time.Hour

func Start(ctx context.Context, dbPool *pgxpool.Pool, analyzer gap.Analyzer, st storage.AllStorage) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRefreshWorker(analyzer))
	river.AddWorker(workers, NewCleanupWorker(st))
	river.AddWorker(workers, NewScheduleWorker(st))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10}, // TODO: make configurable
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(cleanupInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return gap.CleanupJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
			river.NewPeriodicJob(
				river.PeriodicInterval(refreshScheduleInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return gap.ScheduleRefreshJobArgs{}, nil
				},
				nil,
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
