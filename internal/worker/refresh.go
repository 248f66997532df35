package worker

import (
	"context"
	"errors"
	"fmt"
	"linkgap/internal/gap"
	"linkgap/pkg/logger"
	"linkgap/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitSnooze is how long a refresh job sleeps when the provider reports
// an exhausted budget. The shared limiter normally absorbs short exhaustions
// by blocking; the snooze only kicks in when a request already failed with a
// 429, so the budget window has genuinely run out.
const rateLimitSnooze = time.Minute

// RefreshWorker is a River worker that re-runs the gap analysis for a cached
// property, bypassing the cache so the stored result is replaced with fresh
// provider data. Provider-level rate limiting is handled by the shared client
// limiter, so concurrent refresh jobs and interactive analyses draw from the
// same budget.
type RefreshWorker struct {
	river.WorkerDefaults[gap.RefreshJobArgs]

	analyzer gap.Analyzer
}

// NewRefreshWorker constructs a RefreshWorker using the provided analyzer.
func NewRefreshWorker(analyzer gap.Analyzer) *RefreshWorker {
	return &RefreshWorker{analyzer: analyzer}
}

// Work executes a single refresh job, mapping analysis failures to
// appropriate River actions: permanently invalid input cancels the job,
// exhausted rate limits snooze it, anything else retries normally.
func (w *RefreshWorker) Work(ctx context.Context, job *river.Job[gap.RefreshJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("property", job.Args.Property))

	_, err := w.analyzer.Analyze(ctx, gap.Request{
		Property: job.Args.Property,
		Refresh:  true,
	})
	if err != nil {
		// Input that can never analyze successfully should not retry.
		if errors.Is(err, serrors.ErrBadRequest) ||
			errors.Is(err, gap.ErrUnsupportedIdentifier) ||
			errors.Is(err, gap.ErrNoCompetitors) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error refreshing gap analysis", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not refresh gap analysis: %w", err)
	}

	logger.Info(ctx, "gap analysis refreshed")

	return nil
}
