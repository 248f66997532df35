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

// CleanupWorker evicts expired cached analyses. It runs as a periodic job;
// reads already ignore expired rows, so eviction is purely about reclaiming
// space.
type CleanupWorker struct {
	river.WorkerDefaults[gap.CleanupJobArgs]

	storage storage.AnalysisStorage
}

// NewCleanupWorker constructs a CleanupWorker using the provided storage.
func NewCleanupWorker(st storage.AnalysisStorage) *CleanupWorker {
	return &CleanupWorker{storage: st}
}

func (w *CleanupWorker) Work(ctx context.Context, job *river.Job[gap.CleanupJobArgs]) error {
	deleted, err := w.storage.DeleteExpiredAnalyses(ctx)
	if err != nil {
		return fmt.Errorf("could not delete expired analyses: %w", err)
	}

	if deleted > 0 {
		logger.Info(ctx, "evicted expired cached analyses", zap.Int64("count", deleted))
	}

	return nil
}
