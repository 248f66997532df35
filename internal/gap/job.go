package gap

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RefreshJobArgs contains the arguments for a background re-analysis job
// submitted to River. The property is the unique key so at most one refresh
// per property is ever queued at a time.
type RefreshJobArgs struct {
	// Property is the site identifier to re-analyze. It is marked as unique
	// so River can enforce one job per property according to
	// InsertOpts.UniqueOpts.
	Property string `json:"property" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args RefreshJobArgs) Kind() string { return "RefreshGapAnalysisJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// A refresh is deduplicated against every non-terminal state; re-running the
// same property twice back to back would just burn provider quota.
func (args RefreshJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// CleanupJobArgs is the argument type of the periodic job that evicts
// expired cached analyses.
type CleanupJobArgs struct{}

// Kind returns the River job kind of the cache cleanup job.
func (args CleanupJobArgs) Kind() string { return "CleanupExpiredAnalysesJob" }

// ScheduleRefreshJobArgs is the argument type of the periodic job that
// enqueues background refreshes for cached properties, keeping the cache warm
// without interactive requests paying for provider fetches.
type ScheduleRefreshJobArgs struct{}

// Kind returns the River job kind of the refresh scheduler job.
func (args ScheduleRefreshJobArgs) Kind() string { return "ScheduleRefreshJobsJob" }
