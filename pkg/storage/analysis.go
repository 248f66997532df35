package storage

import (
	"context"
	"linkgap/pkg/domain"
	"time"
)

// CachedAnalysis is an analysis result persisted in the cache together with
// its expiry metadata.
type CachedAnalysis struct {
	// Property is the cache key: the canonical hostname of the analyzed
	// property. Callers store and look up normalized domains only, so two
	// spellings of one property share a single entry.
	Property string
	// Result is the stored analysis payload.
	Result domain.AnalysisResult

	// CreatedAt is when the cache entry was first written.
	CreatedAt time.Time
	// UpdatedAt is when the entry was last overwritten by a fresh run.
	UpdatedAt time.Time
	// ExpiresAt is when the entry stops being served; expired rows are
	// removed by the cleanup job.
	ExpiresAt time.Time
}

// Expired reports whether the entry is past its expiry at the given time.
func (c *CachedAnalysis) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// AnalysisStorage defines the persistence operations of the analysis cache.
// Writes are upserts: two concurrent analyses of the same property may both
// store a result and the last write wins, which is acceptable given the long
// TTL.
type AnalysisStorage interface {
	// PutAnalysis inserts or replaces the cache entry for the given property.
	PutAnalysis(ctx context.Context, property string, result domain.AnalysisResult, expiresAt time.Time) error
	// AnalysisByProperty returns the cache entry for the property, including
	// an expired one, or nil when no entry exists. Callers decide whether an
	// expired entry is still usable.
	AnalysisByProperty(ctx context.Context, property string) (*CachedAnalysis, error)
	// DeleteExpiredAnalyses removes all entries whose expiry is in the past
	// and returns how many rows were deleted.
	DeleteExpiredAnalyses(ctx context.Context) (int64, error)
	// CachedProperties returns the property keys of all non-expired entries,
	// most recently updated first, limited by limit.
	CachedProperties(ctx context.Context, limit uint) ([]string, error)
}
