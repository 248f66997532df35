package gap

import (
	"context"
	"linkgap/pkg/domain"
	"linkgap/pkg/storage"
)

// Request describes one gap analysis run.
type Request struct {
	// Property is the site identifier to analyze. It is also the cache key.
	Property string
	// Competitors, when non-empty, is a caller-supplied manual competitor
	// list. Manual runs bypass the cache entirely: the competitor set is
	// caller-chosen, so the result is session-specific.
	Competitors []string
	// Country is the country code for competitor discovery; the configured
	// default is used when empty. Ignored for manual runs.
	Country string
	// Refresh forces a fresh run even when a cached result exists.
	Refresh bool
	// Progress, when non-nil, receives stage events during the run. Sends
	// never block; slow consumers miss events rather than stalling the
	// analysis.
	Progress chan<- Progress
}

// Analyzer runs competitive backlink gap analyses.
//
//go:generate mockgen -package mockgap -source=interface.go -destination=mock/mockgap.go *
type Analyzer interface {
	// Analyze runs (or serves from cache) the gap analysis for the requested
	// property. The error is one of the engine kinds (ErrNoCompetitors,
	// ErrTargetUnreachable, ErrUnsupportedIdentifier) or a generic serrors
	// kind for input problems.
	Analyze(ctx context.Context, req Request) (*domain.AnalysisResult, error)

	// CachedAnalysis returns the cached result for a property without running
	// an analysis. A nil result means no fresh cached entry exists.
	CachedAnalysis(ctx context.Context, property string) (*storage.CachedAnalysis, error)
}
