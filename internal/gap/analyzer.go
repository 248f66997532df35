package gap

import (
	"context"
	"linkgap/internal/config"
	"linkgap/pkg/backlinks"
	"linkgap/pkg/domain"
	"linkgap/pkg/logger"
	"linkgap/pkg/serrors"
	"linkgap/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options configure the analysis pipeline: fan-out width and caps, the
// intersection threshold, the classifier boundaries and result caching.
// These settings are typically derived from application configuration.
type Options struct {
	// FetchLimit caps the referring domains fetched per site.
	FetchLimit int
	// FetchTimeout bounds a single profile fetch within the fan-out.
	FetchTimeout time.Duration
	// MaxConcurrentFetches bounds the fan-out width.
	MaxConcurrentFetches int
	// CompetitorLimit caps how many competitors discovery may return.
	CompetitorLimit int
	// Country is the default country code for competitor discovery.
	Country string
	// MinCompetitorsLinked is the minimum number of competitors a referring
	// domain must link to before it counts as a gap.
	MinCompetitorsLinked int
	// HighAuthorityRating is the domain rating at or above which a gap counts
	// as high-authority for starvation classification.
	HighAuthorityRating float64
	// SevereGapCount and ModerateGapCount are the inclusive high-authority
	// gap counts at which starvation becomes severe resp. moderate.
	SevereGapCount   int
	ModerateGapCount int
	// CacheTTL is how long a cached result stays fresh.
	CacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FetchLimit:           cfg.Gap.FetchLimit,
		FetchTimeout:         cfg.Gap.FetchTimeout,
		MaxConcurrentFetches: cfg.Gap.MaxConcurrentFetches,
		CompetitorLimit:      cfg.Gap.CompetitorLimit,
		Country:              cfg.Gap.Country,
		MinCompetitorsLinked: cfg.Gap.MinCompetitorsLinked,
		HighAuthorityRating:  cfg.Gap.HighAuthorityRating,
		SevereGapCount:       cfg.Gap.SevereGapCount,
		ModerateGapCount:     cfg.Gap.ModerateGapCount,
		CacheTTL:             cfg.Gap.CacheTTL,
	}
}

// analyzer is the concrete implementation of the Analyzer interface. It
// coordinates the pipeline stages and result caching.
type analyzer struct {
	options  Options
	provider backlinks.Client
	storage  storage.Storage
	tracer   trace.Tracer
}

// New constructs an Analyzer backed by the given provider client and storage.
func New(provider backlinks.Client, st storage.Storage, options Options) Analyzer {
	return &analyzer{
		options:  options,
		provider: provider,
		storage:  st,
		tracer:   otel.Tracer("linkgap/gap"),
	}
}

// Analyze runs the full pipeline for one property: normalize, serve from
// cache when possible, resolve competitors, aggregate profiles, intersect,
// score and classify, then cache the result.
//
// Cache rules: manual-competitor runs and refresh runs never read the cache,
// and manual runs are never written to it (the competitor set is
// caller-chosen, so the result does not represent the property in general).
// Cache failures in either direction are logged and the analysis proceeds; a
// broken cache degrades latency, never availability.
func (a *analyzer) Analyze(ctx context.Context, req Request) (*domain.AnalysisResult, error) {
	started := time.Now()

	target, err := NormalizeDomain(req.Property)
	if err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "gap.Analyze",
		trace.WithAttributes(attribute.String("gap.target", target)))
	defer span.End()

	manual := len(req.Competitors) > 0
	if !manual && !req.Refresh {
		if cached := a.fromCache(ctx, target); cached != nil {
			notify(req.Progress, Progress{Stage: StageDone})

			return cached, nil
		}
	}

	notify(req.Progress, Progress{Stage: StageResolving})
	competitors, err := a.resolveCompetitors(ctx, target, req.Competitors, req.Country)
	if err != nil {
		return nil, err
	}

	notify(req.Progress, Progress{Stage: StageFetching, Total: len(competitors) + 1})
	agg, err := a.aggregate(ctx, target, competitors, req.Progress)
	if err != nil {
		return nil, err
	}

	notify(req.Progress, Progress{Stage: StageIntersecting})
	gaps := ComputeGaps(agg, a.options.MinCompetitorsLinked)

	notify(req.Progress, Progress{Stage: StageScoring})
	gaps = ScoreGaps(gaps, competitors)
	starvation, high := Classify(gaps, a.options.HighAuthorityRating, a.options.SevereGapCount, a.options.ModerateGapCount)

	analyzed := 0
	for _, p := range agg.Profiles {
		if p.Fetched {
			analyzed++
		}
	}

	result := &domain.AnalysisResult{
		UserDomain:           target,
		Competitors:          competitors,
		GapDomains:           gaps,
		TotalGaps:            len(gaps),
		HighAuthorityGaps:    high,
		ThreadStarvation:     starvation,
		CompetitorsRequested: len(competitors),
		CompetitorsAnalyzed:  analyzed,
		AnalyzedAt:           time.Now().UTC(),
		ElapsedSeconds:       time.Since(started).Seconds(),
	}

	if !manual {
		a.toCache(ctx, target, result)
	}
	notify(req.Progress, Progress{Stage: StageDone})

	return result, nil
}

// fromCache returns a fresh cached result for the property, or nil. Lookup
// errors are logged and treated as a miss.
func (a *analyzer) fromCache(ctx context.Context, target string) *domain.AnalysisResult {
	cached, err := a.storage.AnalysisByProperty(ctx, target)
	if err != nil {
		logger.Warn(ctx, "analysis cache lookup failed, running fresh analysis",
			zap.String("property", target), zap.Error(err))

		return nil
	}
	if cached == nil || cached.Expired(time.Now()) {
		return nil
	}

	return &cached.Result
}

// toCache stores a completed result. Write errors are logged, never returned:
// the analysis already succeeded.
func (a *analyzer) toCache(ctx context.Context, target string, result *domain.AnalysisResult) {
	expiresAt := time.Now().Add(a.options.CacheTTL)
	if err := a.storage.PutAnalysis(ctx, target, *result, expiresAt); err != nil {
		logger.Error(ctx, "could not cache analysis result",
			zap.String("property", target), zap.Error(err))
	}
}

// CachedAnalysis returns the cached result for a property without running an
// analysis. A nil result means no cached entry exists (expired entries are
// treated as absent).
func (a *analyzer) CachedAnalysis(ctx context.Context, property string) (*storage.CachedAnalysis, error) {
	target, err := NormalizeDomain(property)
	if err != nil {
		return nil, err
	}

	cached, err := a.storage.AnalysisByProperty(ctx, target)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "loading cached analysis")
	}
	if cached == nil || cached.Expired(time.Now()) {
		return nil, nil
	}

	return cached, nil
}
