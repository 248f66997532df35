package postgres_test

import (
	"context"
	"linkgap/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleResult(target string) domain.AnalysisResult {
	return domain.AnalysisResult{
		UserDomain: target,
		Competitors: []domain.Competitor{
			{Domain: "rival.com", CommonKeywords: 120, DomainRating: 61},
		},
		GapDomains: []domain.GapDomain{
			{
				Domain:                 "authority.org",
				DomainRating:           72,
				CompetitorsLinkedCount: 2,
				CompetitorsLinked:      []string{"rival.com", "other.com"},
				ThreadResonance:        84,
			},
		},
		TotalGaps:            1,
		HighAuthorityGaps:    1,
		ThreadStarvation:     domain.StarvationMild,
		CompetitorsRequested: 2,
		CompetitorsAnalyzed:  2,
		AnalyzedAt:           time.Now().UTC().Truncate(time.Second),
		ElapsedSeconds:       1.25,
	}
}

func TestPgSQL_PutAndGetAnalysis(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	res := sampleResult("example.com")
	expiresAt := time.Now().Add(7 * 24 * time.Hour).UTC()

	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:example.com", res, expiresAt))

	cached, err := pg.AnalysisByProperty(ctx, "sc-domain:example.com")
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, "sc-domain:example.com", cached.Property)
	require.Equal(t, res.UserDomain, cached.Result.UserDomain)
	require.Equal(t, res.GapDomains, cached.Result.GapDomains)
	require.False(t, cached.Expired(time.Now()))
	require.False(t, cached.CreatedAt.IsZero())
}

func TestPgSQL_GetAnalysis_Miss(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	cached, err := pg.AnalysisByProperty(context.Background(), "sc-domain:nope.com")
	require.NoError(t, err)
	require.Nil(t, cached)
}

func TestPgSQL_PutAnalysis_UpsertReplaces(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	expiresAt := time.Now().Add(7 * 24 * time.Hour).UTC()

	first := sampleResult("example.com")
	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:example.com", first, expiresAt))

	second := sampleResult("example.com")
	second.TotalGaps = 9
	second.GapDomains = nil
	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:example.com", second, expiresAt.Add(time.Hour)))

	cached, err := pg.AnalysisByProperty(ctx, "sc-domain:example.com")
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, 9, cached.Result.TotalGaps)
	require.Empty(t, cached.Result.GapDomains)
	require.True(t, cached.UpdatedAt.After(cached.CreatedAt) || cached.UpdatedAt.Equal(cached.CreatedAt))
}

func TestPgSQL_DeleteExpiredAnalyses(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:old.com", sampleResult("old.com"),
		time.Now().Add(-time.Hour).UTC()))
	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:fresh.com", sampleResult("fresh.com"),
		time.Now().Add(time.Hour).UTC()))

	n, err := pg.DeleteExpiredAnalyses(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	gone, err := pg.AnalysisByProperty(ctx, "sc-domain:old.com")
	require.NoError(t, err)
	require.Nil(t, gone)

	kept, err := pg.AnalysisByProperty(ctx, "sc-domain:fresh.com")
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestPgSQL_CachedProperties(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:a.com", sampleResult("a.com"),
		time.Now().Add(time.Hour).UTC()))
	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:expired.com", sampleResult("expired.com"),
		time.Now().Add(-time.Hour).UTC()))
	require.NoError(t, pg.PutAnalysis(ctx, "sc-domain:b.com", sampleResult("b.com"),
		time.Now().Add(time.Hour).UTC()))

	props, err := pg.CachedProperties(ctx, 10)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"sc-domain:a.com", "sc-domain:b.com"}, props)
}
