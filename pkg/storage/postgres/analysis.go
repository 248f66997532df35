package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"linkgap/pkg/domain"
	"time"

	"linkgap/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	analysesTable = "analyses"
)

// PutAnalysis inserts or replaces the cache entry for the given property.
// Concurrent writers for the same property race benignly: the last upsert
// wins.
func (p *PgSQL) PutAnalysis(ctx context.Context,
	property string,
	result domain.AnalysisResult,
	expiresAt time.Time) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = p.Builder.Insert(analysesTable).
		Rows(PgAnalysis{
			Property:  property,
			Result:    b,
			ExpiresAt: expiresAt,
		}).
		OnConflict(goqu.DoUpdate("property", goqu.Record{
			"result":     b,
			"expires_at": expiresAt,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store analysis into pg: %w", err)
	}

	return nil
}

// AnalysisByProperty returns the cache entry for the property, or nil when no
// entry exists. Expired rows are returned as-is; expiry policy is the
// caller's concern.
func (p *PgSQL) AnalysisByProperty(ctx context.Context, property string) (*storage.CachedAnalysis, error) {
	var row PgAnalysis
	found, err := p.Builder.From(analysesTable).
		Where(goqu.I("property").Eq(property)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch analysis by property: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteExpiredAnalyses removes every entry whose expiry is in the past and
// returns the number of deleted rows.
func (p *PgSQL) DeleteExpiredAnalyses(ctx context.Context) (int64, error) {
	res, err := p.Builder.From(analysesTable).
		Delete().
		Where(goqu.I("expires_at").Lte(goqu.L("CURRENT_TIMESTAMP"))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired analyses from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

// CachedProperties returns the property keys of all non-expired entries,
// most recently updated first.
func (p *PgSQL) CachedProperties(ctx context.Context, limit uint) ([]string, error) {
	var rows []PgAnalysis
	if err := p.Builder.From(analysesTable).
		Select("property", "result", "expires_at", "created_at", "updated_at").
		Where(goqu.I("expires_at").Gt(goqu.L("CURRENT_TIMESTAMP"))).
		Order(goqu.COALESCE(goqu.I("updated_at"), goqu.I("created_at")).Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch cached properties from pg: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Property)
	}

	return out, nil
}
