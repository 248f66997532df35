package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"linkgap/pkg/domain"
	"linkgap/pkg/storage"
	"time"
)

type PgAnalysis struct {
	Property string          `db:"property"`
	Result   json.RawMessage `db:"result"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	ExpiresAt time.Time    `db:"expires_at"`
}

func (p *PgAnalysis) ToDomain() (*storage.CachedAnalysis, error) {
	var result domain.AnalysisResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal analysis result: %w", err)
	}

	return &storage.CachedAnalysis{
		Property:  p.Property,
		Result:    result,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		ExpiresAt: p.ExpiresAt,
	}, nil
}

func (p *PgAnalysis) FromDomain(cached storage.CachedAnalysis) error {
	result, err := json.Marshal(cached.Result)
	if err != nil {
		return fmt.Errorf("could not marshal analysis result: %w", err)
	}

	*p = PgAnalysis{
		Property: cached.Property,
		Result:   result,
		UpdatedAt: sql.NullTime{
			Time:  cached.UpdatedAt,
			Valid: !cached.UpdatedAt.IsZero(),
		},
		ExpiresAt: cached.ExpiresAt,
	}

	return nil
}
