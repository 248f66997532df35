// Package backlinks defines interfaces and data types used to fetch backlink
// profiles and competitor data from a backing provider.
package backlinks

import (
	"context"
	"linkgap/pkg/domain"
	"time"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// underlying backlink data provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Client is the abstraction for backlink data providers. Implementations
// fetch referring-domain profiles and discover organic competitors.
//
//go:generate mockgen -package mockbacklinks -source=interface.go -destination=mock/mockbacklinks.go *
type Client interface {
	// RefDomains returns up to limit referring domains of the given site,
	// plus the provider's current rate-limit status.
	RefDomains(ctx context.Context, site string, limit int) ([]domain.ReferringDomain, RateLimitStatus, error)
	// Competitors returns up to limit organic competitors of the given site
	// for the given country code. The result may be empty.
	Competitors(ctx context.Context, site string, country string, limit int) ([]domain.Competitor, RateLimitStatus, error)
}
