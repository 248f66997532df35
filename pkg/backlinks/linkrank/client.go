// Package linkrank provides a backlinks.Client implementation backed by the
// LinkRank REST API.
package linkrank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"linkgap/pkg/backlinks"
	"linkgap/pkg/domain"
	"linkgap/pkg/metrics"
	"linkgap/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const baseURL = "https://api.linkrank.io/v2"

// Client talks to the LinkRank REST API and fulfills the backlinks.Client
// interface. All requests share a cooperative rate limiter, so it is safe for
// concurrent use by the aggregator's fan-out.
type Client struct {
	httpClient *http.Client            // httpClient performs HTTP requests to LinkRank
	token      string                  // token is the API key for LinkRank
	limiter    *backlinks.Limiter      // limiter enforces the provider's request budget
	requests   metric.Int64Counter     // requests counts provider requests by endpoint and status
	latency    metric.Float64Histogram // latency records provider request durations by endpoint
}

// ParseRateLimit extracts LinkRank rate-limit information from the HTTP
// response headers and converts it into a backlinks.RateLimitStatus.
func ParseRateLimit(h http.Header) (backlinks.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	limit := atoi(h.Get("X-Rate-Limit-Limit"))
	remaining := atoi(h.Get("X-Rate-Limit-Remaining"))

	resetStr := h.Get("X-Rate-Limit-Reset")
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return backlinks.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	return backlinks.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}, nil
}

// get performs one rate-limited GET against path with the given query and
// returns the response body plus the parsed rate-limit status.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, backlinks.RateLimitStatus, error) {
	if err := c.limiter.Reserve(ctx); err != nil {
		return nil, backlinks.RateLimitStatus{}, fmt.Errorf("could not reserve rate limit: %w", err)
	}
	var rl backlinks.RateLimitStatus
	defer func() { c.limiter.Finished(ctx, rl) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, rl, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Api-Key", c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.latency.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("endpoint", path)))
	if err != nil {
		c.requests.Add(ctx, 1, metric.WithAttributes(
			attribute.String("endpoint", path),
			attribute.String("status", "transport_error")))

		return nil, rl, serrors.Wrap(serrors.ErrUpstream, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", path),
		attribute.String("status", strconv.Itoa(resp.StatusCode))))

	rl, err = ParseRateLimit(resp.Header)
	if err != nil {
		return nil, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rl, serrors.With(serrors.ErrUpstream,
			"request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, rl, nil
}

// RefDomains fetches up to limit referring domains for the given site.
// https://docs.linkrank.io/api/v2/refdomains
func (c *Client) RefDomains(ctx context.Context,
	site string,
	limit int) ([]domain.ReferringDomain, backlinks.RateLimitStatus, error) {
	q := url.Values{}
	q.Set("target", site)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order_by", "domain_rating:desc")

	b, rl, err := c.get(ctx, "/refdomains", q)
	if err != nil {
		return nil, rl, err
	}

	var rs struct {
		RefDomains []struct {
			Domain       string    `json:"domain"`
			DomainRating float64   `json:"domain_rating"`
			Backlinks    int       `json:"backlinks"`
			RefPages     int       `json:"ref_pages"`
			FirstSeen    time.Time `json:"first_seen"`
			LastVisited  time.Time `json:"last_visited"`
		} `json:"refdomains"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}

	out := make([]domain.ReferringDomain, 0, len(rs.RefDomains))
	for _, rd := range rs.RefDomains {
		out = append(out, domain.ReferringDomain{
			Domain:       rd.Domain,
			DomainRating: rd.DomainRating,
			Backlinks:    rd.Backlinks,
			RefPages:     rd.RefPages,
			FirstSeen:    rd.FirstSeen,
			LastVisited:  rd.LastVisited,
		})
	}

	return out, rl, nil
}

// Competitors fetches up to limit organic competitors for the given site in
// the given country.
// https://docs.linkrank.io/api/v2/competitors
func (c *Client) Competitors(ctx context.Context,
	site string,
	country string,
	limit int) ([]domain.Competitor, backlinks.RateLimitStatus, error) {
	q := url.Values{}
	q.Set("target", site)
	q.Set("limit", strconv.Itoa(limit))
	if country != "" {
		q.Set("country", country)
	}

	b, rl, err := c.get(ctx, "/competitors", q)
	if err != nil {
		return nil, rl, err
	}

	var rs struct {
		Competitors []struct {
			Domain          string  `json:"domain"`
			CommonKeywords  int     `json:"common_keywords"`
			DomainRating    float64 `json:"domain_rating"`
			OrganicKeywords int     `json:"organic_keywords"`
			OrganicTraffic  int     `json:"organic_traffic"`
		} `json:"competitors"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}

	out := make([]domain.Competitor, 0, len(rs.Competitors))
	for _, comp := range rs.Competitors {
		out = append(out, domain.Competitor{
			Domain:          comp.Domain,
			CommonKeywords:  comp.CommonKeywords,
			DomainRating:    comp.DomainRating,
			OrganicKeywords: comp.OrganicKeywords,
			OrganicTraffic:  comp.OrganicTraffic,
		})
	}

	return out, rl, nil
}

// Ensure Client conforms to the backlinks.Client interface at compile time.
var _ backlinks.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API token to
// interact with the LinkRank API.
func New(httpClient *http.Client, token string) *Client {
	meter := otel.Meter("linkgap/backlinks/linkrank")
	requests, _ := meter.Int64Counter("linkrank_requests_total",
		metric.WithDescription("Number of requests sent to the LinkRank API"))
	latency, _ := meter.Float64Histogram("linkrank_request_duration_seconds",
		metric.WithDescription("Duration of requests sent to the LinkRank API"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))

	return &Client{
		httpClient: httpClient,
		token:      token,
		limiter:    backlinks.NewLimiter(),
		requests:   requests,
		latency:    latency,
	}
}
