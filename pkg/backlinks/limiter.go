package backlinks

import (
	"context"
	"fmt"
	"linkgap/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Limiter implements cooperative client-side rate limiting against the
// provider's request budget. An analysis fans out one request per competitor
// concurrently, and every request must pass through the same Limiter so the
// fan-out never exceeds the budget the provider last reported.
//
// The limiter tracks the last known upstream rate-limit status (lastStatus)
// and the number of requests currently in flight (inFlight). Before a request
// starts, Reserve is called to claim a slot from the current budget. The
// effective remaining budget is:
//
//	remaining := lastStatus.Remaining
//	if now > lastStatus.ResetAt { remaining = lastStatus.Limit }
//
// A request may start if remaining - inFlight > 0. When no budget is left,
// Reserve waits until either the ResetAt time is reached (budget replenishes
// to Limit) or another in-flight request finishes and signals finishedChan.
//
// After a request completes, Finished is called with the rate-limit status
// parsed from the response headers. It decrements inFlight, wakes one waiter,
// and merges the new status conservatively: a changed ResetAt is always
// adopted, otherwise Remaining is only replaced when it decreases. This
// prevents concurrent requests reporting slightly different views of the
// budget from inflating it.
//
// Bootstrap: before any response has been seen, lastStatus is a synthetic
// status with Limit=1, Remaining=1 and a far-future ResetAt, so exactly one
// probe request goes through to obtain real headers.
type Limiter struct {
	// mu protects inFlight and lastStatus.
	mu sync.Mutex
	// inFlight counts requests currently running.
	inFlight int
	// lastStatus is the most recent view of the upstream rate-limit headers.
	lastStatus *RateLimitStatus
	// finishedChan wakes goroutines blocked in Reserve when any in-flight
	// request completes. Sends are non-blocking and dropped if nobody waits.
	finishedChan chan struct{}
}

// NewLimiter constructs a Limiter with no budget information yet; the first
// Reserve admits a single probe request.
func NewLimiter() *Limiter {
	return &Limiter{
		finishedChan: make(chan struct{}),
	}
}

// Reserve claims one unit from the rate-limit budget or blocks until a unit
// becomes available. It returns an error only when ctx is canceled while
// waiting.
func (l *Limiter) Reserve(ctx context.Context) error {
	for {
		l.mu.Lock()

		if l.lastStatus == nil {
			// At startup allow one request to get feedback from the API.
			l.lastStatus = &RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				// Far-future reset so the first reservation doesn't unblock
				// due to a timer; replaced with real headers soon.
				ResetAt: time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := l.lastStatus.Remaining
		// If the reset time has passed, treat the full limit as remaining.
		if time.Now().UTC().After(l.lastStatus.ResetAt) {
			remaining = l.lastStatus.Limit
		}

		if remaining-l.inFlight > 0 {
			logger.Debug(ctx, "reserved provider rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", l.lastStatus.Limit),
				zap.Time("resetAt", l.lastStatus.ResetAt),
				zap.Int("inFlight", l.inFlight))
			l.inFlight++
			l.mu.Unlock()

			return nil
		}

		// Otherwise, wait for either the reset time (if in the future) or for
		// any request to finish, then retry.
		resetAt := l.lastStatus.ResetAt
		l.mu.Unlock()

		logger.Debug(ctx, "waiting for provider rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", l.inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-l.finishedChan:
			// loop to re-evaluate
			continue
		case <-time.After(time.Until(resetAt)):
			// Reset window elapsed; loop and try again.
			continue
		}
	}
}

// Finished releases the slot claimed by Reserve and merges the rate-limit
// status reported by the completed request.
func (l *Limiter) Finished(ctx context.Context, status RateLimitStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight > 0 {
		l.inFlight--
	} else {
		// Clamp in case of unexpected sequencing.
		l.inFlight = 0
	}

	// Wake exactly one waiter without blocking; drop the signal otherwise.
	select {
	case l.finishedChan <- struct{}{}:
	default:
	}

	// If the call didn't return any rate-limit info, keep our view.
	if status.ResetAt.IsZero() {
		return
	}

	log := func() {
		logger.Debug(ctx, "received provider rate limit status",
			zap.Int("limit", status.Limit),
			zap.Int("remaining", status.Remaining),
			zap.Time("resetAt", status.ResetAt),
			zap.Int("inFlight", l.inFlight))
	}

	// First observation: adopt it unconditionally.
	if l.lastStatus == nil {
		l.lastStatus = &status
		log()

		return
	}

	// If ResetAt changed, always adopt the new window.
	if !l.lastStatus.ResetAt.Equal(status.ResetAt) {
		l.lastStatus = &status
		log()

		return
	}

	// Otherwise prefer the lower Remaining to stay conservative under concurrency.
	if status.Remaining < l.lastStatus.Remaining {
		l.lastStatus = &status
		log()
	}
}
