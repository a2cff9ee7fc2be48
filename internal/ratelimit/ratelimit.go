// Package ratelimit applies the browser path's politeness delay: a uniform
// random sleep between configured bounds before each page operation,
// grounded on original_source/api/services/scraper.py's _rate_limit. This
// is deliberately unrelated to golang.org/x/time/rate's token bucket — the
// source is randomized per-request politeness, not a shared budget.
package ratelimit

import (
	"context"
	"math/rand"
	"time"
)

// Limiter sleeps a uniform-random duration in [min, max] seconds before
// each call to Wait.
type Limiter struct {
	minSeconds float64
	maxSeconds float64
}

// New builds a Limiter for the given bounds (seconds). If max < min, max is
// treated as equal to min (a fixed delay).
func New(minSeconds, maxSeconds float64) *Limiter {
	if maxSeconds < minSeconds {
		maxSeconds = minSeconds
	}
	return &Limiter{minSeconds: minSeconds, maxSeconds: maxSeconds}
}

// Wait sleeps for a uniform-random duration in [min, max] seconds, or
// returns early if ctx is cancelled first.
func (l *Limiter) Wait(ctx context.Context) error {
	delay := l.minSeconds
	if l.maxSeconds > l.minSeconds {
		delay += rand.Float64() * (l.maxSeconds - l.minSeconds)
	}
	select {
	case <-time.After(time.Duration(delay * float64(time.Second))):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
