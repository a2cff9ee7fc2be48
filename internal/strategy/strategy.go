// Package strategy implements the per-ATS job-posting fetchers (Greenhouse,
// Lever, Workday, and a generic headless-DOM fallback) and the shared
// decorator that falls back to the generic strategy whenever a specific
// one fails with a classified ScrapeError.
package strategy

import (
	"context"
	"errors"
	"fmt"

	"auros/internal/ats"
)

// Posting is one normalized job posting returned by any strategy.
type Posting struct {
	Title       string
	URL         string
	Description string
}

// MaxPostingsPerCompany caps every strategy's result list.
const MaxPostingsPerCompany = 20

// ScrapeError marks a failure that should trigger the generic fallback
// rather than aborting the company's scan outright.
type ScrapeError struct {
	Source  string
	Message string
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// IsScrapeError reports whether err is a classified ScrapeError.
func IsScrapeError(err error) bool {
	var se *ScrapeError
	return errors.As(err, &se)
}

// Strategy fetches postings for one company's careers URL.
type Strategy interface {
	Fetch(ctx context.Context, careersURL string) ([]Posting, error)
}

// Dispatcher selects and runs the right strategy for a careers URL,
// falling back to Generic on any classified ScrapeError from an
// ATS-specific strategy.
type Dispatcher struct {
	Greenhouse Strategy
	Lever      Strategy
	Workday    Strategy
	Generic    Strategy
}

// Fetch dispatches by ats.Detect(careersURL); a classified failure from the
// selected specific strategy falls through to the generic renderer. The
// result is always truncated to MaxPostingsPerCompany.
func (d *Dispatcher) Fetch(ctx context.Context, careersURL string) ([]Posting, error) {
	var (
		postings []Posting
		err      error
	)

	kind := ats.Detect(careersURL)
	switch kind {
	case ats.Greenhouse:
		postings, err = d.Greenhouse.Fetch(ctx, careersURL)
	case ats.Lever:
		postings, err = d.Lever.Fetch(ctx, careersURL)
	case ats.Workday:
		postings, err = d.Workday.Fetch(ctx, careersURL)
	default:
		postings, err = d.Generic.Fetch(ctx, careersURL)
	}

	if err != nil && kind != ats.Unknown && IsScrapeError(err) {
		postings, err = d.Generic.Fetch(ctx, careersURL)
	}
	if err != nil {
		return nil, err
	}

	return truncate(postings), nil
}

func truncate(postings []Posting) []Posting {
	if len(postings) > MaxPostingsPerCompany {
		return postings[:MaxPostingsPerCompany]
	}
	return postings
}
