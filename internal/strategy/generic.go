package strategy

import (
	"context"

	"auros/internal/render"
)

// GenericStrategy wraps a headless-browser renderer as the Strategy used
// for careers pages that match no known ATS, and as the fallback when an
// ATS-specific strategy fails.
type GenericStrategy struct {
	renderer *render.Renderer
}

// NewGenericStrategy wraps renderer as a Strategy.
func NewGenericStrategy(renderer *render.Renderer) *GenericStrategy {
	return &GenericStrategy{renderer: renderer}
}

func (s *GenericStrategy) Fetch(ctx context.Context, careersURL string) ([]Posting, error) {
	found, err := s.renderer.DiscoverAndFetch(ctx, careersURL)
	if err != nil {
		return nil, &ScrapeError{Source: "generic", Message: err.Error()}
	}

	postings := make([]Posting, 0, len(found))
	for _, p := range found {
		postings = append(postings, Posting{Title: p.Title, URL: p.URL, Description: p.Description})
	}
	return truncate(postings), nil
}
