package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"auros/internal/ats"
	"auros/internal/textnorm"
)

// LeverStrategy fetches postings from the Lever Postings v0 API, grounded
// on original_source/api/services/scraper.py's _scrape_lever_jobs.
type LeverStrategy struct {
	fetcher *fetcher
}

// NewLeverStrategy builds a LeverStrategy using userAgent for outbound
// requests.
func NewLeverStrategy(userAgent string) *LeverStrategy {
	return &LeverStrategy{fetcher: newFetcher(userAgent)}
}

type leverPosting struct {
	Text              string `json:"text"`
	HostedURL         string `json:"hostedUrl"`
	ApplyURL          string `json:"applyUrl"`
	DescriptionPlain  string `json:"descriptionPlain"`
	Description       string `json:"description"`
}

func (s *LeverStrategy) Fetch(ctx context.Context, careersURL string) ([]Posting, error) {
	company := ats.ExtractLeverCompany(careersURL)
	if company == "" {
		return nil, &ScrapeError{Source: "lever", Message: "could not derive company slug from " + careersURL}
	}

	apiURL := fmt.Sprintf("https://api.lever.co/v0/postings/%s?mode=json", company)
	body, err := s.fetcher.get(ctx, "lever", apiURL)
	if err != nil {
		return nil, err
	}

	var parsed []leverPosting
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ScrapeError{Source: "lever", Message: "parse response: " + err.Error()}
	}

	postings := make([]Posting, 0, len(parsed))
	for _, p := range parsed {
		url := p.HostedURL
		if url == "" {
			url = p.ApplyURL
		}
		if p.Text == "" || url == "" {
			continue
		}

		description := p.DescriptionPlain
		if description == "" {
			description = stripHTML(p.Description)
		}
		postings = append(postings, Posting{
			Title:       p.Text,
			URL:         url,
			Description: textnorm.Normalize(description),
		})
	}

	return postings, nil
}
