package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"auros/internal/ats"
	"auros/internal/textnorm"
)

// GreenhouseStrategy fetches postings from the Greenhouse Jobs Board API
// v1, grounded on original_source/api/services/scraper.py's
// _scrape_greenhouse_jobs.
type GreenhouseStrategy struct {
	fetcher *fetcher
}

// NewGreenhouseStrategy builds a GreenhouseStrategy using userAgent for
// outbound requests.
func NewGreenhouseStrategy(userAgent string) *GreenhouseStrategy {
	return &GreenhouseStrategy{fetcher: newFetcher(userAgent)}
}

type ghJobsResponse struct {
	Jobs []ghJob `json:"jobs"`
}

type ghJob struct {
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	URL         string `json:"url"`
	Content     string `json:"content"`
	ContentText string `json:"content_text"`
}

func (s *GreenhouseStrategy) Fetch(ctx context.Context, careersURL string) ([]Posting, error) {
	board := ats.ExtractGreenhouseBoard(careersURL)
	if board == "" {
		return nil, &ScrapeError{Source: "greenhouse", Message: "could not derive board id from " + careersURL}
	}

	apiURL := fmt.Sprintf("https://boards-api.greenhouse.io/v1/boards/%s/jobs?content=true", board)
	body, err := s.fetcher.get(ctx, "greenhouse", apiURL)
	if err != nil {
		return nil, err
	}

	var parsed ghJobsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ScrapeError{Source: "greenhouse", Message: "parse response: " + err.Error()}
	}

	postings := make([]Posting, 0, len(parsed.Jobs))
	for _, job := range parsed.Jobs {
		url := job.AbsoluteURL
		if url == "" {
			url = job.URL
		}
		if job.Title == "" || url == "" {
			continue
		}

		description := job.Content
		if description == "" {
			description = job.ContentText
		}
		postings = append(postings, Posting{
			Title:       job.Title,
			URL:         url,
			Description: textnorm.Normalize(stripHTML(description)),
		})
	}

	return postings, nil
}

var htmlTagPattern = regexp.MustCompile(`(?s)<[^>]*>`)

// stripHTML removes HTML tags, matching the reference's regex-based
// _strip_html (a full HTML parser is unnecessary here: descriptions are
// already-rendered fragments, not full documents).
func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, " "))
}
