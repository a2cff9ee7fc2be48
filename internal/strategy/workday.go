package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"auros/internal/ats"
	"auros/internal/render"
)

// DescriptionFetcher fetches the rendered description text for a single
// posting URL. Satisfied by *render.Renderer; kept as an interface so
// WorkdayStrategy does not depend on chromedp directly.
type DescriptionFetcher interface {
	FetchDescription(ctx context.Context, url string) (string, error)
}

// WorkdayStrategy fetches postings from the Workday CXS job-search RPC,
// grounded on original_source/api/services/scraper.py's
// _scrape_workday_jobs paginated search. Workday's search endpoint returns
// titles and relative links but no description text, so each posting's
// description is fetched separately through descriptions.
type WorkdayStrategy struct {
	fetcher      *fetcher
	descriptions DescriptionFetcher
}

// NewWorkdayStrategy builds a WorkdayStrategy using userAgent for the
// search RPC and descriptions for per-posting description fetches.
func NewWorkdayStrategy(userAgent string, descriptions DescriptionFetcher) *WorkdayStrategy {
	return &WorkdayStrategy{fetcher: newFetcher(userAgent), descriptions: descriptions}
}

const workdayPageSize = 50

type workdaySearchRequest struct {
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
	AppliedFacets map[string]interface{} `json:"appliedFacets"`
}

type workdaySearchResponse struct {
	Total       int                `json:"total"`
	JobPostings []workdayJobEntry  `json:"jobPostings"`
	Jobs        []workdayJobEntry  `json:"jobs"`
	Data        *workdaySearchData `json:"data"`
}

type workdaySearchData struct {
	JobPostings []workdayJobEntry `json:"jobPostings"`
	Jobs        []workdayJobEntry `json:"jobs"`
}

type workdayJobEntry struct {
	Title            string `json:"title"`
	JobTitle         string `json:"jobTitle"`
	JobPostingURL    string `json:"jobPostingUrl"`
	ExternalURLLower string `json:"externalUrl"`
	ExternalURLUpper string `json:"externalURL"`
	ExternalPath     string `json:"externalPath"`
}

func (e workdayJobEntry) title() string {
	if e.Title != "" {
		return e.Title
	}
	return e.JobTitle
}

func (e workdayJobEntry) path() string {
	switch {
	case e.JobPostingURL != "":
		return e.JobPostingURL
	case e.ExternalURLLower != "":
		return e.ExternalURLLower
	case e.ExternalURLUpper != "":
		return e.ExternalURLUpper
	default:
		return e.ExternalPath
	}
}

func (r workdaySearchResponse) entries() []workdayJobEntry {
	if len(r.JobPostings) > 0 {
		return r.JobPostings
	}
	if len(r.Jobs) > 0 {
		return r.Jobs
	}
	if r.Data != nil {
		if len(r.Data.JobPostings) > 0 {
			return r.Data.JobPostings
		}
		return r.Data.Jobs
	}
	return nil
}

func (s *WorkdayStrategy) Fetch(ctx context.Context, careersURL string) ([]Posting, error) {
	workdayCtx, ok := ats.ParseWorkdayContext(careersURL)
	if !ok {
		return nil, &ScrapeError{Source: "workday", Message: "could not derive tenant/site from " + careersURL}
	}

	entries, err := s.search(ctx, workdayCtx)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(workdayCtx.BaseURL)
	if err != nil {
		return nil, &ScrapeError{Source: "workday", Message: "invalid base url: " + err.Error()}
	}

	postings := make([]Posting, 0, len(entries))
	for _, e := range entries {
		title := e.title()
		path := e.path()
		if title == "" || path == "" {
			continue
		}

		rel, err := url.Parse(path)
		if err != nil {
			continue
		}
		postingURL := base.ResolveReference(rel).String()

		description, err := s.descriptions.FetchDescription(ctx, postingURL)
		if err != nil {
			description = ""
		}

		postings = append(postings, Posting{Title: title, URL: postingURL, Description: description})
		if len(postings) >= MaxPostingsPerCompany {
			break
		}
	}

	return postings, nil
}

func (s *WorkdayStrategy) search(ctx context.Context, wctx ats.WorkdayContext) ([]workdayJobEntry, error) {
	searchPath := fmt.Sprintf("%s/wday/cxs/%s/%s/jobs", wctx.BaseURL, wctx.Tenant, wctx.Site)
	localePath := searchPath
	if wctx.Locale != "" {
		localePath = fmt.Sprintf("%s/wday/cxs/%s/%s/%s/jobs", wctx.BaseURL, wctx.Tenant, wctx.Site, wctx.Locale)
	}

	var entries []workdayJobEntry
	offset := 0

	for {
		payload, err := json.Marshal(workdaySearchRequest{
			Limit:         workdayPageSize,
			Offset:        offset,
			AppliedFacets: map[string]interface{}{},
		})
		if err != nil {
			return nil, &ScrapeError{Source: "workday", Message: err.Error()}
		}

		body, err := s.fetchPage(ctx, searchPath, payload, offset)
		if err != nil && localePath != searchPath {
			body, err = s.fetchPage(ctx, localePath, payload, offset)
		}
		if err != nil {
			return nil, err
		}

		var page workdaySearchResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, &ScrapeError{Source: "workday", Message: "parse response: " + err.Error()}
		}

		pageEntries := page.entries()
		entries = append(entries, pageEntries...)

		offset += workdayPageSize
		if page.Total == 0 || offset >= page.Total || len(pageEntries) == 0 {
			break
		}
	}

	return entries, nil
}

// fetchPage tries a POST against path first, falling back to a GET against
// that same path (payload as query parameters) if the POST fails for any
// reason: a transport error and an error status both lead to the GET. Both
// attempts target one URL; the caller escalates to a
// locale-qualified URL only once this whole unit fails.
func (s *WorkdayStrategy) fetchPage(ctx context.Context, path string, payload []byte, offset int) ([]byte, error) {
	body, err := s.fetcher.post(ctx, "workday", path, payload)
	if err == nil {
		return body, nil
	}
	return s.searchViaGet(ctx, path, offset)
}

func (s *WorkdayStrategy) searchViaGet(ctx context.Context, searchPath string, offset int) ([]byte, error) {
	u, err := url.Parse(searchPath)
	if err != nil {
		return nil, &ScrapeError{Source: "workday", Message: err.Error()}
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(workdayPageSize))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	return s.fetcher.get(ctx, "workday", u.String())
}

var _ DescriptionFetcher = (*render.Renderer)(nil)
