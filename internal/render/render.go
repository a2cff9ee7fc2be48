// Package render implements the generic headless-browser fallback
// strategy: render an arbitrary careers page, extract and filter candidate
// job-posting anchors by an anchor-text/href heuristic, and fetch each
// one's description text under a bounded semaphore.
package render

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"auros/internal/ratelimit"
	"auros/internal/textnorm"
)

// rejectedLinkTexts are substrings that disqualify a candidate link
// regardless of its href, matching _looks_like_job_link's reject list.
var rejectedLinkTexts = []string{"privacy", "cookie", "terms", "policy", "benefits", "equal employment"}

// hrefJobHints are href substrings that qualify a candidate link as a job
// posting.
var hrefJobHints = []string{"/jobs/", "/job/", "/careers/", "greenhouse.io", "lever.co", "workdayjobs", "job"}

// textJobHints are title-text substrings accepted when the href itself
// gives no hint.
var textJobHints = []string{"manager", "program", "product", "technical", "tpm", "principal", "senior"}

// candidateLink is a raw anchor discovered on a rendered page.
type candidateLink struct {
	Href string
	Text string
}

// Posting is one discovered job posting with its fetched description. It
// mirrors strategy.Posting's shape; kept as a separate type here so this
// package never imports strategy (which itself imports render for the
// Workday per-posting description fallback).
type Posting struct {
	Title       string
	URL         string
	Description string
}

// Renderer owns a single headless-browser allocation used to render pages
// and extract description text, gated by a semaphore of capacity
// maxConcurrentPages and a politeness rate limiter between page
// operations.
type Renderer struct {
	allocCtx     context.Context
	allocCancel  context.CancelFunc
	sem          chan struct{}
	limiter      *ratelimit.Limiter
	allowedHosts []string
}

// New allocates the shared browser and returns a Renderer. Call Close when
// the renderer is no longer needed to release the browser process.
func New(allowedDomains []string, delayMin, delayMax float64, maxConcurrentPages int) *Renderer {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), chromedp.DefaultExecAllocatorOptions[:]...)
	if maxConcurrentPages <= 0 {
		maxConcurrentPages = 3
	}
	return &Renderer{
		allocCtx:     allocCtx,
		allocCancel:  allocCancel,
		sem:          make(chan struct{}, maxConcurrentPages),
		limiter:      ratelimit.New(delayMin, delayMax),
		allowedHosts: allowedDomains,
	}
}

// Close releases the shared browser allocation.
func (r *Renderer) Close() {
	r.allocCancel()
}

// DiscoverAndFetch renders careersURL, extracts and filters candidate job
// links, then fetches each one's description text under the bounded
// semaphore, in a single fan-out that awaits every outcome regardless of
// individual failure.
func (r *Renderer) DiscoverAndFetch(ctx context.Context, careersURL string) ([]Posting, error) {
	links, err := r.extractJobLinks(ctx, careersURL)
	if err != nil {
		return nil, err
	}

	return r.fetchDescriptions(ctx, links), nil
}

// FetchDescription renders url under the semaphore and politeness delay and
// returns its normalized body text. Exported so the Workday strategy can
// reuse it for per-posting description fetches.
func (r *Renderer) FetchDescription(ctx context.Context, targetURL string) (string, error) {
	select {
	case r.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-r.sem }()

	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	tabCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()

	var text string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(targetURL),
		chromedp.Evaluate(`document.body.innerText`, &text),
	)
	if err != nil {
		return "", err
	}
	return textnorm.Normalize(text), nil
}

func (r *Renderer) extractJobLinks(ctx context.Context, careersURL string) ([]candidateLink, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	tabCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()

	var raw []candidateLink
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(careersURL),
		chromedp.Sleep(3*time.Second),
		chromedp.Evaluate(`
			Array.from(document.querySelectorAll('a')).map(a => ({
				Href: a.href || '',
				Text: (a.textContent || '').trim()
			}))
		`, &raw),
	)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(careersURL)
	if err != nil {
		return nil, err
	}

	return r.filterAndDedup(raw, base), nil
}

func (r *Renderer) filterAndDedup(raw []candidateLink, base *url.URL) []candidateLink {
	seen := map[string]bool{}
	var out []candidateLink

	for _, link := range raw {
		text := strings.Join(strings.Fields(link.Text), " ")
		if len(text) < 3 {
			continue
		}

		u, err := url.Parse(link.Href)
		if err != nil {
			continue
		}
		if u.Scheme == "mailto" || u.Scheme == "tel" {
			continue
		}
		if u.Host != "" && !strings.EqualFold(u.Host, base.Host) && !r.isAllowedHost(u.Host) {
			continue
		}
		if !looksLikeJob(link.Href, text) {
			continue
		}

		absolute := base.ResolveReference(u).String()
		if seen[absolute] {
			continue
		}
		seen[absolute] = true

		out = append(out, candidateLink{Href: absolute, Text: text})
		if len(out) >= maxCandidateLinks {
			break
		}
	}

	return out
}

const maxCandidateLinks = 20

func (r *Renderer) isAllowedHost(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range r.allowedHosts {
		if strings.Contains(host, strings.ToLower(allowed)) {
			return true
		}
	}
	return false
}

func looksLikeJob(href, text string) bool {
	lowerText := strings.ToLower(text)
	for _, rejected := range rejectedLinkTexts {
		if strings.Contains(lowerText, rejected) {
			return false
		}
	}

	lowerHref := strings.ToLower(href)
	for _, hint := range hrefJobHints {
		if strings.Contains(lowerHref, hint) {
			return true
		}
	}

	for _, hint := range textJobHints {
		if strings.Contains(lowerText, hint) {
			return true
		}
	}

	return false
}

func (r *Renderer) fetchDescriptions(ctx context.Context, links []candidateLink) []Posting {
	results := make(chan Posting, len(links))
	var wg sync.WaitGroup

	for _, link := range links {
		wg.Add(1)
		go func(link candidateLink) {
			defer wg.Done()
			description, err := r.FetchDescription(ctx, link.Href)
			if err != nil {
				return
			}
			results <- Posting{Title: link.Text, URL: link.Href, Description: description}
		}(link)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var postings []Posting
	for p := range results {
		postings = append(postings, p)
	}
	return postings
}
