package strategy

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/gocolly/colly/v2"

	"auros/internal/retry"
)

// fetcher performs bare GET requests against ATS JSON APIs via a shared
// colly collector and POST requests via net/http, retried over transient
// network errors.
type fetcher struct {
	collector *colly.Collector
}

func newFetcher(userAgent string) *fetcher {
	c := colly.NewCollector()
	c.UserAgent = userAgent
	c.AllowURLRevisit = true
	return &fetcher{collector: c}
}

// get issues a GET request to url and returns the raw response body,
// retried over transient transport errors and classified as a ScrapeError
// once retries are exhausted.
func (f *fetcher) get(ctx context.Context, source, url string) ([]byte, error) {
	var body []byte

	err := retry.Do(ctx, func() error {
		c := f.collector.Clone()
		var callbackErr error
		c.OnResponse(func(r *colly.Response) {
			body = append([]byte(nil), r.Body...)
		})
		c.OnError(func(r *colly.Response, err error) {
			callbackErr = err
		})
		if err := c.Visit(url); err != nil {
			return err
		}
		return callbackErr
	}, isTransientNetErr, retry.DefaultAttempts, retry.DefaultBaseDelay)

	if err != nil {
		return nil, &ScrapeError{Source: source, Message: err.Error()}
	}
	return body, nil
}

// post issues a POST with a JSON body via plain net/http (colly has no
// first-class JSON POST support), retried the same way.
func (f *fetcher) post(ctx context.Context, source, url string, payload []byte) ([]byte, error) {
	var body []byte

	err := retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", f.collector.UserAgent)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return errHTTPStatus
		}
		body, err = io.ReadAll(resp.Body)
		return err
	}, isTransientNetErr, retry.DefaultAttempts, retry.DefaultBaseDelay)

	if err != nil {
		return nil, &ScrapeError{Source: source, Message: err.Error()}
	}
	return body, nil
}

var errHTTPStatus = errors.New("non-2xx response")

func isTransientNetErr(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, errHTTPStatus)
}
