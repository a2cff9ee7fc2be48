// Package metrics registers the Prometheus counters/gauges the scan
// controller emits, matching the exact names from
// original_source/api/metrics.py. The promauto wiring idiom (a package
// var built with promauto.NewCounterVec/NewGauge at package init) is
// grounded on other_examples/a2439bfd_m-lab-etl__active-poller.go.go, the
// only file in the retrieval pack that directly imports
// prometheus/client_golang in Go code.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansTotal counts every RunFullScan invocation that actually starts
	// a scan (no-ops while a scan is already running are not counted).
	ScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auros_scans_total",
		Help: "Total number of full scans started.",
	})

	// ScansRunning is 1 while a scan is in flight, 0 otherwise.
	ScansRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "auros_scans_running",
		Help: "Whether a full scan is currently running (0 or 1).",
	})

	// ScrapeErrorsTotal counts classified scrape failures, labeled by the
	// failing source ("scrape" for company-level scraping failures, per
	// the pipeline's single label value convention).
	ScrapeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auros_scrape_errors_total",
		Help: "Total number of classified scrape errors.",
	}, []string{"source"})

	// JobsFoundTotal counts every posting returned by a company's scrape,
	// new or already-seen.
	JobsFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auros_jobs_found_total",
		Help: "Total number of postings observed across all scans.",
	})

	// JobsNewTotal counts postings that resulted in a newly persisted Job.
	JobsNewTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auros_jobs_new_total",
		Help: "Total number of new jobs persisted across all scans.",
	})
)
