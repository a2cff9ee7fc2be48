package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrementAndAreRegistered(t *testing.T) {
	before := testutil.ToFloat64(ScansTotal)
	ScansTotal.Inc()
	if got := testutil.ToFloat64(ScansTotal); got != before+1 {
		t.Errorf("ScansTotal = %v, want %v", got, before+1)
	}

	ScrapeErrorsTotal.WithLabelValues("scrape").Inc()
	if got := testutil.ToFloat64(ScrapeErrorsTotal.WithLabelValues("scrape")); got < 1 {
		t.Errorf("ScrapeErrorsTotal{source=scrape} = %v, want >= 1", got)
	}

	ScansRunning.Set(1)
	if got := testutil.ToFloat64(ScansRunning); got != 1 {
		t.Errorf("ScansRunning = %v, want 1", got)
	}
}
