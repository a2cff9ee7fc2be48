// Package scheduler fires a full scan at a configured comma-separated list
// of hours every day, in a configured timezone, with invalid hour entries
// discarded.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultHours is used when ScheduleHours parses to no valid entries.
const DefaultHours = "6,12,18"

// Runner is what the scheduler fires on each tick. Satisfied by
// (*scan.Controller).RunFullScan.
type Runner func(ctx context.Context) error

// Scheduler wraps a robfig/cron/v3 instance configured to fire Runner once
// per configured hour, at minute 0, in the configured timezone.
type Scheduler struct {
	cron   *cron.Cron
	logger *logrus.Logger
}

// New parses scheduleHours (comma-separated, 0-23; invalid entries
// discarded, defaulting to DefaultHours if none remain) and timezone, and
// registers run against each valid hour. run is invoked with
// context.Background(); Start and Stop do not cancel it.
func New(scheduleHours, timezone string, logger *logrus.Logger, run Runner) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	hours := parseHours(scheduleHours)
	if len(hours) == 0 {
		hours = parseHours(DefaultHours)
	}

	c := cron.New(cron.WithLocation(loc))
	for _, hour := range hours {
		expr := fmt.Sprintf("0 %d * * *", hour)
		if _, err := c.AddFunc(expr, func() {
			if err := run(context.Background()); err != nil {
				logger.WithError(err).Error("scheduled scan failed")
			}
		}); err != nil {
			return nil, fmt.Errorf("register schedule for hour %d: %w", hour, err)
		}
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start begins firing scheduled scans in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop halts the scheduler, waiting for any in-flight job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func parseHours(raw string) []int {
	var hours []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.Atoi(part)
		if err != nil || h < 0 || h > 23 {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}
