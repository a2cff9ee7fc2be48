// Command scanner wires configuration, the Repository, the notifier, the
// LLM client, the scan controller, and the scheduler together into a
// long-lived scheduled service with one-shot trigger/status/export
// subcommands for operators and tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"auros/internal/config"
	"auros/internal/llmclient"
	"auros/internal/logging"
	"auros/internal/notify"
	"auros/internal/render"
	"auros/internal/repo"
	"auros/internal/scan"
	"auros/internal/scheduler"
	"auros/internal/strategy"
	"auros/pkg/export"
	"auros/pkg/models"
)

const userAgent = "auros-scanner/1.0 (+https://github.com/auros)"

func main() {
	trigger := flag.Bool("trigger", false, "run exactly one scan and exit")
	status := flag.Bool("status", false, "print the current scan state and exit")
	exportCSV := flag.Bool("export-csv", false, "export the current job index to CSV and exit")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	repository, err := repo.NewFileRepository(cfg.DataDir)
	if err != nil {
		logger.WithError(err).Fatal("failed to open repository")
	}

	ctx := context.Background()
	if err := repository.SeedCompaniesIfEmpty(ctx, models.DefaultCompanies); err != nil {
		logger.WithError(err).Fatal("failed to seed companies")
	}

	if *status {
		runStatus(ctx, repository, logger)
		return
	}
	if *exportCSV {
		runExport(ctx, repository, cfg, logger)
		return
	}

	renderer := render.New(cfg.ATSAllowedDomains, float64(cfg.ScrapeDelayMin), float64(cfg.ScrapeDelayMax), cfg.MaxConcurrentPages)
	defer renderer.Close()

	generic := strategy.NewGenericStrategy(renderer)
	dispatcher := &strategy.Dispatcher{
		Greenhouse: strategy.NewGreenhouseStrategy(userAgent),
		Lever:      strategy.NewLeverStrategy(userAgent),
		Workday:    strategy.NewWorkdayStrategy(userAgent, renderer),
		Generic:    generic,
	}

	llm := llmclient.New(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.APIRateLimitPerMinute)
	notifier := notify.New(cfg.SlackWebhookURL)

	controller := scan.New(repository, dispatcher, llm, notifier, logger, scan.Options{
		PreferredWorkMode:   cfg.PreferredWorkMode,
		MinSalaryConfidence: cfg.MinSalaryConfidence,
		SlackMinScore:       cfg.SlackMinScore,
		ScrapeDelayMin:      float64(cfg.ScrapeDelayMin),
		ScrapeDelayMax:      float64(cfg.ScrapeDelayMax),
	})

	if *trigger {
		runTriggerOnce(ctx, controller, repository, logger)
		return
	}

	runServiceMode(ctx, cfg, controller, repository, logger)
}

func runStatus(ctx context.Context, repository repo.Repository, logger *logrus.Logger) {
	state, err := repository.GetScanState(ctx)
	if err != nil {
		logger.WithError(err).Fatal("failed to read scan state")
	}
	fmt.Printf("status=%s companies_scanned=%d jobs_found=%d jobs_new=%d errors=%d\n",
		state.Status, state.CompaniesScanned, state.JobsFound, state.JobsNew, len(state.Errors))
}

func runExport(ctx context.Context, repository repo.Repository, cfg *config.Config, logger *logrus.Logger) {
	path, err := export.ExportJobs(ctx, repository, cfg.DataDir)
	if err != nil {
		logger.WithError(err).Fatal("failed to export jobs")
	}
	fmt.Printf("exported job index to %s\n", path)
}

func runTriggerOnce(ctx context.Context, controller *scan.Controller, repository repo.Repository, logger *logrus.Logger) {
	triggerCtx, cancel := context.WithCancel(ctx)
	defer resetOnCancel(triggerCtx, cancel, repository, logger)

	state, err := controller.RunFullScan(triggerCtx)
	if err != nil {
		logger.WithError(err).Fatal("scan failed")
	}
	logger.WithFields(stateFields(state)).Info("scan finished")
}

func runServiceMode(ctx context.Context, cfg *config.Config, controller *scan.Controller, repository repo.Repository, logger *logrus.Logger) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.DisableScheduler {
		sched, err := scheduler.New(cfg.ScanScheduleHours, cfg.ScanTimezone, logger, func(ctx context.Context) error {
			_, err := controller.RunFullScan(ctx)
			return err
		})
		if err != nil {
			logger.WithError(err).Fatal("failed to build scheduler")
		}
		sched.Start()
		defer sched.Stop()
	}

	logger.Info("scanner running; send SIGINT/SIGTERM to exit")
	<-sigCtx.Done()
	resetOnCancel(sigCtx, stop, repository, logger)
}

// resetOnCancel restores the singleton ScanState to idle if it was left
// running by a cancelled scan.
func resetOnCancel(ctx context.Context, cancel context.CancelFunc, repository repo.Repository, logger *logrus.Logger) {
	cancel()
	state, err := repository.GetScanState(context.Background())
	if err != nil || state.Status != models.ScanStatusRunning {
		return
	}
	state.Status = models.ScanStatusIdle
	if err := repository.PutScanState(context.Background(), state); err != nil {
		logger.WithError(err).Warn("failed to reset scan state after cancellation")
	}
}

func stateFields(state *models.ScanState) map[string]interface{} {
	return map[string]interface{}{
		"status":            state.Status,
		"companies_scanned": state.CompaniesScanned,
		"jobs_found":        state.JobsFound,
		"jobs_new":          state.JobsNew,
		"errors":            len(state.Errors),
	}
}
