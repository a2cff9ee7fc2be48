// Package scan implements the scan controller: the singleton state
// machine that drives one full pass over enabled companies, scrapes each
// one's postings, extracts and scores each posting, persists new jobs, and
// notifies on high-confidence matches.
//
// The singleton guard is process-local: an in-process mutex serialises the
// read-then-write of ScanState, so two processes sharing one store can both
// start a scan.
package scan

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"auros/internal/llmclient"
	"auros/internal/logging"
	"auros/internal/metrics"
	"auros/internal/notify"
	"auros/internal/ratelimit"
	"auros/internal/repo"
	"auros/internal/salary"
	"auros/internal/scoring"
	"auros/internal/strategy"
	"auros/internal/textnorm"
	"auros/pkg/models"
)

// matchKeywords are the title substrings IsPotentialMatch checks for.
var matchKeywords = []string{
	"program", "tpm", "technical program", "product manager", "platform",
	"infrastructure", "infra", "ai", "ml", "reliability", "sre",
	"principal", "senior",
}

var matchPatterns = compileMatchPatterns(matchKeywords)

func compileMatchPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return patterns
}

// IsPotentialMatch reports whether title contains any of the configured
// match keywords at a word boundary, case-insensitively.
func IsPotentialMatch(title string) bool {
	for _, p := range matchPatterns {
		if p.MatchString(title) {
			return true
		}
	}
	return false
}

// Options configures a Controller.
type Options struct {
	PreferredWorkMode   string
	MinSalaryConfidence float64
	SlackMinScore       float64
	ScrapeDelayMin      float64
	ScrapeDelayMax      float64
}

// Controller is the singleton scan state machine. One Controller should
// be constructed per process.
type Controller struct {
	repository repository
	dispatcher fetcher
	llm        *llmclient.Client
	notifier   *notify.Notifier
	limiter    *ratelimit.Limiter
	logger     *logrus.Logger
	opts       Options

	mu       sync.Mutex
	registry *registry
}

// repository is the subset of repo.Repository the controller needs,
// declared locally so tests can supply a lightweight fake.
type repository = repo.Repository

// fetcher is satisfied by *strategy.Dispatcher; declared locally so tests
// can supply a lightweight fake instead of wiring real ATS strategies.
type fetcher interface {
	Fetch(ctx context.Context, careersURL string) ([]strategy.Posting, error)
}

// New builds a Controller.
func New(repository repo.Repository, dispatcher fetcher, llm *llmclient.Client, notifier *notify.Notifier, logger *logrus.Logger, opts Options) *Controller {
	return &Controller{
		repository: repository,
		dispatcher: dispatcher,
		llm:        llm,
		notifier:   notifier,
		limiter:    ratelimit.New(opts.ScrapeDelayMin, opts.ScrapeDelayMax),
		logger:     logger,
		opts:       opts,
		registry:   newRegistry(),
	}
}

// Status returns the current singleton ScanState.
func (c *Controller) Status(ctx context.Context) (*models.ScanState, error) {
	state, err := c.repository.GetScanState(ctx)
	if err != nil {
		return nil, &RepositoryError{Op: "get_scan_state", Message: err.Error()}
	}
	return state, nil
}

// RunFullScan drives one full pass over enabled companies. If a scan is
// already running, it is a no-op returning the current state. The caller
// is responsible for resetting the singleton state back to idle if ctx is
// cancelled mid-scan.
func (c *Controller) RunFullScan(ctx context.Context) (*models.ScanState, error) {
	c.mu.Lock()
	state, err := c.repository.GetScanState(ctx)
	if err != nil {
		c.mu.Unlock()
		return nil, &RepositoryError{Op: "get_scan_state", Message: err.Error()}
	}
	if state.Status == models.ScanStatusRunning {
		c.mu.Unlock()
		return state, nil
	}

	scanID := uuid.New().String()
	correlationID := scanID[:8]
	now := time.Now().UTC()
	running := &models.ScanState{
		ID:        models.ScanStateID,
		Status:    models.ScanStatusRunning,
		StartedAt: &now,
		Errors:    []string{},
	}
	if err := c.repository.PutScanState(ctx, running); err != nil {
		c.mu.Unlock()
		return nil, &RepositoryError{Op: "put_scan_state", Message: err.Error()}
	}
	c.mu.Unlock()

	metrics.ScansTotal.Inc()
	metrics.ScansRunning.Set(1)
	defer metrics.ScansRunning.Set(0)

	scanCtx, cancel := context.WithCancel(logging.WithCorrelationID(ctx, correlationID))
	c.registry.start(scanID, cancel)
	defer func() {
		cancel()
		c.registry.finish(scanID)
	}()

	return c.runScan(scanCtx, running, now)
}

func (c *Controller) runScan(ctx context.Context, state *models.ScanState, startedAt time.Time) (*models.ScanState, error) {
	log := logging.Scoped(ctx, c.logger, logrus.Fields{"component": "scan_controller"})

	companies, err := c.repository.ListEnabledCompanies(ctx)
	if err != nil {
		return nil, &RepositoryError{Op: "list_enabled_companies", Message: err.Error()}
	}
	state.CompaniesScanned = len(companies)
	c.persistProgress(ctx, state)

	for _, company := range companies {
		if ctx.Err() != nil {
			break
		}
		c.scanCompany(ctx, log, state, company)
		c.persistProgress(ctx, state)
	}

	completedAt := time.Now().UTC()
	state.Status = models.ScanStatusCompleted
	state.CompletedAt = &completedAt
	if err := c.repository.PutScanState(ctx, state); err != nil {
		return nil, &RepositoryError{Op: "put_scan_state_completed", Message: err.Error()}
	}

	if err := c.repository.AppendScanLog(ctx, models.ScanLog{
		ID:               uuid.New().String(),
		StartedAt:        startedAt,
		CompletedAt:      completedAt,
		CompaniesScanned: state.CompaniesScanned,
		JobsFound:        state.JobsFound,
		JobsNew:          state.JobsNew,
		Errors:           state.Errors,
	}); err != nil {
		log.WithError(err).Warn("failed to append scan log")
	}

	if err := c.repository.PutScanState(ctx, state); err != nil {
		return nil, &RepositoryError{Op: "put_scan_state_completed", Message: err.Error()}
	}

	return state, nil
}

func (c *Controller) scanCompany(ctx context.Context, log *logrus.Entry, state *models.ScanState, company models.Company) {
	postings, err := c.dispatcher.Fetch(ctx, company.CareersURL)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("%s: %s", company.Name, err.Error()))
		metrics.ScrapeErrorsTotal.WithLabelValues("scrape").Inc()
		if updateErr := c.repository.UpdateCompanyScrapeStatus(ctx, company.ID, "failed"); updateErr != nil {
			log.WithError(updateErr).Warn("failed to record company scrape failure")
			state.Errors = append(state.Errors, fmt.Sprintf("%s: %s", company.Name, updateErr.Error()))
		}
		return
	}

	if err := c.repository.UpdateCompanyScrapeStatus(ctx, company.ID, "success"); err != nil {
		log.WithError(err).Warn("failed to record company scrape success")
		state.Errors = append(state.Errors, fmt.Sprintf("%s: %s", company.Name, err.Error()))
	}

	state.JobsFound += len(postings)
	metrics.JobsFoundTotal.Add(float64(len(postings)))

	for _, posting := range postings {
		isNew, err := c.processJob(ctx, company, posting)
		if err != nil {
			log.WithError(err).WithField("posting_url", posting.URL).Warn("failed to process posting")
			state.Errors = append(state.Errors, fmt.Sprintf("%s: %s", company.Name, err.Error()))
			continue
		}
		if isNew {
			state.JobsNew++
			metrics.JobsNewTotal.Inc()
			c.persistProgress(ctx, state)
		}
	}
}

// processJob implements ProcessJob: dedup-by-URL, keyword gate, then the
// full extract/score/persist/notify pipeline for a genuinely new posting.
func (c *Controller) processJob(ctx context.Context, company models.Company, posting strategy.Posting) (bool, error) {
	existing, err := c.repository.FindJobByURL(ctx, posting.URL)
	if err != nil {
		return false, &RepositoryError{Op: "find_job_by_url", Message: err.Error()}
	}
	if existing != nil {
		existing.TouchLastSeen(posting.Description)
		if err := c.repository.SaveJob(ctx, existing); err != nil {
			return false, &RepositoryError{Op: "save_job", Message: err.Error()}
		}
		return false, nil
	}

	if !IsPotentialMatch(posting.Title) {
		return false, nil
	}

	description := textnorm.Normalize(posting.Description)
	extracted := c.llm.ExtractJobInfo(ctx, description)

	salaryResult, hasSalary := c.extractSalary(ctx, description)

	job := models.NewJob(company.ID, posting.Title, posting.URL)
	job.RawDescription = description
	job.PrimaryFunction = extracted.PrimaryFunction
	job.YOEMin = extracted.YOEMin
	job.YOEMax = extracted.YOEMax
	if extracted.YOEMin != nil || extracted.YOEMax != nil {
		job.YOESource = "extracted"
	}
	job.WorkMode = extracted.WorkMode
	job.Location = extracted.Location

	if hasSalary {
		job.SalaryMin = &salaryResult.Min
		job.SalaryMax = &salaryResult.Max
		job.SalarySource = salaryResult.Source
		job.SalaryConfidence = &salaryResult.Confidence
		job.SalaryEstimated = salaryResult.Source == salary.SourceAI
	}

	score := scoring.ComputeMatchScore(scoring.Input{
		Title:         job.Title,
		Description:   description,
		YOEMin:        job.YOEMin,
		YOEMax:        job.YOEMax,
		CompanyTier:   company.Tier,
		WorkMode:      job.WorkMode,
		PreferredMode: c.opts.PreferredWorkMode,
	})
	job.MatchScore = &score

	if score >= c.opts.SlackMinScore {
		message := fmt.Sprintf("New match (%.2f): %s at %s\n%s", score, job.Title, company.Name, job.URL)
		job.Notified = c.notifier.Notify(ctx, message)
	}

	if err := c.repository.SaveJob(ctx, job); err != nil {
		return false, &RepositoryError{Op: "save_job", Message: err.Error()}
	}
	return true, nil
}

// extractSalary tries the regex extractor first, falls back to the LLM
// estimate, then gates on the configured confidence floor.
func (c *Controller) extractSalary(ctx context.Context, description string) (salary.Result, bool) {
	result, ok := salary.ExtractFromText(description)
	if !ok {
		result, ok = salary.EstimateWithLLM(ctx, c.llm, description)
	}
	if !ok {
		return salary.Result{}, false
	}
	return salary.ApplyConfidenceThreshold(result, c.opts.MinSalaryConfidence)
}

func (c *Controller) persistProgress(ctx context.Context, state *models.ScanState) {
	if err := c.repository.PutScanState(ctx, state); err != nil {
		logging.Scoped(ctx, c.logger, logrus.Fields{"component": "scan_controller"}).WithError(err).Warn("failed to persist scan progress")
	}
}
