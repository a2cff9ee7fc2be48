// Package repo defines the Repository contract over Companies, Jobs,
// ScanLog, and ScanState, and ships a JSON-file-backed reference
// implementation. A production deployment is expected to supply its own
// Repository (e.g. backed by Postgres); that concrete SQL engine is out of
// scope here.
package repo

import (
	"context"

	"auros/pkg/models"
)

// Repository is everything the scan controller needs from persistence.
type Repository interface {
	// Companies
	ListEnabledCompanies(ctx context.Context) ([]models.Company, error)
	SeedCompaniesIfEmpty(ctx context.Context, seed []models.Company) error
	UpdateCompanyScrapeStatus(ctx context.Context, companyID, status string) error

	// Jobs
	FindJobByURL(ctx context.Context, url string) (*models.Job, error)
	SaveJob(ctx context.Context, job *models.Job) error
	ListJobs(ctx context.Context) ([]models.Job, error)

	// ScanLog
	AppendScanLog(ctx context.Context, log models.ScanLog) error

	// ScanState
	GetScanState(ctx context.Context) (*models.ScanState, error)
	PutScanState(ctx context.Context, state *models.ScanState) error
}
