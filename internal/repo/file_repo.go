package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"auros/pkg/models"
)

// FileRepository is a mutex-guarded, JSON-file-backed Repository: one JSON
// file per collection, rewritten wholesale on every mutation.
type FileRepository struct {
	mu   sync.Mutex
	dir  string
}

// NewFileRepository creates (if needed) dataDir and returns a Repository
// backed by JSON files within it.
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileRepository{dir: dataDir}, nil
}

func (r *FileRepository) path(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *FileRepository) readJSON(name string, v any) error {
	data, err := os.ReadFile(r.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (r *FileRepository) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path(name), data, 0o644)
}

func (r *FileRepository) ListEnabledCompanies(ctx context.Context) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var companies []models.Company
	if err := r.readJSON("companies.json", &companies); err != nil {
		return nil, err
	}

	var enabled []models.Company
	for _, c := range companies {
		if c.Enabled {
			enabled = append(enabled, c)
		}
	}
	return enabled, nil
}

func (r *FileRepository) SeedCompaniesIfEmpty(ctx context.Context, seed []models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var companies []models.Company
	if err := r.readJSON("companies.json", &companies); err != nil {
		return err
	}
	if len(companies) > 0 {
		return nil
	}
	return r.writeJSON("companies.json", seed)
}

func (r *FileRepository) UpdateCompanyScrapeStatus(ctx context.Context, companyID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var companies []models.Company
	if err := r.readJSON("companies.json", &companies); err != nil {
		return err
	}
	now := nowUTC()
	for i := range companies {
		if companies[i].ID == companyID {
			companies[i].ScrapeStatus = status
			companies[i].LastScraped = &now
		}
	}
	return r.writeJSON("companies.json", companies)
}

func (r *FileRepository) FindJobByURL(ctx context.Context, url string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []models.Job
	if err := r.readJSON("jobs.json", &jobs); err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].URL == url {
			job := jobs[i]
			return &job, nil
		}
	}
	return nil, nil
}

func (r *FileRepository) SaveJob(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []models.Job
	if err := r.readJSON("jobs.json", &jobs); err != nil {
		return err
	}

	for i := range jobs {
		if jobs[i].URL == job.URL {
			jobs[i] = *job
			return r.writeJSON("jobs.json", jobs)
		}
	}
	jobs = append(jobs, *job)
	return r.writeJSON("jobs.json", jobs)
}

func (r *FileRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []models.Job
	if err := r.readJSON("jobs.json", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *FileRepository) AppendScanLog(ctx context.Context, log models.ScanLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var logs []models.ScanLog
	if err := r.readJSON("scan_logs.json", &logs); err != nil {
		return err
	}
	logs = append(logs, log)
	return r.writeJSON("scan_logs.json", logs)
}

func (r *FileRepository) GetScanState(ctx context.Context) (*models.ScanState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var state models.ScanState
	if err := r.readJSON("scan_state.json", &state); err != nil {
		return nil, err
	}
	if state.ID == "" {
		return models.IdleScanState(), nil
	}
	return &state, nil
}

func (r *FileRepository) PutScanState(ctx context.Context, state *models.ScanState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state.ID = models.ScanStateID
	return r.writeJSON("scan_state.json", state)
}
