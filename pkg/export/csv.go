// Package export writes a timestamped CSV snapshot of the persisted job
// index, as an operator tool rather than a served HTTP endpoint.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"auros/internal/repo"
	"auros/pkg/models"
)

var header = []string{
	"ID", "Title", "Company", "Location", "Salary Min", "Salary Max",
	"Primary Function", "Work Mode", "Match Score", "Status",
	"First Seen", "Last Seen", "URL",
}

// ExportJobs writes every persisted job to a timestamped CSV file under
// dir and returns the file path written.
func ExportJobs(ctx context.Context, repository repo.Repository, dir string) (string, error) {
	jobs, err := repository.ListJobs(ctx)
	if err != nil {
		return "", fmt.Errorf("list jobs: %w", err)
	}
	companies, err := repository.ListEnabledCompanies(ctx)
	if err != nil {
		return "", fmt.Errorf("list companies: %w", err)
	}
	companyNames := make(map[string]string, len(companies))
	for _, c := range companies {
		companyNames[c.ID] = c.Name
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("jobs_export_%s.csv", time.Now().UTC().Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, job := range jobs {
		if err := w.Write(row(job, companyNames)); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return filename, nil
}

func row(job models.Job, companyNames map[string]string) []string {
	companyName := companyNames[job.CompanyID]
	if companyName == "" {
		companyName = job.CompanyID
	}

	return []string{
		job.ID,
		job.Title,
		companyName,
		job.Location,
		intPtrToString(job.SalaryMin),
		intPtrToString(job.SalaryMax),
		job.PrimaryFunction,
		job.WorkMode,
		floatPtrToString(job.MatchScore),
		job.Status,
		job.FirstSeen.Format(time.RFC3339),
		job.LastSeen.Format(time.RFC3339),
		job.URL,
	}
}

func intPtrToString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatPtrToString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
