// Package models defines the entities persisted by the scan pipeline:
// Company, Job, ScanLog, and the singleton ScanState.
package models

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// Company is a curated career-page target. Only Enabled and LastScraped/
// ScrapeStatus are mutated after seeding; the rest is operator-curated.
type Company struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	CareersURL   string     `json:"careers_url"`
	Tier         int        `json:"tier"`
	Enabled      bool       `json:"enabled"`
	LastScraped  *time.Time `json:"last_scraped,omitempty"`
	ScrapeStatus string     `json:"scrape_status,omitempty"` // success, failed, ""
}

// NewCompany builds a Company with the default tier and enabled state.
func NewCompany(id, name, careersURL string) *Company {
	return &Company{
		ID:         id,
		Name:       name,
		CareersURL: careersURL,
		Tier:       2,
		Enabled:    true,
	}
}

const (
	JobStatusNew        = "new"
	JobStatusBookmarked = "bookmarked"
	JobStatusApplied    = "applied"
	JobStatusHidden     = "hidden"
)

const (
	SalarySourceJD = "jd"
	SalarySourceAI = "ai"
)

const (
	WorkModeRemote   = "remote"
	WorkModeHybrid   = "hybrid"
	WorkModeOnsite   = "onsite"
	WorkModeUnclear  = "unclear"
)

// Job is a single scraped posting, keyed globally-uniquely by URL.
type Job struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Title           string    `json:"title"`
	PrimaryFunction string    `json:"primary_function,omitempty"`
	URL             string    `json:"url"`
	YOEMin          *int      `json:"yoe_min,omitempty"`
	YOEMax          *int      `json:"yoe_max,omitempty"`
	YOESource       string    `json:"yoe_source,omitempty"`
	SalaryMin       *int      `json:"salary_min,omitempty"`
	SalaryMax       *int      `json:"salary_max,omitempty"`
	SalarySource    string    `json:"salary_source,omitempty"`
	SalaryConfidence *float64 `json:"salary_confidence,omitempty"`
	SalaryEstimated bool      `json:"salary_estimated"`
	WorkMode        string    `json:"work_mode,omitempty"`
	Location        string    `json:"location,omitempty"`
	MatchScore      *float64  `json:"match_score,omitempty"`
	RawDescription  string    `json:"raw_description,omitempty"`
	Status          string    `json:"status"`
	FirstSeen       time.Time `json:"first_seen"`
	LastSeen        time.Time `json:"last_seen"`
	Notified        bool      `json:"notified"`
}

// NewJob constructs a fresh posting in the "new" status, unnotified, with
// first_seen/last_seen set to now.
func NewJob(companyID, title, url string) *Job {
	now := time.Now().UTC()
	j := &Job{
		CompanyID: companyID,
		Title:     strings.TrimSpace(title),
		URL:       strings.TrimSpace(url),
		Status:    JobStatusNew,
		FirstSeen: now,
		LastSeen:  now,
	}
	j.ID = j.GenerateID()
	return j
}

// GenerateID derives a stable opaque ID from the job's dedup key (URL),
// salted with company and title so collisions across companies with
// coincidentally identical URLs (should never happen, but defensively)
// still separate.
func (j *Job) GenerateID() string {
	data := fmt.Sprintf("%s|%s|%s", j.CompanyID, strings.ToLower(j.Title), j.URL)
	hash := md5.Sum([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// TouchLastSeen advances LastSeen to now and backfills RawDescription if it
// was previously empty, matching process_job's update-existing path.
func (j *Job) TouchLastSeen(description string) {
	j.LastSeen = time.Now().UTC()
	if j.RawDescription == "" && description != "" {
		j.RawDescription = description
	}
}

// ScanLog is an immutable record of one completed scan.
type ScanLog struct {
	ID                string    `json:"id"`
	StartedAt         time.Time `json:"started_at"`
	CompletedAt       time.Time `json:"completed_at"`
	CompaniesScanned  int       `json:"companies_scanned"`
	JobsFound         int       `json:"jobs_found"`
	JobsNew           int       `json:"jobs_new"`
	Errors            []string  `json:"errors"`
}

const (
	ScanStatusIdle      = "idle"
	ScanStatusRunning   = "running"
	ScanStatusCompleted = "completed"
)

// ScanStateID is the fixed key of the singleton ScanState row.
const ScanStateID = "current"

// ScanState is the singleton row the controller uses as its mutex and
// progress tracker.
type ScanState struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CompaniesScanned int        `json:"companies_scanned"`
	JobsFound        int        `json:"jobs_found"`
	JobsNew          int        `json:"jobs_new"`
	Errors           []string   `json:"errors"`
}

// IdleScanState is the zero-progress state a fresh store should report.
func IdleScanState() *ScanState {
	return &ScanState{ID: ScanStateID, Status: ScanStatusIdle, Errors: []string{}}
}
