package scan

import "fmt"

// LLMFailure marks a failure that occurred while talking to the language
// model, kept distinct from ScrapeError and RepositoryError so callers can
// discriminate failure domains with errors.As.
type LLMFailure struct {
	Op      string
	Message string
}

func (e *LLMFailure) Error() string {
	return fmt.Sprintf("llm %s: %s", e.Op, e.Message)
}

// RepositoryError marks a failure persisting or reading state through the
// Repository. Unlike a per-company scrape failure, a RepositoryError during
// the ScanState write is treated as catastrophic and aborts RunFullScan.
type RepositoryError struct {
	Op      string
	Message string
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %s", e.Op, e.Message)
}
