package strategy

import "testing"

func TestWorkdayJobEntryTitleFallsBackToJobTitle(t *testing.T) {
	e := workdayJobEntry{JobTitle: "Principal TPM"}
	if got := e.title(); got != "Principal TPM" {
		t.Fatalf("got %q", got)
	}
}

func TestWorkdayJobEntryPathPrecedence(t *testing.T) {
	e := workdayJobEntry{ExternalURLLower: "/job/123", ExternalPath: "/fallback"}
	if got := e.path(); got != "/job/123" {
		t.Fatalf("got %q", got)
	}

	e2 := workdayJobEntry{ExternalPath: "/fallback"}
	if got := e2.path(); got != "/fallback" {
		t.Fatalf("got %q", got)
	}
}

func TestWorkdaySearchResponseEntriesPrefersTopLevel(t *testing.T) {
	resp := workdaySearchResponse{
		JobPostings: []workdayJobEntry{{Title: "a"}},
		Data:        &workdaySearchData{Jobs: []workdayJobEntry{{Title: "b"}}},
	}
	entries := resp.entries()
	if len(entries) != 1 || entries[0].Title != "a" {
		t.Fatalf("expected top-level jobPostings to win, got %+v", entries)
	}
}

func TestWorkdaySearchResponseEntriesFallsBackToData(t *testing.T) {
	resp := workdaySearchResponse{
		Data: &workdaySearchData{JobPostings: []workdayJobEntry{{Title: "c"}}},
	}
	entries := resp.entries()
	if len(entries) != 1 || entries[0].Title != "c" {
		t.Fatalf("expected data.jobPostings fallback, got %+v", entries)
	}
}
