package scoring

import "testing"

func intPtr(i int) *int { return &i }

func TestScoreTitle(t *testing.T) {
	if got := ScoreTitle("Principal Senior TPM Lead"); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
	if got := ScoreTitle("Software Engineer"); got != 0.0 {
		t.Errorf("got %v, want 0.0", got)
	}
}

func TestScoreYOE(t *testing.T) {
	if got := ScoreYOE(intPtr(8), intPtr(15)); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
	if got := ScoreYOE(intPtr(1), intPtr(5)); got != 0.0 {
		t.Errorf("got %v, want 0.0", got)
	}
	if got := ScoreYOE(nil, nil); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestScoreWorkModeAnyShortCircuits(t *testing.T) {
	if got := ScoreWorkMode("", "any"); got != 1.0 {
		t.Errorf("got %v, want 1.0 for any+empty", got)
	}
	if got := ScoreWorkMode("onsite", "any"); got != 1.0 {
		t.Errorf("got %v, want 1.0 for any+onsite", got)
	}
}

func TestScoreWorkModeSpecificPreference(t *testing.T) {
	if got := ScoreWorkMode("", "remote"); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
	if got := ScoreWorkMode("remote", "remote"); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
	if got := ScoreWorkMode("onsite", "remote"); got != 0.2 {
		t.Errorf("got %v, want 0.2", got)
	}
}

func TestComputeMatchScoreHighForStrongMatch(t *testing.T) {
	score := ComputeMatchScore(Input{
		Title:         "Principal Technical Program Manager",
		Description:   "AI ML platform infrastructure SRE observability cloud",
		YOEMin:        intPtr(8),
		YOEMax:        intPtr(15),
		CompanyTier:   1,
		WorkMode:      "remote",
		PreferredMode: "remote",
	})
	if score < 0.7 {
		t.Errorf("got %v, want >= 0.7", score)
	}
	if score < 0 || score > 1 {
		t.Errorf("score out of bounds: %v", score)
	}
}

func TestComputeMatchScoreAlwaysInBounds(t *testing.T) {
	score := ComputeMatchScore(Input{Title: "", Description: "", CompanyTier: 5, PreferredMode: "remote"})
	if score < 0 || score > 1 {
		t.Errorf("score out of bounds: %v", score)
	}
}
