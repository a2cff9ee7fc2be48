// Package scoring computes the weighted relevance score for a posting,
// grounded on original_source/api/services/scorer.py's weights, keyword
// lists, and per-dimension formulas.
package scoring

import (
	"math"
	"regexp"
	"strings"
)

const (
	TitleWeight    = 0.30
	KeywordWeight  = 0.25
	YOEWeight      = 0.20
	TierWeight     = 0.15
	WorkModeWeight = 0.10

	yoeTargetMin = 8
	yoeTargetMax = 15
)

var titleKeywords = []string{
	"principal", "senior", "staff", "lead", "tpm", "technical program",
	"program manager", "product manager",
}

var aiPlatformKeywords = []string{
	"ai", "ml", "machine learning", "platform", "infrastructure", "infra",
	"sre", "reliability", "observability", "cloud", "data", "genai", "llm",
	"ops", "devops",
}

var titlePatterns = compilePatterns(titleKeywords)
var keywordPatterns = compilePatterns(aiPlatformKeywords)

func compilePatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		escaped := regexp.QuoteMeta(kw)
		withFlexibleSpaces := strings.ReplaceAll(escaped, `\ `, `\s+`)
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+withFlexibleSpaces+`\b`))
	}
	return patterns
}

func countHits(patterns []*regexp.Regexp, text string) int {
	hits := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			hits++
		}
	}
	return hits
}

// ScoreTitle counts title-keyword hits against the posting title and
// returns min(1.0, hits/3).
func ScoreTitle(title string) float64 {
	return math.Min(1.0, float64(countHits(titlePatterns, title))/3.0)
}

// ScoreKeywords counts AI/platform keyword hits against the description and
// returns min(1.0, hits/5).
func ScoreKeywords(description string) float64 {
	return math.Min(1.0, float64(countHits(keywordPatterns, description))/5.0)
}

// ScoreYOE scores the overlap between [yoeMin, yoeMax] and the target
// [8, 15] window. Both bounds nil yields 0.5 (unknown, neutral).
func ScoreYOE(yoeMin, yoeMax *int) float64 {
	if yoeMin == nil && yoeMax == nil {
		return 0.5
	}

	low := yoeTargetMin
	if yoeMin != nil {
		low = *yoeMin
	}
	high := yoeTargetMax
	if yoeMax != nil {
		high = *yoeMax
	}

	overlap := minInt(high, yoeTargetMax) - maxInt(low, yoeTargetMin)
	if overlap < 0 {
		overlap = 0
	}
	span := high - low
	if span < 1 {
		span = 1
	}

	return math.Min(1.0, float64(overlap)/float64(span))
}

// ScoreCompanyTier maps a company's curated tier to a quality score.
func ScoreCompanyTier(tier int) float64 {
	switch tier {
	case 1:
		return 1.0
	case 2:
		return 0.8
	default:
		return 0.6
	}
}

// ScoreWorkMode scores how well a posting's work mode matches the
// configured preference. "any" disables the dimension unconditionally
// (checked before any nil handling, per the documented design decision).
func ScoreWorkMode(workMode, preferred string) float64 {
	if strings.EqualFold(preferred, "any") {
		return 1.0
	}
	if workMode == "" {
		return 0.5
	}
	if strings.EqualFold(workMode, preferred) {
		return 1.0
	}
	return 0.2
}

// Input bundles everything ComputeMatchScore needs for one posting.
type Input struct {
	Title         string
	Description   string
	YOEMin        *int
	YOEMax        *int
	CompanyTier   int
	WorkMode      string
	PreferredMode string
}

// ComputeMatchScore returns the weighted sum of all five sub-scores,
// clamped to [0,1] and rounded to 4 decimal places.
func ComputeMatchScore(in Input) float64 {
	total := TitleWeight*ScoreTitle(in.Title) +
		KeywordWeight*ScoreKeywords(in.Description) +
		YOEWeight*ScoreYOE(in.YOEMin, in.YOEMax) +
		TierWeight*ScoreCompanyTier(in.CompanyTier) +
		WorkModeWeight*ScoreWorkMode(in.WorkMode, in.PreferredMode)

	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}
	return math.Round(total*10000) / 10000
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
