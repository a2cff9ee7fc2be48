// Package salary extracts an annual USD salary band from a job description,
// first by regex, then by falling back to an LLM estimate, then gating on
// confidence. Both k-notation patterns have a latent bug: their capture
// groups exclude the trailing "k", so normalizeSalary receives "150" rather
// than "150k" and returns 150 instead of 150000. That bug is reproduced
// verbatim rather than silently fixed.
package salary

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"auros/internal/jsonsalvage"
	"auros/internal/llmclient"
)

const (
	SourceJD = "jd"
	SourceAI = "ai"
)

// Result is a normalized salary band with its provenance.
type Result struct {
	Min        int
	Max        int
	Source     string
	Confidence float64
}

// Ordered the same way the reference implementation tries them: full
// dollar-comma range first, then bare k-notation, then dollar-prefixed
// k-notation (both k-notation patterns carry the bug).
var (
	dollarCommaRange = regexp.MustCompile(`(?i)\$\s?(\d{2,3}(?:,\d{3})?)\s?[-–]\s?\$\s?(\d{2,3}(?:,\d{3})?)`)
	bareKRange       = regexp.MustCompile(`(?i)(\d{2,3})\s?k\s?[-–]\s?(\d{2,3})\s?k`)
	dollarKRange     = regexp.MustCompile(`(?i)\$\s?(\d{2,3})\s?k\s?[-–]\s?\$\s?(\d{2,3})\s?k`)
)

// ExtractFromText runs the three regex patterns over description in order
// and returns the first match, normalized. Returns (Result{}, false) if
// none match.
func ExtractFromText(description string) (Result, bool) {
	for _, pattern := range []*regexp.Regexp{dollarCommaRange, bareKRange, dollarKRange} {
		if m := pattern.FindStringSubmatch(description); m != nil {
			min, okMin := normalizeSalaryToken(m[1])
			max, okMax := normalizeSalaryToken(m[2])
			if okMin && okMax {
				return Result{Min: min, Max: max, Source: SourceJD, Confidence: 0.9}, true
			}
		}
	}
	return Result{}, false
}

// normalizeSalaryToken strips commas/whitespace; if the token (as captured
// by the regex group, which for the k-notation patterns never includes the
// "k" suffix) ends with "k" it strips and multiplies by 1000, otherwise it
// parses the bare integer. The k-notation patterns above never hand this
// function a trailing "k" — that asymmetry is the documented bug.
func normalizeSalaryToken(token string) (int, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(token, ",", "")))
	if strings.HasSuffix(cleaned, "k") {
		n, err := strconv.Atoi(strings.TrimSuffix(cleaned, "k"))
		if err != nil {
			return 0, false
		}
		return n * 1000, true
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

const salaryPrompt = `You are estimating an annual USD salary range for a job posting.
Return ONLY valid JSON with these fields:
{"salary_min": int, "salary_max": int, "confidence": number}

Rules:
- confidence is 0.0 to 1.0 reflecting how certain the estimate is.
- Use typical market rates for the role, seniority, and location implied by the text below.

Job Description:
%s`

// EstimateWithLLM asks the LLM client to estimate a salary band when the
// regex pass found nothing. Rejects the result if salary_min/salary_max
// are not present as numbers; coerces a non-numeric confidence to 0.0.
func EstimateWithLLM(ctx context.Context, client *llmclient.Client, description string) (Result, bool) {
	prompt := fmt.Sprintf(salaryPrompt, description)
	raw, err := client.Generate(ctx, prompt)
	if err != nil {
		return Result{}, false
	}

	parsed, ok := jsonsalvage.Parse(raw)
	if !ok {
		return Result{}, false
	}

	minF, minOK := parsed["salary_min"].(float64)
	maxF, maxOK := parsed["salary_max"].(float64)
	if !minOK || !maxOK {
		return Result{}, false
	}

	confidence, ok := parsed["confidence"].(float64)
	if !ok {
		confidence = 0.0
	}

	return Result{Min: int(minF), Max: int(maxF), Source: SourceAI, Confidence: confidence}, true
}

// ApplyConfidenceThreshold discards result (returns ok=false) when its
// confidence is strictly less than minConfidence; otherwise returns it
// unchanged.
func ApplyConfidenceThreshold(result Result, minConfidence float64) (Result, bool) {
	if result.Confidence < minConfidence {
		return Result{}, false
	}
	return result, true
}
