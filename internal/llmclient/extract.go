package llmclient

import (
	"context"
	"fmt"

	"auros/internal/jsonsalvage"
)

const extractionPrompt = `You are extracting structured information from a job description.
Return ONLY valid JSON with these fields:
{"primary_function": "TPM|PM|Platform|SRE|AI/ML|Other", "yoe_required": {"min": int, "max": int} | null, "work_mode": "remote|hybrid|onsite|unclear", "location": string, "relevance_score": number, "key_requirements": [string, ...]}

Rules:
- relevance_score is 0.0 to 1.0 for Principal TPM targeting AI/Platform roles.
- If YOE not specified, return null.
- If location not specified, return "Unknown".
- Use "unclear" for work_mode if not explicit.

Job Description:
%s`

// ExtractedInfo is the structured field set the extraction prompt yields.
type ExtractedInfo struct {
	PrimaryFunction string
	YOEMin          *int
	YOEMax          *int
	WorkMode        string
	Location        string
	RelevanceScore  float64
	KeyRequirements []string
}

// sentinelExtractedInfo is returned whenever the LLM call fails or its
// response can't be salvaged into JSON, matching extract_job_info's
// fallback defaults exactly.
func sentinelExtractedInfo() ExtractedInfo {
	return ExtractedInfo{
		PrimaryFunction: "Other",
		WorkMode:        "unclear",
		Location:        "Unknown",
		RelevanceScore:  0.0,
		KeyRequirements: []string{},
	}
}

// ExtractJobInfo prompts the LLM to extract structured fields from a job
// description, returning sentinel defaults on any transport or parse
// failure rather than propagating an error (this function never fails the
// caller's per-job processing).
func (c *Client) ExtractJobInfo(ctx context.Context, description string) ExtractedInfo {
	prompt := fmt.Sprintf(extractionPrompt, description)
	raw, err := c.Generate(ctx, prompt)
	if err != nil {
		return sentinelExtractedInfo()
	}

	parsed, ok := jsonsalvage.Parse(raw)
	if !ok {
		return sentinelExtractedInfo()
	}

	info := sentinelExtractedInfo()
	if v, ok := parsed["primary_function"].(string); ok && v != "" {
		info.PrimaryFunction = v
	}
	if v, ok := parsed["work_mode"].(string); ok && v != "" {
		info.WorkMode = v
	}
	if v, ok := parsed["location"].(string); ok && v != "" {
		info.Location = v
	}
	if v, ok := parsed["relevance_score"].(float64); ok {
		info.RelevanceScore = v
	}
	if v, ok := parsed["yoe_required"].(map[string]any); ok {
		if minF, ok := v["min"].(float64); ok {
			minI := int(minF)
			info.YOEMin = &minI
		}
		if maxF, ok := v["max"].(float64); ok {
			maxI := int(maxF)
			info.YOEMax = &maxI
		}
	}
	if v, ok := parsed["key_requirements"].([]any); ok {
		reqs := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				reqs = append(reqs, s)
			}
		}
		info.KeyRequirements = reqs
	}

	return info
}
