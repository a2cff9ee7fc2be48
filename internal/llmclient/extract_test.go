package llmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractJobInfoParsesWellFormedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{
			Response: `{"primary_function":"TPM","yoe_required":{"min":8,"max":12},"work_mode":"remote","location":"Remote, US","relevance_score":0.85,"key_requirements":["TPM experience","AI platform"]}`,
		})
	}))
	defer server.Close()

	client := New(server.URL, "test-model", 0)
	info := client.ExtractJobInfo(context.Background(), "a job description")

	if info.PrimaryFunction != "TPM" {
		t.Errorf("PrimaryFunction = %q", info.PrimaryFunction)
	}
	if info.YOEMin == nil || *info.YOEMin != 8 {
		t.Errorf("YOEMin = %+v", info.YOEMin)
	}
	if info.YOEMax == nil || *info.YOEMax != 12 {
		t.Errorf("YOEMax = %+v", info.YOEMax)
	}
	if info.WorkMode != "remote" {
		t.Errorf("WorkMode = %q", info.WorkMode)
	}
	if len(info.KeyRequirements) != 2 {
		t.Errorf("KeyRequirements = %+v", info.KeyRequirements)
	}
}

func TestExtractJobInfoFallsBackToSentinelOnUnparsableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "not json at all"})
	}))
	defer server.Close()

	client := New(server.URL, "test-model", 0)
	info := client.ExtractJobInfo(context.Background(), "a job description")

	want := sentinelExtractedInfo()
	if info.PrimaryFunction != want.PrimaryFunction || info.WorkMode != want.WorkMode || info.Location != want.Location {
		t.Errorf("expected sentinel defaults, got %+v", info)
	}
}

func TestExtractJobInfoFallsBackToSentinelOnTransportFailure(t *testing.T) {
	client := New("http://127.0.0.1:1", "test-model", 0)
	info := client.ExtractJobInfo(context.Background(), "a job description")

	want := sentinelExtractedInfo()
	if info.PrimaryFunction != want.PrimaryFunction {
		t.Errorf("expected sentinel default on transport failure, got %+v", info)
	}
}
