package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestCorrelationIDRoundTripsThroughContext(t *testing.T) {
	if got := CorrelationID(context.Background()); got != "" {
		t.Fatalf("expected empty correlation id on bare context, got %q", got)
	}

	ctx := WithCorrelationID(context.Background(), "abc12345")
	if got := CorrelationID(ctx); got != "abc12345" {
		t.Fatalf("got %q", got)
	}
}

func TestNewFallsBackToInfoOnUnrecognizedLevel(t *testing.T) {
	logger := New("not-a-real-level")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected InfoLevel fallback, got %v", logger.GetLevel())
	}
}

func TestScopedMergesCorrelationIDAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info")
	logger.SetOutput(&buf)

	ctx := WithCorrelationID(context.Background(), "scan-1234")
	Scoped(ctx, logger, logrus.Fields{"component": "scan_controller"}).Info("hello")

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if decoded["correlation_id"] != "scan-1234" {
		t.Errorf("correlation_id = %v", decoded["correlation_id"])
	}
	if decoded["component"] != "scan_controller" {
		t.Errorf("component = %v", decoded["component"])
	}
	if decoded["message"] != "hello" {
		t.Errorf("message = %v", decoded["message"])
	}
}
