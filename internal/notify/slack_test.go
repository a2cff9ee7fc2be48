package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifyReturnsFalseWithoutWebhookConfigured(t *testing.T) {
	n := New("")
	if n.Notify(context.Background(), "hello") {
		t.Fatal("expected false when no webhook is configured")
	}
}

func TestNotifyPostsTextPayloadAndReturnsTrueOn2xx(t *testing.T) {
	var gotBody slackPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := New(server.URL)
	if !n.Notify(context.Background(), "New match: TPM at Stripe") {
		t.Fatal("expected true on 2xx response")
	}
	if gotBody.Text != "New match: TPM at Stripe" {
		t.Fatalf("unexpected payload text: %q", gotBody.Text)
	}
}

func TestNotifyReturnsFalseOnNon2xxResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := New(server.URL)
	if n.Notify(context.Background(), "hello") {
		t.Fatal("expected false on 5xx response")
	}
}

func TestNotifyReturnsFalseOnTransportFailure(t *testing.T) {
	n := New("http://127.0.0.1:1")
	if n.Notify(context.Background(), "hello") {
		t.Fatal("expected false on transport failure")
	}
}
