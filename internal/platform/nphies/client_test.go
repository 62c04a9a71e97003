package nphies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestMockConnector_SubmitClaim(t *testing.T) {
	m := NewMockConnector()

	result, err := m.SubmitClaim(context.Background(), ClaimSubmission{ClaimNumber: "CLM-2024-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != "SUBMITTED" {
		t.Errorf("expected SUBMITTED, got %s", result.Status)
	}
	if result.NphiesClaimID != "NPH-CLM-2024-001" {
		t.Errorf("unexpected claim id: %s", result.NphiesClaimID)
	}
}

func newTestPlatform(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var tokenCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		if r.FormValue("grant_type") != "client_credentials" {
			http.Error(w, "bad grant", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-1",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/claims/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var claim ClaimSubmission
		json.NewDecoder(r.Body).Decode(&claim)
		json.NewEncoder(w).Encode(SubmissionResult{
			Status:        "SUBMITTED",
			NphiesClaimID: "NPH-" + claim.ClaimNumber,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenCalls
}

func TestClient_SubmitClaim(t *testing.T) {
	srv, _ := newTestPlatform(t)
	c := NewClient(srv.URL, "client", "secret")

	result, err := c.SubmitClaim(context.Background(), ClaimSubmission{ClaimNumber: "CLM-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NphiesClaimID != "NPH-CLM-7" {
		t.Errorf("unexpected claim id: %s", result.NphiesClaimID)
	}
}

func TestClient_TokenCached(t *testing.T) {
	srv, tokenCalls := newTestPlatform(t)
	c := NewClient(srv.URL, "client", "secret")

	for i := 0; i < 3; i++ {
		if _, err := c.SubmitClaim(context.Background(), ClaimSubmission{ClaimNumber: "CLM-7"}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if got := tokenCalls.Load(); got != 1 {
		t.Errorf("expected 1 token request, got %d", got)
	}
}

func TestClient_TokenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client", "bad-secret")
	if _, err := c.SubmitClaim(context.Background(), ClaimSubmission{ClaimNumber: "CLM-7"}); err == nil {
		t.Error("expected error when token endpoint fails")
	}
}
