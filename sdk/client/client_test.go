package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Email != "pilot@example.com" || req.Password != "hunter22" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoginResponse{Error: "Invalid email or password"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{Ok: true, Token: "test-token"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.Login(context.Background(), &LoginRequest{
		Email:    "pilot@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Token != "test-token" {
		t.Errorf("Expected token, got %q", resp.Token)
	}
	if client.config.Token != "test-token" {
		t.Error("Expected token stored on client")
	}

	// Bad credentials
	if _, err := client.Login(context.Background(), &LoginRequest{
		Email:    "pilot@example.com",
		Password: "wrong",
	}); err == nil {
		t.Error("Expected error for bad credentials")
	}

	// Missing fields
	if _, err := client.Login(context.Background(), &LoginRequest{Email: "pilot@example.com"}); err == nil {
		t.Error("Expected error for missing password")
	}
	if _, err := client.Login(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestValidateCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/api/codes/SKYHI123" {
			t.Errorf("Expected /api/codes/SKYHI123 path, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ValidateCodeResponse{
			Ok:           true,
			Kind:         "organization",
			Organization: "Sky High Academy",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.ValidateCode(context.Background(), "SKYHI123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Kind != "organization" {
		t.Errorf("Expected organization kind, got %q", resp.Kind)
	}
	if resp.Organization != "Sky High Academy" {
		t.Errorf("Expected organization name, got %q", resp.Organization)
	}

	if _, err := client.ValidateCode(context.Background(), ""); err == nil {
		t.Error("Expected error for empty code")
	}
}

func TestCreateFlight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/flights" {
			t.Errorf("Expected /api/flights path, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token, got %q", got)
		}

		var req FlightLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(FlightLogResponse{
			ID:             "f-1",
			Date:           req.Date,
			DroneModel:     req.DroneModel,
			FlightDuration: req.FlightDuration,
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	resp, err := client.CreateFlight(context.Background(), &FlightLogRequest{
		Date:           "2025-06-01",
		DroneModel:     "DJI Mini 4 Pro",
		FlightDuration: 22,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.ID != "f-1" {
		t.Errorf("Expected flight ID, got %q", resp.ID)
	}

	if _, err := client.CreateFlight(context.Background(), &FlightLogRequest{Date: "2025-06-01"}); err == nil {
		t.Error("Expected error for missing drone_model")
	}
	if _, err := client.CreateFlight(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]string{"error": "monthly flight limit reached"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	_, err := client.CreateFlight(context.Background(), &FlightLogRequest{
		Date:       "2025-06-01",
		DroneModel: "DJI Mini 4 Pro",
	})
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusPaymentRequired {
		t.Errorf("Expected 402, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "monthly flight limit reached" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
}

func TestApproveMembership(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/memberships/m-1/approve" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MembershipResponse{
			ID:       "m-1",
			Approved: true,
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	resp, err := client.ApproveMembership(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !resp.Approved {
		t.Error("Expected approved membership")
	}

	if _, err := client.ApproveMembership(context.Background(), ""); err == nil {
		t.Error("Expected error for empty membership ID")
	}
}
