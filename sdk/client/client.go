package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the DroneHQ API client
type Config struct {
	// BaseURL is the base URL of the DroneHQ API
	BaseURL string
	// Token is the bearer token used for authenticated requests
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the DroneHQ API client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new DroneHQ client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken stores the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Ok    bool            `json:"ok"`
	User  json.RawMessage `json:"user,omitempty"`
	Token string          `json:"token,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	endpoint := fmt.Sprintf("%s/api/auth/login", c.config.BaseURL)
	var resp LoginResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	c.config.Token = resp.Token
	return &resp, nil
}

// ValidateCodeResponse represents a join code lookup response
type ValidateCodeResponse struct {
	Ok           bool   `json:"ok"`
	Kind         string `json:"kind"`
	Organization string `json:"organization"`
	Class        string `json:"class,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ValidateCode resolves a join or class code before signup.
func (c *Client) ValidateCode(ctx context.Context, code string) (*ValidateCodeResponse, error) {
	if code == "" {
		return nil, errors.New("code is required")
	}

	endpoint := fmt.Sprintf("%s/api/codes/%s", c.config.BaseURL, code)
	var resp ValidateCodeResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// FlightLogRequest represents a flight log creation request
type FlightLogRequest struct {
	Date           string `json:"date"`
	PilotName      string `json:"pilot_name,omitempty"`
	DroneModel     string `json:"drone_model"`
	Location       string `json:"location,omitempty"`
	Weather        string `json:"weather,omitempty"`
	FlightDuration int    `json:"flight_duration"`
	TakeoffTime    string `json:"takeoff_time,omitempty"`
	LandingTime    string `json:"landing_time,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// FlightLogResponse represents a flight log
type FlightLogResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Date           string `json:"date"`
	DroneModel     string `json:"drone_model"`
	Location       string `json:"location"`
	FlightDuration int    `json:"flight_duration"`
	TakeoffTime    string `json:"takeoff_time"`
	LandingTime    string `json:"landing_time"`
	Notes          string `json:"notes"`
	Error          string `json:"error,omitempty"`
}

// CreateFlight records a completed flight
func (c *Client) CreateFlight(ctx context.Context, req *FlightLogRequest) (*FlightLogResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Date == "" || req.DroneModel == "" {
		return nil, errors.New("date and drone_model are required")
	}

	endpoint := fmt.Sprintf("%s/api/flights", c.config.BaseURL)
	var resp FlightLogResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// ListFlightsResponse represents a paginated flight list
type ListFlightsResponse struct {
	Ok    bool                `json:"ok"`
	Items []FlightLogResponse `json:"items"`
	Total int64               `json:"total"`
}

// ListFlights pages through the caller's visible flights
func (c *Client) ListFlights(ctx context.Context, offset, limit int) (*ListFlightsResponse, error) {
	endpoint := fmt.Sprintf("%s/api/flights?offset=%d&limit=%d", c.config.BaseURL, offset, limit)
	var resp ListFlightsResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StartFlightRequest represents a live flight start request
type StartFlightRequest struct {
	DroneModel string   `json:"drone_model"`
	Location   string   `json:"location,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// ActiveFlightResponse represents an in-progress flight
type ActiveFlightResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	DroneModel string `json:"drone_model"`
	Location   string `json:"location"`
	StartedAt  string `json:"started_at"`
	Error      string `json:"error,omitempty"`
}

// StartFlight opens a live flight
func (c *Client) StartFlight(ctx context.Context, req *StartFlightRequest) (*ActiveFlightResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.DroneModel == "" {
		return nil, errors.New("drone_model is required")
	}

	endpoint := fmt.Sprintf("%s/api/flights/start", c.config.BaseURL)
	var resp ActiveFlightResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// EndFlightRequest represents a live flight end request
type EndFlightRequest struct {
	Notes string `json:"notes,omitempty"`
}

// EndFlight closes the caller's live flight and returns the resulting log
func (c *Client) EndFlight(ctx context.Context, req *EndFlightRequest) (*FlightLogResponse, error) {
	if req == nil {
		req = &EndFlightRequest{}
	}

	endpoint := fmt.Sprintf("%s/api/flights/end", c.config.BaseURL)
	var resp FlightLogResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// MembershipResponse represents a membership
type MembershipResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	Approved       bool   `json:"approved"`
	Error          string `json:"error,omitempty"`
}

// ApproveMembership grants a pending membership
func (c *Client) ApproveMembership(ctx context.Context, membershipID string) (*MembershipResponse, error) {
	if membershipID == "" {
		return nil, errors.New("membership_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/memberships/%s/approve", c.config.BaseURL, membershipID)
	var resp MembershipResponse
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// RejectMembership removes a pending membership
func (c *Client) RejectMembership(ctx context.Context, membershipID string) error {
	if membershipID == "" {
		return errors.New("membership_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/memberships/%s/reject", c.config.BaseURL, membershipID)
	var resp struct {
		Ok    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New(resp.Error)
	}
	return nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error_code,omitempty"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (Status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Marshal request to JSON
	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := checkStatus(httpResp); err != nil {
		return err
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// get performs a GET request to the specified endpoint and unmarshals the response into the specified response object
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	c.authorize(httpReq)

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := checkStatus(httpResp); err != nil {
		return err
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}
}

func checkStatus(httpResp *http.Response) error {
	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return nil
	}

	// Try to decode error response
	var apiErr APIError
	if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
		// If we can't decode the error, create a generic one
		return &APIError{
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
		}
	}

	apiErr.StatusCode = httpResp.StatusCode
	return &apiErr
}
