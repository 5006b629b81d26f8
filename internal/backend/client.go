package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"healthease/internal/model"
)

// API is the HealthEase REST backend as seen by the frontend.
type API interface {
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Verify(ctx context.Context, token string) (*model.User, error)
	Doctors(ctx context.Context) ([]model.Doctor, error)
	BookAppointment(ctx context.Context, token string, req model.AppointmentRequest) (string, error)
	DashboardStats(ctx context.Context, token string) (*model.DashboardStats, error)
	SeedDoctors(ctx context.Context) (string, error)
	SeedAdmin(ctx context.Context) (string, error)
}

// Client talks JSON to the backend over HTTP.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// New creates a backend client rooted at baseURL (e.g. http://127.0.0.1:3000/api).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

// messageBody is the envelope every backend response may carry.
type messageBody struct {
	Message string `json:"message"`
}

// do sends one request and decodes a success body into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageBody
		_ = json.Unmarshal(raw, &msg)
		kind := KindRejected
		if resp.StatusCode == http.StatusUnauthorized {
			kind = KindUnauthorized
		}
		return &Error{Kind: kind, Status: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindMalformed, Status: resp.StatusCode, Message: "invalid JSON body", Err: err}
	}
	return nil
}

// check validates a decoded success payload.
func (c *Client) check(status int, v interface{}) error {
	if err := c.validate.Struct(v); err != nil {
		return &Error{Kind: KindMalformed, Status: status, Message: err.Error(), Err: err}
	}
	return nil
}
