package backend

import (
	"context"
	"net/http"

	"healthease/internal/model"
)

// BookAppointment submits req on behalf of the bearer of token.
func (c *Client) BookAppointment(ctx context.Context, token string, req model.AppointmentRequest) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodPost, "/appointments", token, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DashboardStats returns the patient's counters.
func (c *Client) DashboardStats(ctx context.Context, token string) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SeedDoctors asks the backend to insert its demo doctors.
func (c *Client) SeedDoctors(ctx context.Context) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodGet, "/seed_doctors", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// SeedAdmin asks the backend to create its default admin account.
func (c *Client) SeedAdmin(ctx context.Context) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodGet, "/seed_admin", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
