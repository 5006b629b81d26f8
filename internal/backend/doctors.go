package backend

import (
	"context"
	"net/http"

	"healthease/internal/model"
)

type doctorsResponse struct {
	Doctors []model.Doctor `json:"doctors"`
}

// Doctors fetches the full catalog. A missing list decodes as empty.
func (c *Client) Doctors(ctx context.Context) ([]model.Doctor, error) {
	var resp doctorsResponse
	if err := c.do(ctx, http.MethodGet, "/doctors", "", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Doctors == nil {
		return []model.Doctor{}, nil
	}
	return resp.Doctors, nil
}
