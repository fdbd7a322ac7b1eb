package upstream

import (
	"context"
	"net/http"
	"net/url"

	"pixelmart/internal/domain/entity"
)

// AdminStats is the dashboard summary block.
type AdminStats struct {
	TotalUsers    int     `json:"total_users"`
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	Revenue       float64 `json:"revenue"`
	SalesByDay    []struct {
		Date  string  `json:"date"`
		Total float64 `json:"total"`
	} `json:"sales_by_day,omitempty"`
}

type UpdateUserRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (c *Client) GetAdminStats(ctx context.Context, token string) (*AdminStats, error) {
	var out AdminStats
	if err := c.doJSON(ctx, token, http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRecentUsers(ctx context.Context, token string) ([]entity.User, error) {
	var out []entity.User
	if err := c.doJSON(ctx, token, http.MethodGet, "/admin/users/recent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]entity.User, error) {
	var out []entity.User
	if err := c.doJSON(ctx, token, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, req UpdateUserRequest) (*entity.User, error) {
	var out entity.User
	if err := c.doJSON(ctx, token, http.MethodPut, "/admin/users/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, token, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil)
}
