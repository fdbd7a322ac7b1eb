package upstream

import (
	"context"
	"net/http"
	"net/url"

	"pixelmart/internal/domain/entity"
)

type CheckoutRequest struct {
	Items   []entity.OrderItem    `json:"items"`
	Billing entity.BillingDetails `json:"billing"`
}

func (c *Client) Checkout(ctx context.Context, token string, req CheckoutRequest) (*entity.Order, error) {
	var out entity.Order
	if err := c.doJSON(ctx, token, http.MethodPost, "/orders/checkout", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]entity.Order, error) {
	var out []entity.Order
	if err := c.doJSON(ctx, token, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (*entity.Order, error) {
	var out entity.Order
	if err := c.doJSON(ctx, token, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelOrder(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, token, http.MethodPost, "/orders/"+url.PathEscape(id)+"/cancel", nil, nil)
}
