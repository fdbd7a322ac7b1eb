package upstream

import (
	"context"
	"net/http"
	"net/url"

	"pixelmart/internal/domain/entity"
)

type AwardPointsRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

func (c *Client) GetLoyaltyBalance(ctx context.Context, token string) (*entity.LoyaltyBalance, error) {
	var out entity.LoyaltyBalance
	if err := c.doJSON(ctx, token, http.MethodGet, "/loyalty/balance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLoyaltyHistory(ctx context.Context, token string) ([]entity.PointsTransaction, error) {
	var out []entity.PointsTransaction
	if err := c.doJSON(ctx, token, http.MethodGet, "/loyalty/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRewards(ctx context.Context, token string) ([]entity.Reward, error) {
	var out []entity.Reward
	if err := c.doJSON(ctx, token, http.MethodGet, "/loyalty/rewards", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RedeemReward(ctx context.Context, token, id string) (*entity.LoyaltyBalance, error) {
	var out entity.LoyaltyBalance
	if err := c.doJSON(ctx, token, http.MethodPost, "/loyalty/rewards/"+url.PathEscape(id)+"/redeem", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListQuests(ctx context.Context, token string) ([]entity.Quest, error) {
	var out []entity.Quest
	if err := c.doJSON(ctx, token, http.MethodGet, "/loyalty/quests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClaimQuest(ctx context.Context, token, id string) (*entity.Quest, error) {
	var out entity.Quest
	if err := c.doJSON(ctx, token, http.MethodPost, "/loyalty/quests/"+url.PathEscape(id)+"/claim", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPacks(ctx context.Context, token string) ([]entity.Pack, error) {
	var out []entity.Pack
	if err := c.doJSON(ctx, token, http.MethodGet, "/loyalty/packs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OpenPack(ctx context.Context, token, id string) (*entity.PackOpening, error) {
	var out entity.PackOpening
	if err := c.doJSON(ctx, token, http.MethodPost, "/loyalty/packs/"+url.PathEscape(id)+"/open", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMembership(ctx context.Context, token string) (*entity.Membership, error) {
	var out entity.Membership
	if err := c.doJSON(ctx, token, http.MethodGet, "/loyalty/membership", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpgradeTier(ctx context.Context, token string) (*entity.Membership, error) {
	var out entity.Membership
	if err := c.doJSON(ctx, token, http.MethodPost, "/loyalty/membership/upgrade", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AwardPoints is the best-effort hook called after a confirmed payment.
func (c *Client) AwardPoints(ctx context.Context, token string, req AwardPointsRequest) error {
	return c.doJSON(ctx, token, http.MethodPost, "/loyalty/award", req, nil)
}
