package entity

import (
	"time"
)

// Loyalty entities are owned by the upstream API. The gateway only renders
// them and triggers single-purpose actions (claim, redeem, open, upgrade).

type LoyaltyBalance struct {
	UserID     string `json:"user_id"`
	Points     int    `json:"points"`
	Tier       string `json:"tier"`
	TierPoints int    `json:"tier_points"`
	NextTier   string `json:"next_tier,omitempty"`
	NextTierAt int    `json:"next_tier_at,omitempty"`
}

type PointsTransaction struct {
	ID        string    `json:"id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Image       string `json:"image,omitempty"`
	Available   bool   `json:"available"`
}

type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Completed   bool   `json:"completed"`
	Claimed     bool   `json:"claimed"`
}

type Pack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Image       string `json:"image,omitempty"`
}

// PackOpening is what falls out of a pack.
type PackOpening struct {
	PackID  string   `json:"pack_id"`
	Points  int      `json:"points,omitempty"`
	Rewards []Reward `json:"rewards,omitempty"`
}

type Membership struct {
	Tier       string    `json:"tier"`
	Since      time.Time `json:"since"`
	Perks      []string  `json:"perks,omitempty"`
	Upgradable bool      `json:"upgradable"`
}
