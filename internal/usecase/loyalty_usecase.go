package usecase

import (
	"context"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
)

// LoyaltyUseCase is fetch-and-render plumbing over the upstream loyalty
// endpoints; actions are single-purpose passthroughs.
type LoyaltyUseCase struct {
	api *upstream.Client
}

func NewLoyaltyUseCase(api *upstream.Client) *LoyaltyUseCase {
	return &LoyaltyUseCase{api: api}
}

// Overview is the rewards page view model. Sections load independently: a
// failed section comes back empty rather than failing the page.
type Overview struct {
	Balance    *entity.LoyaltyBalance     `json:"balance,omitempty"`
	History    []entity.PointsTransaction `json:"history,omitempty"`
	Rewards    []entity.Reward            `json:"rewards,omitempty"`
	Quests     []entity.Quest             `json:"quests,omitempty"`
	Packs      []entity.Pack              `json:"packs,omitempty"`
	Membership *entity.Membership         `json:"membership,omitempty"`
	Errors     map[string]string          `json:"errors,omitempty"`
}

func (uc *LoyaltyUseCase) GetOverview(ctx context.Context, sess *session.Session) *Overview {
	overview := &Overview{Errors: map[string]string{}}
	token := sess.Token

	if balance, err := uc.api.GetLoyaltyBalance(ctx, token); err != nil {
		overview.Errors["balance"] = err.Error()
	} else {
		overview.Balance = balance
	}

	if history, err := uc.api.GetLoyaltyHistory(ctx, token); err != nil {
		overview.Errors["history"] = err.Error()
	} else {
		overview.History = history
	}

	if rewards, err := uc.api.ListRewards(ctx, token); err != nil {
		overview.Errors["rewards"] = err.Error()
	} else {
		overview.Rewards = rewards
	}

	if quests, err := uc.api.ListQuests(ctx, token); err != nil {
		overview.Errors["quests"] = err.Error()
	} else {
		overview.Quests = quests
	}

	if packs, err := uc.api.ListPacks(ctx, token); err != nil {
		overview.Errors["packs"] = err.Error()
	} else {
		overview.Packs = packs
	}

	if membership, err := uc.api.GetMembership(ctx, token); err != nil {
		overview.Errors["membership"] = err.Error()
	} else {
		overview.Membership = membership
	}

	if len(overview.Errors) == 0 {
		overview.Errors = nil
	}
	return overview
}

func (uc *LoyaltyUseCase) RedeemReward(ctx context.Context, sess *session.Session, rewardID string) (*entity.LoyaltyBalance, error) {
	return uc.api.RedeemReward(ctx, sess.Token, rewardID)
}

func (uc *LoyaltyUseCase) ClaimQuest(ctx context.Context, sess *session.Session, questID string) (*entity.Quest, error) {
	return uc.api.ClaimQuest(ctx, sess.Token, questID)
}

func (uc *LoyaltyUseCase) OpenPack(ctx context.Context, sess *session.Session, packID string) (*entity.PackOpening, error) {
	return uc.api.OpenPack(ctx, sess.Token, packID)
}

func (uc *LoyaltyUseCase) UpgradeTier(ctx context.Context, sess *session.Session) (*entity.Membership, error) {
	return uc.api.UpgradeTier(ctx, sess.Token)
}
