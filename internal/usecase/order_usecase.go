package usecase

import (
	"context"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
)

// OrderUseCase reads back orders created at checkout; the gateway never
// mutates them beyond cancel.
type OrderUseCase struct {
	api *upstream.Client
}

func NewOrderUseCase(api *upstream.Client) *OrderUseCase {
	return &OrderUseCase{api: api}
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, sess *session.Session) ([]entity.Order, error) {
	return uc.api.ListOrders(ctx, sess.Token)
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, sess *session.Session, id string) (*entity.Order, error) {
	return uc.api.GetOrder(ctx, sess.Token, id)
}

func (uc *OrderUseCase) CancelOrder(ctx context.Context, sess *session.Session, id string) error {
	return uc.api.CancelOrder(ctx, sess.Token, id)
}
