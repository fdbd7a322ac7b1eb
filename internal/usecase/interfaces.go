package usecase

import (
	"context"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
)

type SessionStore interface {
	Load(ctx context.Context, id string) *session.Session
	Save(ctx context.Context, sess *session.Session) error
	Delete(ctx context.Context, id string) error
}

type ToastNotifier interface {
	ToastShown(sessionID string, toast *entity.CartToast)
	ToastDismissed(sessionID string)
}
