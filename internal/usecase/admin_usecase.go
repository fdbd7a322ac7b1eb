package usecase

import (
	"context"
	"sync"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
)

type AdminUseCase struct {
	api *upstream.Client
}

func NewAdminUseCase(api *upstream.Client) *AdminUseCase {
	return &AdminUseCase{api: api}
}

// Dashboard is the admin landing view model. Stats and recent users are
// fetched as independent requests, like the dashboard page issuing both at
// once; one failing only blanks its own section.
type Dashboard struct {
	Stats       *upstream.AdminStats `json:"stats,omitempty"`
	RecentUsers []entity.User        `json:"recent_users,omitempty"`
	Errors      map[string]string    `json:"errors,omitempty"`
}

func (uc *AdminUseCase) GetDashboard(ctx context.Context, sess *session.Session) *Dashboard {
	dashboard := &Dashboard{}
	errs := make(map[string]string)

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, err := uc.api.GetAdminStats(ctx, sess.Token)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs["stats"] = err.Error()
			return
		}
		dashboard.Stats = stats
	}()
	go func() {
		defer wg.Done()
		users, err := uc.api.ListRecentUsers(ctx, sess.Token)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs["recent_users"] = err.Error()
			return
		}
		dashboard.RecentUsers = users
	}()
	wg.Wait()

	if len(errs) > 0 {
		dashboard.Errors = errs
	}
	return dashboard
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, sess *session.Session) ([]entity.User, error) {
	return uc.api.ListUsers(ctx, sess.Token)
}

func (uc *AdminUseCase) UpdateUser(ctx context.Context, sess *session.Session, id string, input upstream.UpdateUserRequest) (*entity.User, error) {
	return uc.api.UpdateUser(ctx, sess.Token, id, input)
}

func (uc *AdminUseCase) DeleteUser(ctx context.Context, sess *session.Session, id string) error {
	return uc.api.DeleteUser(ctx, sess.Token, id)
}
