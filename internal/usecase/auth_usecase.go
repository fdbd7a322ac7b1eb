package usecase

import (
	"context"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
)

type AuthUseCase struct {
	api   *upstream.Client
	store SessionStore
}

func NewAuthUseCase(api *upstream.Client, store SessionStore) *AuthUseCase {
	return &AuthUseCase{
		api:   api,
		store: store,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// AuthResult carries the signed-in user and, when the visitor was bounced
// to login from a protected page, the page to send them back to.
type AuthResult struct {
	User     *entity.User `json:"user"`
	Redirect string       `json:"redirect,omitempty"`
}

func (uc *AuthUseCase) Register(ctx context.Context, sess *session.Session, input RegisterInput) (*AuthResult, error) {
	resp, err := uc.api.Register(ctx, upstream.RegisterRequest{
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	return uc.signIn(ctx, sess, resp)
}

func (uc *AuthUseCase) Login(ctx context.Context, sess *session.Session, email, password string) (*AuthResult, error) {
	resp, err := uc.api.Login(ctx, upstream.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return uc.signIn(ctx, sess, resp)
}

func (uc *AuthUseCase) signIn(ctx context.Context, sess *session.Session, resp *upstream.AuthResponse) (*AuthResult, error) {
	user := resp.User
	sess.Token = resp.Token
	sess.User = &user

	// One-shot: the stored return page is consumed on successful login.
	redirect := sess.RedirectAfterLogin
	sess.RedirectAfterLogin = ""

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &AuthResult{User: &user, Redirect: redirect}, nil
}

// Logout drops the session entirely; cart and token go with it.
func (uc *AuthUseCase) Logout(ctx context.Context, sess *session.Session) error {
	return uc.store.Delete(ctx, sess.ID)
}

// ForceLogout clears a session whose token the upstream rejected, keeping
// the requested page so login can return there.
func (uc *AuthUseCase) ForceLogout(ctx context.Context, sess *session.Session, requestedPage string) error {
	sess.Token = ""
	sess.User = nil
	sess.RedirectAfterLogin = requestedPage
	return uc.store.Save(ctx, sess)
}

// GetProfile fetches the current user fresh from the API and refreshes the
// session's snapshot, so the profile page never shows stale data.
func (uc *AuthUseCase) GetProfile(ctx context.Context, sess *session.Session) (*entity.User, error) {
	user, err := uc.api.GetProfile(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	sess.User = user
	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, sess *session.Session, input upstream.UpdateProfileRequest) (*entity.User, error) {
	user, err := uc.api.UpdateProfile(ctx, sess.Token, input)
	if err != nil {
		return nil, err
	}

	sess.User = user
	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return user, nil
}
