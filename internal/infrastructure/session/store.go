package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pixelmart/internal/domain/entity"
	"pixelmart/pkg/logger"
)

const keyPrefix = "session:"

// Session holds everything the browser used to keep in local/session
// storage: the bearer token, the signed-in user snapshot, the cart, and the
// page to return to after login.
type Session struct {
	ID                 string                 `json:"id"`
	Token              string                 `json:"token,omitempty"`
	User               *entity.User           `json:"user,omitempty"`
	Cart               []entity.CartItem      `json:"cart"`
	RedirectAfterLogin string                 `json:"redirect_after_login,omitempty"`
	LastToast          *entity.CartToast      `json:"last_toast,omitempty"`
	PendingPayment     *entity.PaymentSession `json:"pending_payment,omitempty"`
}

func New() *Session {
	return &Session{
		ID:   uuid.New().String(),
		Cart: []entity.CartItem{},
	}
}

func (s *Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// ItemCount is the sum of line item quantities.
func (s *Session) ItemCount() int {
	count := 0
	for _, item := range s.Cart {
		count += item.Quantity
	}
	return count
}

// TotalPrice is the sum of price x quantity over current line items.
func (s *Session) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.Cart {
		total += item.LineTotal()
	}
	return total
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Load returns the stored session for id, or a fresh session when the id is
// empty, unknown, or the stored payload does not parse. A corrupt payload
// is deliberately not an error: the visitor just starts over.
func (s *Store) Load(ctx context.Context, id string) *Session {
	if id == "" {
		return New()
	}

	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Failed to load session %s: %v", id, err)
		}
		return New()
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logger.Warn("Discarding corrupt session %s: %v", id, err)
		return New()
	}
	if sess.ID == "" {
		sess.ID = id
	}
	if sess.Cart == nil {
		sess.Cart = []entity.CartItem{}
	}

	return &sess
}

// Save writes the full session. TTL is bounded by the bearer token's
// remaining lifetime when one is present.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	ttl := s.ttl
	if sess.Token != "" {
		if remaining, ok := tokenRemaining(sess.Token); ok && remaining < ttl {
			ttl = remaining
		}
	}

	return s.client.Set(ctx, keyPrefix+sess.ID, data, ttl).Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
