package usecase

import (
	"context"
	"sync"
	"time"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/pkg/logger"
)

// toastDuration is how long the "added to cart" toast stays up before it
// dismisses itself.
const toastDuration = 4500 * time.Millisecond

// CartUseCase owns the per-session cart: line items unique by product ID,
// quantity merge on repeat adds, derived totals, and the last-added toast
// with its self-dismiss timer.
type CartUseCase struct {
	store    SessionStore
	notifier ToastNotifier
	toastTTL time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewCartUseCase(store SessionStore, notifier ToastNotifier) *CartUseCase {
	return &CartUseCase{
		store:    store,
		notifier: notifier,
		toastTTL: toastDuration,
		timers:   make(map[string]*time.Timer),
	}
}

// AddItem merges into an existing line item by product ID or appends a new
// one, records the addition as the session's toast, and re-arms the dismiss
// timer. The just-added pair always wins over a previous toast.
func (uc *CartUseCase) AddItem(ctx context.Context, sess *session.Session, product entity.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	merged := false
	for i := range sess.Cart {
		if sess.Cart[i].Product.ID == product.ID {
			sess.Cart[i].Quantity += quantity
			sess.Cart[i].Product = product
			merged = true
			break
		}
	}
	if !merged {
		sess.Cart = append(sess.Cart, entity.CartItem{Product: product, Quantity: quantity})
	}

	toast := &entity.CartToast{
		Product:    product,
		Quantity:   quantity,
		ItemCount:  sess.ItemCount(),
		TotalPrice: sess.TotalPrice(),
		ShownAt:    time.Now(),
	}
	sess.LastToast = toast

	if err := uc.store.Save(ctx, sess); err != nil {
		return err
	}

	uc.notifier.ToastShown(sess.ID, toast)
	uc.scheduleDismiss(sess.ID, toast.ShownAt)
	return nil
}

// RemoveItem deletes the line item with that product ID, no-op if absent.
func (uc *CartUseCase) RemoveItem(ctx context.Context, sess *session.Session, productID string) error {
	for i := range sess.Cart {
		if sess.Cart[i].Product.ID == productID {
			sess.Cart = append(sess.Cart[:i], sess.Cart[i+1:]...)
			return uc.store.Save(ctx, sess)
		}
	}
	return nil
}

// UpdateQuantity overwrites the quantity for a line item. Zero or negative
// removes the line item instead; a stored quantity is always >= 1.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, sess *session.Session, productID string, quantity int) error {
	if quantity <= 0 {
		return uc.RemoveItem(ctx, sess, productID)
	}

	for i := range sess.Cart {
		if sess.Cart[i].Product.ID == productID {
			sess.Cart[i].Quantity = quantity
			return uc.store.Save(ctx, sess)
		}
	}
	return nil
}

// Clear empties the cart.
func (uc *CartUseCase) Clear(ctx context.Context, sess *session.Session) error {
	sess.Cart = []entity.CartItem{}
	return uc.store.Save(ctx, sess)
}

// DismissToast is the explicit close. It cancels the pending timer so a
// stale dismiss can't fire after a newer toast has been shown.
func (uc *CartUseCase) DismissToast(ctx context.Context, sess *session.Session) error {
	uc.cancelTimer(sess.ID)

	if sess.LastToast == nil {
		return nil
	}
	sess.LastToast = nil
	if err := uc.store.Save(ctx, sess); err != nil {
		return err
	}
	uc.notifier.ToastDismissed(sess.ID)
	return nil
}

func (uc *CartUseCase) scheduleDismiss(sessionID string, shownAt time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if timer, ok := uc.timers[sessionID]; ok {
		timer.Stop()
	}
	uc.timers[sessionID] = time.AfterFunc(uc.toastTTL, func() {
		uc.expireToast(sessionID, shownAt)
	})
}

func (uc *CartUseCase) cancelTimer(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if timer, ok := uc.timers[sessionID]; ok {
		timer.Stop()
		delete(uc.timers, sessionID)
	}
}

// expireToast clears the toast on timer expiry, but only if it is still the
// one the timer was armed for.
func (uc *CartUseCase) expireToast(sessionID string, shownAt time.Time) {
	uc.mu.Lock()
	delete(uc.timers, sessionID)
	uc.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess := uc.store.Load(ctx, sessionID)
	if sess.LastToast == nil || !sess.LastToast.ShownAt.Equal(shownAt) {
		return
	}

	sess.LastToast = nil
	if err := uc.store.Save(ctx, sess); err != nil {
		logger.Warn("Failed to clear expired toast for session %s: %v", sessionID, err)
		return
	}
	uc.notifier.ToastDismissed(sessionID)
}
