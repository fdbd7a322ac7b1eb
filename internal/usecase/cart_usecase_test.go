package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/session"
)

// memoryStore serializes sessions the way the redis store does, so tests
// exercise the same round trip.
type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (m *memoryStore) Load(_ context.Context, id string) *session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.data[id]
	if !ok {
		return session.New()
	}
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.New()
	}
	return &sess
}

func (m *memoryStore) Save(_ context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[sess.ID] = data
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	shown     []*entity.CartToast
	dismissed int
}

func (r *recordingNotifier) ToastShown(_ string, toast *entity.CartToast) {
	r.mu.Lock()
	r.shown = append(r.shown, toast)
	r.mu.Unlock()
}

func (r *recordingNotifier) ToastDismissed(_ string) {
	r.mu.Lock()
	r.dismissed++
	r.mu.Unlock()
}

func (r *recordingNotifier) dismissCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dismissed
}

func newCartFixture() (*CartUseCase, *memoryStore, *recordingNotifier, *session.Session) {
	store := newMemoryStore()
	notifier := &recordingNotifier{}
	uc := NewCartUseCase(store, notifier)
	return uc, store, notifier, session.New()
}

func TestAddItemMergesByProductID(t *testing.T) {
	uc, _, _, sess := newCartFixture()
	ctx := context.Background()

	productA := entity.Product{ID: "a", Name: "Cyber Key", Price: 10.00, Category: entity.CategoryGame}

	require.NoError(t, uc.AddItem(ctx, sess, productA, 1))
	require.NoError(t, uc.AddItem(ctx, sess, productA, 2))

	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 3, sess.Cart[0].Quantity)
	assert.Equal(t, 3, sess.ItemCount())
	assert.InDelta(t, 30.00, sess.TotalPrice(), 1e-9)
}

func TestItemCountIsSumOfAllQuantities(t *testing.T) {
	uc, _, _, sess := newCartFixture()
	ctx := context.Background()

	a := entity.Product{ID: "a", Price: 5}
	b := entity.Product{ID: "b", Price: 7}

	require.NoError(t, uc.AddItem(ctx, sess, a, 2))
	require.NoError(t, uc.AddItem(ctx, sess, b, 1))
	require.NoError(t, uc.AddItem(ctx, sess, a, 4))

	assert.Len(t, sess.Cart, 2)
	assert.Equal(t, 7, sess.ItemCount())
	assert.InDelta(t, 5*6+7*1, sess.TotalPrice(), 1e-9)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	uc, _, _, sess := newCartFixture()

	require.NoError(t, uc.AddItem(context.Background(), sess, entity.Product{ID: "a", Price: 3}, 0))

	assert.Equal(t, 1, sess.ItemCount())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		uc, _, _, sess := newCartFixture()
		ctx := context.Background()

		require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "a", Price: 3}, 2))
		require.NoError(t, uc.UpdateQuantity(ctx, sess, "a", qty))

		assert.Empty(t, sess.Cart)
		assert.Equal(t, 0, sess.ItemCount())
		assert.Equal(t, 0.0, sess.TotalPrice())
	}
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	uc, _, _, sess := newCartFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "a", Price: 2.5}, 2))
	require.NoError(t, uc.UpdateQuantity(ctx, sess, "a", 5))

	assert.Equal(t, 5, sess.Cart[0].Quantity)
	assert.InDelta(t, 12.5, sess.TotalPrice(), 1e-9)
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	uc, _, _, sess := newCartFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "a", Price: 1}, 1))
	require.NoError(t, uc.RemoveItem(ctx, sess, "missing"))

	assert.Len(t, sess.Cart, 1)
}

func TestClearCart(t *testing.T) {
	uc, store, _, sess := newCartFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "a", Price: 1}, 1))
	require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "b", Price: 2}, 3))
	require.NoError(t, uc.Clear(ctx, sess))

	assert.Equal(t, 0, sess.ItemCount())
	assert.Equal(t, 0.0, sess.TotalPrice())

	// the persisted cart is an empty array, not null
	reloaded := store.Load(ctx, sess.ID)
	require.NotNil(t, reloaded.Cart)
	assert.Empty(t, reloaded.Cart)
}

func TestMutationsRoundTripThroughStore(t *testing.T) {
	uc, store, _, sess := newCartFixture()
	ctx := context.Background()

	a := entity.Product{ID: "a", Name: "Gift Card", Price: 25, Category: entity.CategoryGiftCard, Image: "gc.png"}
	b := entity.Product{ID: "b", Name: "Antivirus", Price: 39.99, Category: entity.CategorySoftware}

	require.NoError(t, uc.AddItem(ctx, sess, a, 2))
	require.NoError(t, uc.AddItem(ctx, sess, b, 1))
	require.NoError(t, uc.UpdateQuantity(ctx, sess, "b", 4))

	reloaded := store.Load(ctx, sess.ID)
	assert.Equal(t, sess.Cart, reloaded.Cart)
	assert.Equal(t, sess.ItemCount(), reloaded.ItemCount())
	assert.Equal(t, sess.TotalPrice(), reloaded.TotalPrice())
}

func TestToastLastAddedWins(t *testing.T) {
	uc, store, notifier, sess := newCartFixture()
	uc.toastTTL = 40 * time.Millisecond
	ctx := context.Background()

	x := entity.Product{ID: "x", Name: "Game X", Price: 10}
	y := entity.Product{ID: "y", Name: "Game Y", Price: 20}

	require.NoError(t, uc.AddItem(ctx, sess, x, 1))
	require.NoError(t, uc.AddItem(ctx, sess, y, 2))

	require.NotNil(t, sess.LastToast)
	assert.Equal(t, "y", sess.LastToast.Product.ID)
	assert.Equal(t, 2, sess.LastToast.Quantity)
	assert.Equal(t, 3, sess.LastToast.ItemCount)

	// only the second timer fires: one dismissal total
	assert.Eventually(t, func() bool {
		return store.Load(ctx, sess.ID).LastToast == nil
	}, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, notifier.dismissCount())
}

func TestExplicitDismissCancelsPendingTimer(t *testing.T) {
	uc, store, notifier, sess := newCartFixture()
	uc.toastTTL = 40 * time.Millisecond
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "x", Price: 10}, 1))
	require.NoError(t, uc.DismissToast(ctx, sess))

	assert.Nil(t, sess.LastToast)
	assert.Equal(t, 1, notifier.dismissCount())

	// the cancelled timer must not fire a second dismissal
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, notifier.dismissCount())
	assert.Nil(t, store.Load(ctx, sess.ID).LastToast)
}

func TestToastTimerExpiryClearsOnlyCurrentToast(t *testing.T) {
	uc, store, _, sess := newCartFixture()
	uc.toastTTL = 30 * time.Millisecond
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, sess, entity.Product{ID: "x", Price: 10}, 1))

	assert.Eventually(t, func() bool {
		return store.Load(ctx, sess.ID).LastToast == nil
	}, time.Second, 5*time.Millisecond)

	// cart contents are untouched by toast expiry
	assert.Equal(t, 1, store.Load(ctx, sess.ID).ItemCount())
}
