package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelmart/internal/domain/entity"
)

func TestLoadMissingSessionReturnsFresh(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Hour)

	mock.ExpectGet("session:missing").RedisNil()

	sess := store.Load(context.Background(), "missing")

	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Empty(t, sess.Cart)
	assert.False(t, sess.Authenticated())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCorruptSessionIsSilentlyDiscarded(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Hour)

	mock.ExpectGet("session:bad").SetVal("{not json")

	sess := store.Load(context.Background(), "bad")

	require.NotNil(t, sess)
	assert.Empty(t, sess.Cart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Hour)

	sess := New()
	sess.Cart = []entity.CartItem{
		{Product: entity.Product{ID: "p1", Name: "Elden Ring", Price: 10}, Quantity: 3},
		{Product: entity.Product{ID: "p2", Name: "Steam Card", Price: 25.5}, Quantity: 1},
	}

	data, err := json.Marshal(sess)
	require.NoError(t, err)

	mock.ExpectSet("session:"+sess.ID, data, time.Hour).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), sess))

	mock.ExpectGet("session:" + sess.ID).SetVal(string(data))
	loaded := store.Load(context.Background(), sess.ID)

	assert.Equal(t, sess.Cart, loaded.Cart)
	assert.Equal(t, sess.ItemCount(), loaded.ItemCount())
	assert.Equal(t, sess.TotalPrice(), loaded.TotalPrice())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Hour)

	mock.ExpectDel("session:gone").SetVal(1)

	assert.NoError(t, store.Delete(context.Background(), "gone"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDerivedTotals(t *testing.T) {
	sess := New()
	assert.Equal(t, 0, sess.ItemCount())
	assert.Equal(t, 0.0, sess.TotalPrice())

	sess.Cart = []entity.CartItem{
		{Product: entity.Product{ID: "a", Price: 10}, Quantity: 3},
		{Product: entity.Product{ID: "b", Price: 2.25}, Quantity: 2},
	}

	assert.Equal(t, 5, sess.ItemCount())
	assert.InDelta(t, 34.5, sess.TotalPrice(), 1e-9)
}
