package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/upstream"
)

var catalog = []entity.Product{
	{ID: "1", Name: "Elden Ring", Description: "Action RPG", Category: entity.CategoryGame, Price: 60},
	{ID: "2", Name: "Photo Editor Pro", Description: "Image editing suite", Category: entity.CategorySoftware, Price: 80},
	{ID: "3", Name: "Steam Gift Card", Description: "50 TND credit", Category: entity.CategoryGiftCard, Price: 50},
	{ID: "4", Name: "Ring Fit", Description: "Fitness game", Category: entity.CategoryGame, Price: 70},
}

func TestFilterProducts(t *testing.T) {
	t.Run("no filter returns everything", func(t *testing.T) {
		assert.Len(t, FilterProducts(catalog, "", ""), 4)
	})

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		got := FilterProducts(catalog, "RING", "")
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "4", got[1].ID)
	})

	t.Run("query matches description", func(t *testing.T) {
		got := FilterProducts(catalog, "editing", "")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("category narrows", func(t *testing.T) {
		got := FilterProducts(catalog, "", entity.CategoryGiftCard)
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("query and category combine", func(t *testing.T) {
		got := FilterProducts(catalog, "ring", entity.CategoryGame)
		assert.Len(t, got, 2)

		got = FilterProducts(catalog, "ring", entity.CategorySoftware)
		assert.Empty(t, got)
	})

	t.Run("no match is empty, not nil", func(t *testing.T) {
		got := FilterProducts(catalog, "nothing matches this", "")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestListProductsFiltersFetchedList(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		fetches++
		json.NewEncoder(w).Encode(catalog)
	}))
	defer srv.Close()

	uc := NewCatalogUseCase(upstream.NewClient(srv.URL))
	got, err := uc.ListProducts(context.Background(), "gift", "")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Steam Gift Card", got[0].Name)
	assert.Equal(t, 1, fetches)
}
