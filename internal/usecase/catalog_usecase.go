package usecase

import (
	"context"
	"io"
	"strings"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/infrastructure/upstream"
)

type CatalogUseCase struct {
	api *upstream.Client
}

func NewCatalogUseCase(api *upstream.Client) *CatalogUseCase {
	return &CatalogUseCase{api: api}
}

// ListProducts fetches the catalog once and filters it in memory, the way
// the store page narrows an already-fetched list.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, query, category string) ([]entity.Product, error) {
	products, err := uc.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, query, category), nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.api.GetProduct(ctx, id)
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, token string, input upstream.ProductInput) (*entity.Product, error) {
	return uc.api.CreateProduct(ctx, token, input)
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, token, id string, input upstream.ProductInput) (*entity.Product, error) {
	return uc.api.UpdateProduct(ctx, token, id, input)
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, token, id string) error {
	return uc.api.DeleteProduct(ctx, token, id)
}

func (uc *CatalogUseCase) ImportCSV(ctx context.Context, token, filename string, file io.Reader) (*entity.ImportResult, error) {
	return uc.api.ImportProductsCSV(ctx, token, filename, file)
}

// FilterProducts narrows by substring match on name/description and exact
// category.
func FilterProducts(products []entity.Product, query, category string) []entity.Product {
	if query == "" && category == "" {
		return products
	}

	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
