package upstream

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"pixelmart/internal/domain/entity"
	apperrors "pixelmart/pkg/errors"
)

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.doJSON(ctx, "", http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	var out []entity.Product
	path := "/products/search?q=" + url.QueryEscape(query)
	if err := c.doJSON(ctx, "", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var out entity.Product
	if err := c.doJSON(ctx, "", http.MethodGet, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, req ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := c.doJSON(ctx, token, http.MethodPost, "/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, req ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := c.doJSON(ctx, token, http.MethodPut, "/products/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, token, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

// ImportProductsCSV forwards an uploaded CSV to the API and returns its
// import report (counts and per-row errors).
func (c *Client) ImportProductsCSV(ctx context.Context, token, filename string, file io.Reader) (*entity.ImportResult, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/products/import", pr)
	if err != nil {
		return nil, apperrors.Internal("Failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var out entity.ImportResult
	if err := c.execute(req, &out); err != nil {
		return nil, fmt.Errorf("csv import: %w", err)
	}
	return &out, nil
}
