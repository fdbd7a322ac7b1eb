package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apperrors "pixelmart/pkg/errors"
	"pixelmart/pkg/logger"
)

// ErrSessionExpired marks a 401 from the marketplace API. The session
// middleware treats it as "token is gone": clear the session and send the
// visitor to /login.
var ErrSessionExpired = errors.New("upstream session expired")

// Client is a thin wrapper over the marketplace HTTP API. It attaches the
// caller's bearer token and maps error responses onto AppError, keeping the
// server's message when it sends one.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Internal("Failed to encode request", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.Internal("Failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.execute(req, out)
}

func (c *Client) execute(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Internal("Could not reach the store. Please try again.", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Internal("Failed to read response", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.Unauthorized("Your session has expired. Please log in again.", ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		message := eb.Message
		if message == "" {
			message = eb.Error
		}
		logger.Debug("Upstream error %d on %s %s: %s", resp.StatusCode, req.Method, req.URL.Path, string(data))
		return apperrors.Upstream(message, resp.StatusCode, fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Internal("Failed to decode response", err)
	}
	return nil
}
