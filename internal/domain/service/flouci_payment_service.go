package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"pixelmart/internal/domain/entity"
	"pixelmart/pkg/logger"
)

// PaymentService is the hosted-checkout integration the checkout flow
// redirects the visitor to and verifies against on return.
type PaymentService interface {
	GeneratePayment(ctx context.Context, req GeneratePaymentRequest) (*entity.PaymentSession, error)
	VerifyPayment(ctx context.Context, paymentID string) (*entity.PaymentSession, error)
}

type GeneratePaymentRequest struct {
	OrderID     string
	Amount      float64 // in dinars; forwarded to Flouci in millimes
	SuccessLink string
	FailLink    string
}

// FlouciPaymentService - Flouci hosted checkout via HTTP API
type FlouciPaymentService struct {
	appToken     string
	appSecret    string
	isProduction bool
	baseURL      string
	httpClient   *http.Client
}

func NewFlouciPaymentService(appToken, appSecret string, isProduction bool) *FlouciPaymentService {
	// Flouci sandboxing is per-app credentials, same host either way
	baseURL := "https://developers.flouci.com/api"

	return &FlouciPaymentService{
		appToken:     appToken,
		appSecret:    appSecret,
		isProduction: isProduction,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

type flouciGenerateRequest struct {
	AppToken          string `json:"app_token"`
	AppSecret         string `json:"app_secret"`
	Amount            string `json:"amount"`
	AcceptCard        bool   `json:"accept_card"`
	SessionTimeoutSec int    `json:"session_timeout_secs"`
	SuccessLink       string `json:"success_link"`
	FailLink          string `json:"fail_link"`
	TrackingID        string `json:"developer_tracking_id"`
}

type flouciGenerateResponse struct {
	Result struct {
		Link      string `json:"link"`
		PaymentID string `json:"payment_id"`
		Success   bool   `json:"success"`
	} `json:"result"`
}

type flouciVerifyResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Status string `json:"status"`
	} `json:"result"`
}

func (s *FlouciPaymentService) GeneratePayment(ctx context.Context, req GeneratePaymentRequest) (*entity.PaymentSession, error) {
	logger.Info("Creating Flouci payment for order: %s, amount: %.3f", req.OrderID, req.Amount)

	// Flouci amounts are integer millimes
	millimes := int64(req.Amount*1000 + 0.5)

	genReq := flouciGenerateRequest{
		AppToken:          s.appToken,
		AppSecret:         s.appSecret,
		Amount:            strconv.FormatInt(millimes, 10),
		AcceptCard:        true,
		SessionTimeoutSec: 1200,
		SuccessLink:       req.SuccessLink,
		FailLink:          req.FailLink,
		TrackingID:        req.OrderID,
	}

	jsonData, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/generate_payment", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Error("Flouci API error: %s", string(body))
		return nil, fmt.Errorf("flouci API error: %s", string(body))
	}

	var genResp flouciGenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	if !genResp.Result.Success || genResp.Result.Link == "" {
		return nil, fmt.Errorf("flouci payment link was not generated")
	}

	session := &entity.PaymentSession{
		PaymentID: genResp.Result.PaymentID,
		OrderID:   req.OrderID,
		Link:      genResp.Result.Link,
		Status:    entity.PaymentStatusPending,
	}

	logger.Info("Flouci payment created successfully: %s", session.PaymentID)
	return session, nil
}

func (s *FlouciPaymentService) VerifyPayment(ctx context.Context, paymentID string) (*entity.PaymentSession, error) {
	logger.Info("Verifying Flouci payment: %s", paymentID)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/verify_payment/"+paymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("apppublic", s.appToken)
	httpReq.Header.Set("appsecret", s.appSecret)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Flouci verify API error: %s", string(body))
		return nil, fmt.Errorf("flouci verify API error: %s", string(body))
	}

	var verifyResp flouciVerifyResponse
	if err := json.Unmarshal(body, &verifyResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	status := entity.PaymentStatusPending
	switch verifyResp.Result.Status {
	case "SUCCESS":
		status = entity.PaymentStatusSuccess
	case "FAILURE", "FAILED", "EXPIRED":
		status = entity.PaymentStatusFailure
	case "PENDING":
		status = entity.PaymentStatusPending
	default:
		logger.Warn("Unknown Flouci status: '%s', defaulting to pending", verifyResp.Result.Status)
	}

	logger.Info("Payment status retrieved: %s -> %s", paymentID, status)
	return &entity.PaymentSession{
		PaymentID: paymentID,
		Status:    status,
	}, nil
}
