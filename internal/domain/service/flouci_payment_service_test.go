package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pixelmart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(url string) *FlouciPaymentService {
	s := NewFlouciPaymentService("app-token", "app-secret", false)
	s.baseURL = url
	return s
}

func TestGeneratePayment(t *testing.T) {
	var captured map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate_payment", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{
				"link":       "https://pay.flouci.com/abc",
				"payment_id": "pay_123",
				"success":    true,
			},
		})
	}))
	defer srv.Close()

	s := newTestService(srv.URL)
	session, err := s.GeneratePayment(context.Background(), GeneratePaymentRequest{
		OrderID:     "order-1",
		Amount:      30.5,
		SuccessLink: "http://localhost:8080/payment/success",
		FailLink:    "http://localhost:8080/payment/failure",
	})

	require.NoError(t, err)
	assert.Equal(t, "pay_123", session.PaymentID)
	assert.Equal(t, "order-1", session.OrderID)
	assert.Equal(t, "https://pay.flouci.com/abc", session.Link)
	assert.Equal(t, entity.PaymentStatusPending, session.Status)

	// amount must be forwarded as integer millimes
	assert.Equal(t, "30500", captured["amount"])
	assert.Equal(t, "order-1", captured["developer_tracking_id"])
}

func TestGeneratePaymentProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid app credentials"}`))
	}))
	defer srv.Close()

	s := newTestService(srv.URL)
	session, err := s.GeneratePayment(context.Background(), GeneratePaymentRequest{OrderID: "order-1", Amount: 10})

	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestVerifyPaymentStatusMapping(t *testing.T) {
	cases := []struct {
		provider string
		want     string
	}{
		{"SUCCESS", entity.PaymentStatusSuccess},
		{"FAILURE", entity.PaymentStatusFailure},
		{"EXPIRED", entity.PaymentStatusFailure},
		{"PENDING", entity.PaymentStatusPending},
		{"SOMETHING_ELSE", entity.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/verify_payment/pay_123", r.URL.Path)
				assert.Equal(t, "app-token", r.Header.Get("apppublic"))
				assert.Equal(t, "app-secret", r.Header.Get("appsecret"))

				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": true,
					"result":  map[string]interface{}{"status": tc.provider},
				})
			}))
			defer srv.Close()

			s := newTestService(srv.URL)
			session, err := s.VerifyPayment(context.Background(), "pay_123")

			require.NoError(t, err)
			assert.Equal(t, tc.want, session.Status)
		})
	}
}
