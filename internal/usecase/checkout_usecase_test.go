package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/domain/service"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
	apperrors "pixelmart/pkg/errors"
)

type fakePayment struct {
	mu           sync.Mutex
	genErr       error
	genSession   *entity.PaymentSession
	verifyStatus string
	verifyErr    error
	genCalls     int
	verifyCalls  int
	lastGenReq   service.GeneratePaymentRequest
}

func (f *fakePayment) GeneratePayment(_ context.Context, req service.GeneratePaymentRequest) (*entity.PaymentSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genCalls++
	f.lastGenReq = req
	if f.genErr != nil {
		return nil, f.genErr
	}
	out := *f.genSession
	out.OrderID = req.OrderID
	return &out, nil
}

func (f *fakePayment) VerifyPayment(_ context.Context, paymentID string) (*entity.PaymentSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &entity.PaymentSession{PaymentID: paymentID, Status: f.verifyStatus}, nil
}

type upstreamCalls struct {
	mu       sync.Mutex
	checkout int
	getOrder int
	award    int
	awardReq upstream.AwardPointsRequest
}

// fakeUpstream serves the order and loyalty endpoints the checkout flow
// touches.
func fakeUpstream(t *testing.T, calls *upstreamCalls, checkoutStatus int, awardStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/orders/checkout":
			calls.mu.Lock()
			calls.checkout++
			calls.mu.Unlock()
			if checkoutStatus != http.StatusOK {
				w.WriteHeader(checkoutStatus)
				w.Write([]byte(`{"message":"Insufficient stock"}`))
				return
			}
			json.NewEncoder(w).Encode(entity.Order{ID: "order-9", Total: 30, Status: "pending"})
		case r.URL.Path == "/orders/order-9":
			calls.mu.Lock()
			calls.getOrder++
			calls.mu.Unlock()
			json.NewEncoder(w).Encode(entity.Order{ID: "order-9", Total: 30, Status: "paid"})
		case r.URL.Path == "/loyalty/award":
			calls.mu.Lock()
			calls.award++
			json.NewDecoder(r.Body).Decode(&calls.awardReq)
			calls.mu.Unlock()
			if awardStatus != http.StatusOK {
				w.WriteHeader(awardStatus)
				return
			}
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected upstream call: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newCheckoutFixture(t *testing.T, calls *upstreamCalls, payment *fakePayment, checkoutStatus, awardStatus int) (*CheckoutUseCase, *memoryStore, *session.Session, func()) {
	t.Helper()
	srv := fakeUpstream(t, calls, checkoutStatus, awardStatus)
	api := upstream.NewClient(srv.URL)
	store := newMemoryStore()
	cart := NewCartUseCase(store, &recordingNotifier{})
	uc := NewCheckoutUseCase(api, payment, cart, store, "http://localhost:8080")

	sess := session.New()
	sess.Token = "tok"
	sess.Cart = []entity.CartItem{
		{Product: entity.Product{ID: "a", Name: "Game A", Price: 10, Category: entity.CategoryGame}, Quantity: 3},
	}
	require.NoError(t, store.Save(context.Background(), sess))

	return uc, store, sess, srv.Close
}

func TestCheckoutEmptyCart(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{genSession: &entity.PaymentSession{PaymentID: "p1", Link: "https://pay/x"}}
	uc, _, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusOK)
	defer done()

	sess.Cart = []entity.CartItem{}
	result, err := uc.Checkout(context.Background(), sess, entity.BillingDetails{})

	assert.Nil(t, result)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, 0, calls.checkout)
	assert.Equal(t, 0, payment.genCalls)
}

func TestCheckoutHappyPath(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{genSession: &entity.PaymentSession{PaymentID: "p1", Link: "https://pay/x", Status: entity.PaymentStatusPending}}
	uc, store, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusOK)
	defer done()

	result, err := uc.Checkout(context.Background(), sess, entity.BillingDetails{
		Name: "Sami", Email: "s@x.tn", Phone: "21612345", Address: "1 Rue", City: "Tunis",
	})

	require.NoError(t, err)
	assert.Equal(t, "order-9", result.Order.ID)
	assert.Equal(t, "https://pay/x", result.PaymentLink)
	assert.Equal(t, "p1", result.PaymentID)

	// payment request carries the order total and the return links
	assert.Equal(t, 30.0, payment.lastGenReq.Amount)
	assert.Equal(t, "http://localhost:8080/payment/success", payment.lastGenReq.SuccessLink)
	assert.Equal(t, "http://localhost:8080/payment/failure", payment.lastGenReq.FailLink)

	// pending payment persisted, cart untouched until the payment settles
	reloaded := store.Load(context.Background(), sess.ID)
	require.NotNil(t, reloaded.PendingPayment)
	assert.Equal(t, "p1", reloaded.PendingPayment.PaymentID)
	assert.Equal(t, 3, reloaded.ItemCount())
}

func TestCheckoutOrderCreationFailureLeavesCart(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{genSession: &entity.PaymentSession{PaymentID: "p1", Link: "https://pay/x"}}
	uc, store, sess, done := newCheckoutFixture(t, calls, payment, http.StatusBadRequest, http.StatusOK)
	defer done()

	result, err := uc.Checkout(context.Background(), sess, entity.BillingDetails{})

	assert.Nil(t, result)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Insufficient stock", appErr.Message)

	assert.Equal(t, 0, payment.genCalls)
	assert.Equal(t, 3, store.Load(context.Background(), sess.ID).ItemCount())
}

func TestCheckoutPaymentInitFailureLeavesCart(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{genErr: errors.New("provider down")}
	uc, store, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusOK)
	defer done()

	result, err := uc.Checkout(context.Background(), sess, entity.BillingDetails{})

	assert.Nil(t, result)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
	assert.Equal(t, 1, calls.checkout)
	assert.Equal(t, 3, store.Load(context.Background(), sess.ID).ItemCount())
	assert.Nil(t, store.Load(context.Background(), sess.ID).PendingPayment)
}

func TestConfirmReturnWithoutPaymentID(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{verifyStatus: entity.PaymentStatusSuccess}
	uc, _, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusOK)
	defer done()

	result, err := uc.ConfirmReturn(context.Background(), sess, "")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailure, result.Status)
	assert.Equal(t, "No payment ID found in URL", result.Reason)
	assert.Equal(t, 0, payment.verifyCalls)
}

func TestConfirmReturnSuccessClearsCartAndAwardsPoints(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{verifyStatus: entity.PaymentStatusSuccess}
	uc, store, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusOK)
	defer done()

	sess.PendingPayment = &entity.PaymentSession{PaymentID: "p1", OrderID: "order-9"}
	require.NoError(t, store.Save(context.Background(), sess))

	result, err := uc.ConfirmReturn(context.Background(), sess, "p1")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, result.Status)
	require.NotNil(t, result.Order)
	assert.Equal(t, "order-9", result.Order.ID)

	reloaded := store.Load(context.Background(), sess.ID)
	assert.Equal(t, 0, reloaded.ItemCount())
	assert.Nil(t, reloaded.PendingPayment)

	assert.Equal(t, 1, calls.award)
	assert.Equal(t, "order-9", calls.awardReq.OrderID)
}

func TestConfirmReturnLoyaltyFailureDoesNotBlockSuccess(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{verifyStatus: entity.PaymentStatusSuccess}
	uc, store, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusInternalServerError)
	defer done()

	sess.PendingPayment = &entity.PaymentSession{PaymentID: "p1", OrderID: "order-9"}
	require.NoError(t, store.Save(context.Background(), sess))

	result, err := uc.ConfirmReturn(context.Background(), sess, "p1")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, result.Status)
	assert.Equal(t, 0, store.Load(context.Background(), sess.ID).ItemCount())
}

func TestConfirmReturnVerificationFailurePreservesCart(t *testing.T) {
	calls := &upstreamCalls{}
	payment := &fakePayment{verifyStatus: entity.PaymentStatusFailure}
	uc, store, sess, done := newCheckoutFixture(t, calls, payment, http.StatusOK, http.StatusOK)
	defer done()

	result, err := uc.ConfirmReturn(context.Background(), sess, "p1")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailure, result.Status)
	assert.NotEmpty(t, result.Reason)
	assert.Equal(t, 3, store.Load(context.Background(), sess.ID).ItemCount())
}
