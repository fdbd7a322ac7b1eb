package usecase

import (
	"context"

	"pixelmart/internal/domain/entity"
	"pixelmart/internal/domain/service"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
	"pixelmart/pkg/errors"
	"pixelmart/pkg/logger"
)

// CheckoutUseCase drives the order-then-redirect sequence: create the
// upstream order from the cart, get a hosted payment link, and hand the
// visitor to the provider. On return it verifies the payment and settles
// the session.
type CheckoutUseCase struct {
	api           *upstream.Client
	payment       service.PaymentService
	cart          *CartUseCase
	store         SessionStore
	publicBaseURL string
}

func NewCheckoutUseCase(api *upstream.Client, payment service.PaymentService, cart *CartUseCase, store SessionStore, publicBaseURL string) *CheckoutUseCase {
	return &CheckoutUseCase{
		api:           api,
		payment:       payment,
		cart:          cart,
		store:         store,
		publicBaseURL: publicBaseURL,
	}
}

type CheckoutResult struct {
	Order       *entity.Order `json:"order"`
	PaymentID   string        `json:"payment_id"`
	PaymentLink string        `json:"payment_link"`
}

type ConfirmationResult struct {
	Status string        `json:"status"`
	Order  *entity.Order `json:"order,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// Checkout creates the order and payment link. Any failure aborts before
// the redirect and leaves the cart untouched so the visitor can retry
// without re-adding items.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, sess *session.Session, billing entity.BillingDetails) (*CheckoutResult, error) {
	if len(sess.Cart) == 0 {
		return nil, errors.BadRequest("Your cart is empty", nil)
	}

	items := make([]entity.OrderItem, len(sess.Cart))
	for i, line := range sess.Cart {
		items[i] = entity.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Category:  line.Product.Category,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		}
	}

	order, err := uc.api.Checkout(ctx, sess.Token, upstream.CheckoutRequest{
		Items:   items,
		Billing: billing,
	})
	if err != nil {
		return nil, err
	}

	total := order.Total
	if total == 0 {
		total = sess.TotalPrice()
	}

	pay, err := uc.payment.GeneratePayment(ctx, service.GeneratePaymentRequest{
		OrderID:     order.ID,
		Amount:      total,
		SuccessLink: uc.publicBaseURL + "/payment/success",
		FailLink:    uc.publicBaseURL + "/payment/failure",
	})
	if err != nil {
		logger.LogPaymentError(order.ID, "generate_payment", err)
		return nil, errors.Internal("Could not start the payment. Please try again.", err)
	}

	sess.PendingPayment = pay
	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:       order,
		PaymentID:   pay.PaymentID,
		PaymentLink: pay.Link,
	}, nil
}

// ConfirmReturn handles the success-URL return from the provider. A missing
// payment ID or a failed verification renders a failure state; verification
// is never attempted without an ID.
func (uc *CheckoutUseCase) ConfirmReturn(ctx context.Context, sess *session.Session, paymentID string) (*ConfirmationResult, error) {
	if paymentID == "" {
		return &ConfirmationResult{
			Status: entity.PaymentStatusFailure,
			Reason: "No payment ID found in URL",
		}, nil
	}

	pay, err := uc.payment.VerifyPayment(ctx, paymentID)
	if err != nil {
		logger.LogPaymentError(paymentID, "verify_payment", err)
		return &ConfirmationResult{
			Status: entity.PaymentStatusFailure,
			Reason: "We could not verify your payment. Please contact support if you were charged.",
		}, nil
	}

	if pay.Status != entity.PaymentStatusSuccess {
		return &ConfirmationResult{
			Status: entity.PaymentStatusFailure,
			Reason: "The payment was not completed",
		}, nil
	}

	result := &ConfirmationResult{Status: entity.PaymentStatusSuccess}

	if sess.PendingPayment != nil && sess.PendingPayment.PaymentID == paymentID {
		orderID := sess.PendingPayment.OrderID
		order, err := uc.api.GetOrder(ctx, sess.Token, orderID)
		if err != nil {
			// Payment is confirmed; the confirmation screen degrades to
			// the order ID alone.
			logger.Warn("Paid order %s could not be fetched: %v", orderID, err)
			order = &entity.Order{ID: orderID}
		}
		result.Order = order

		// Best effort. A loyalty hiccup must never block the success screen.
		if sess.Token != "" {
			if err := uc.api.AwardPoints(ctx, sess.Token, upstream.AwardPointsRequest{
				OrderID: orderID,
				Amount:  order.Total,
			}); err != nil {
				logger.Warn("Loyalty award failed for order %s: %v", orderID, err)
			}
		}
	}

	sess.PendingPayment = nil
	if err := uc.cart.Clear(ctx, sess); err != nil {
		logger.Warn("Failed to clear cart after payment %s: %v", paymentID, err)
	}

	return result, nil
}
