package entity

const (
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailure = "FAILURE"
	PaymentStatusPending = "PENDING"
)

// PaymentSession ties a hosted-checkout payment to the order it pays for.
type PaymentSession struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Link      string `json:"link,omitempty"`
	Status    string `json:"status"`
}
