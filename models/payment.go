package models

import "time"

// Payment status values
const (
	PaymentCreated = "created"
	PaymentPaid    = "paid"
)

// Payment is a ledger row for one gateway order
type Payment struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Role        string     `json:"role"`
	Provider    string     `json:"provider" example:"razorpay"`
	OrderID     string     `json:"orderId" example:"order_Nx1"`
	PaymentID   string     `json:"paymentId,omitempty" example:"pay_Nx1"`
	Status      string     `json:"status" example:"paid"`
	AmountMinor int64      `json:"amountMinor" example:"9900"`
	Currency    string     `json:"currency" example:"INR"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

// Active reports whether the payment currently grants premium access.
func (p Payment) Active(now time.Time) bool {
	return p.Status == PaymentPaid && p.ExpiresAt.After(now)
}

// OrderResponse is returned when a checkout order is created
// @Description Checkout order
type OrderResponse struct {
	OrderID     string `json:"orderId" example:"order_Nx1"`
	Provider    string `json:"provider" example:"razorpay"`
	AmountMinor int64  `json:"amountMinor" example:"9900"`
	Currency    string `json:"currency" example:"INR"`
	ApproveURL  string `json:"approveUrl,omitempty"`
	KeyID       string `json:"keyId,omitempty"`
}

// CaptureRequest confirms a checkout order
// @Description Payment confirmation request
type CaptureRequest struct {
	OrderID   string `json:"orderId" binding:"required" example:"order_Nx1"`
	PaymentID string `json:"paymentId" example:"pay_Nx1"`
	Signature string `json:"signature" example:"9ef4dffbfd84f1318f6739a3ce19f9d85851857ae648f114332d8401e0949a3d"`
}

// PaymentsResponse lists a user's payments
// @Description Payment history
type PaymentsResponse struct {
	Results       []Payment `json:"results"`
	PremiumActive bool      `json:"premiumActive"`
}
