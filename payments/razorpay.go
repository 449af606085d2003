package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Razorpay talks to the Razorpay Orders API.
type Razorpay struct {
	client    *resty.Client
	keyID     string
	keySecret string
}

// NewRazorpay creates a Razorpay gateway.
func NewRazorpay(baseURL, keyID, keySecret string, httpClient *http.Client) *Razorpay {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetBasicAuth(keyID, keySecret).
		SetHeader("Content-Type", "application/json")

	return &Razorpay{client: client, keyID: keyID, keySecret: keySecret}
}

func (r *Razorpay) Name() string { return "razorpay" }

type razorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder creates an order; the amount is in the currency's minor unit.
func (r *Razorpay) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var (
		out    razorpayOrder
		errOut razorpayError
	)
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"amount":   req.AmountMinor,
			"currency": req.Currency,
			"receipt":  req.Receipt,
		}).
		SetResult(&out).
		SetError(&errOut).
		Post("/v1/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	if resp.IsError() {
		return nil, &ProviderError{Provider: r.Name(), Status: resp.StatusCode(), Message: errOut.Error.Description}
	}
	if out.ID == "" {
		return nil, errors.New("razorpay create order: empty order id")
	}

	return &Order{ID: out.ID, KeyID: r.keyID}, nil
}

// Capture verifies the checkout signature. Razorpay captures the payment
// itself, so a valid signature is proof of payment.
func (r *Razorpay) Capture(_ context.Context, in CaptureInput) (*Capture, error) {
	if in.PaymentID == "" || in.Signature == "" {
		return nil, fmt.Errorf("razorpay capture: paymentId and signature are required: %w", ErrSignatureMismatch)
	}
	if !VerifyRazorpaySignature(r.keySecret, in.OrderID, in.PaymentID, in.Signature) {
		return nil, ErrSignatureMismatch
	}
	return &Capture{OrderID: in.OrderID, PaymentID: in.PaymentID}, nil
}

// RazorpaySignature is hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func RazorpaySignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyRazorpaySignature compares in constant time.
func VerifyRazorpaySignature(secret, orderID, paymentID, signature string) bool {
	want := RazorpaySignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(want), []byte(signature))
}
