// Package payments creates checkout orders with a payment provider and
// confirms them once the buyer has paid.
package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dreamjobs/portal/config"
)

var (
	// ErrNotConfigured is returned when the selected provider has no credentials.
	ErrNotConfigured = errors.New("payment provider not configured")
	// ErrSignatureMismatch is returned when a Razorpay signature does not verify.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	// ErrNotCompleted is returned when the provider did not complete the capture.
	ErrNotCompleted = errors.New("payment not completed")
)

// OrderRequest describes the order to create.
type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
}

// Order is a provider order awaiting payment.
type Order struct {
	ID         string
	ApproveURL string // buyer redirect, PayPal only
	KeyID      string // public checkout key, Razorpay only
}

// CaptureInput is what the client sends back after checkout.
type CaptureInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Capture is a confirmed payment.
type Capture struct {
	OrderID   string
	PaymentID string
}

// Gateway is a payment provider.
type Gateway interface {
	Name() string
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	Capture(ctx context.Context, in CaptureInput) (*Capture, error)
}

// New returns the gateway selected by PAYMENT_PROVIDER. When credentials
// are missing the gateway fails every call with ErrNotConfigured.
func New(cfg *config.Config, httpClient *http.Client) (Gateway, error) {
	switch cfg.PaymentProvider {
	case "razorpay":
		if !cfg.PaymentsConfigured() {
			return unconfigured{name: "razorpay"}, nil
		}
		return NewRazorpay(cfg.RazorpayBaseURL, cfg.RazorpayKeyID, cfg.RazorpayKeySecret, httpClient), nil
	case "paypal":
		if !cfg.PaymentsConfigured() {
			return unconfigured{name: "paypal"}, nil
		}
		return NewPayPal(cfg.PayPalBaseURL, cfg.PayPalClientID, cfg.PayPalSecret, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.PaymentProvider)
	}
}

type unconfigured struct{ name string }

func (u unconfigured) Name() string { return u.name }

func (u unconfigured) CreateOrder(context.Context, OrderRequest) (*Order, error) {
	return nil, ErrNotConfigured
}

func (u unconfigured) Capture(context.Context, CaptureInput) (*Capture, error) {
	return nil, ErrNotConfigured
}

// ProviderError is a non-2xx response from a provider API.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
}
