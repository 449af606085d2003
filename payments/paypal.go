package payments

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// PayPal talks to the PayPal Orders v2 API.
type PayPal struct {
	client       *resty.Client
	clientID     string
	secret       string
	mu           sync.Mutex
	token        string
	tokenExpires time.Time
}

// NewPayPal creates a PayPal gateway.
func NewPayPal(baseURL, clientID, secret string, httpClient *http.Client) *PayPal {
	return &PayPal{
		client:   resty.NewWithClient(httpClient).SetBaseURL(baseURL),
		clientID: clientID,
		secret:   secret,
	}
}

func (p *PayPal) Name() string { return "paypal" }

type paypalToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type paypalLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type paypalOrder struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	Links         []paypalLink `json:"links"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

type paypalError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details []struct {
		Issue string `json:"issue"`
	} `json:"details"`
}

// orderAlreadyCaptured is the issue PayPal reports when capturing an order twice.
const orderAlreadyCaptured = "ORDER_ALREADY_CAPTURED"

func (e paypalError) hasIssue(issue string) bool {
	for _, d := range e.Details {
		if d.Issue == issue {
			return true
		}
	}
	return false
}

// accessToken returns a cached OAuth token, fetching a new one a minute
// before the old one expires.
func (p *PayPal) accessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.tokenExpires) {
		return p.token, nil
	}

	var (
		out    paypalToken
		errOut paypalError
	)
	resp, err := p.client.R().
		SetContext(ctx).
		SetBasicAuth(p.clientID, p.secret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&out).
		SetError(&errOut).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("paypal token: %w", err)
	}
	if resp.IsError() || out.AccessToken == "" {
		return "", &ProviderError{Provider: p.Name(), Status: resp.StatusCode(), Message: errOut.Message}
	}

	p.token = out.AccessToken
	p.tokenExpires = time.Now().Add(time.Duration(out.ExpiresIn)*time.Second - time.Minute)
	return p.token, nil
}

func (p *PayPal) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var (
		out    paypalOrder
		errOut paypalError
	)
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(map[string]any{
			"intent": "CAPTURE",
			"purchase_units": []map[string]any{{
				"reference_id": req.Receipt,
				"amount": map[string]string{
					"currency_code": req.Currency,
					"value":         FormatMinor(req.AmountMinor),
				},
			}},
		}).
		SetResult(&out).
		SetError(&errOut).
		Post("/v2/checkout/orders")
	if err != nil {
		return nil, fmt.Errorf("paypal create order: %w", err)
	}
	if resp.IsError() {
		return nil, &ProviderError{Provider: p.Name(), Status: resp.StatusCode(), Message: errOut.Message}
	}

	order := &Order{ID: out.ID}
	for _, l := range out.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			order.ApproveURL = l.Href
			break
		}
	}
	return order, nil
}

func (p *PayPal) Capture(ctx context.Context, in CaptureInput) (*Capture, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var (
		out    paypalOrder
		errOut paypalError
	)
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", in.OrderID).
		SetResult(&out).
		SetError(&errOut).
		Post("/v2/checkout/orders/{id}/capture")
	if err != nil {
		return nil, fmt.Errorf("paypal capture: %w", err)
	}
	if resp.IsError() {
		// A capture that went through earlier, e.g. before our own bookkeeping
		// failed, is read back instead of being reported as an error.
		if resp.StatusCode() == http.StatusUnprocessableEntity && errOut.hasIssue(orderAlreadyCaptured) {
			return p.capturedOrder(ctx, token, in.OrderID)
		}
		return nil, &ProviderError{Provider: p.Name(), Status: resp.StatusCode(), Message: errOut.Message}
	}
	return captureFrom(in.OrderID, out)
}

// capturedOrder fetches an order that PayPal already captured.
func (p *PayPal) capturedOrder(ctx context.Context, token, orderID string) (*Capture, error) {
	var (
		out    paypalOrder
		errOut paypalError
	)
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("id", orderID).
		SetResult(&out).
		SetError(&errOut).
		Get("/v2/checkout/orders/{id}")
	if err != nil {
		return nil, fmt.Errorf("paypal get order: %w", err)
	}
	if resp.IsError() {
		return nil, &ProviderError{Provider: p.Name(), Status: resp.StatusCode(), Message: errOut.Message}
	}
	return captureFrom(orderID, out)
}

func captureFrom(orderID string, out paypalOrder) (*Capture, error) {
	if out.Status != "COMPLETED" {
		return nil, fmt.Errorf("paypal order %s is %s: %w", orderID, out.Status, ErrNotCompleted)
	}

	capture := &Capture{OrderID: out.ID}
	if len(out.PurchaseUnits) > 0 && len(out.PurchaseUnits[0].Payments.Captures) > 0 {
		capture.PaymentID = out.PurchaseUnits[0].Payments.Captures[0].ID
	}
	return capture, nil
}

// FormatMinor renders a two-decimal minor amount, 9900 -> "99.00".
func FormatMinor(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
