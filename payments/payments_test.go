package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dreamjobs/portal/config"
)

func TestRazorpaySignature(t *testing.T) {
	sig := RazorpaySignature("secret", "order_1", "pay_1")
	if len(sig) != 64 {
		t.Fatalf("expected hex sha256, got %q", sig)
	}
	if !VerifyRazorpaySignature("secret", "order_1", "pay_1", sig) {
		t.Fatal("expected signature to verify")
	}
	if VerifyRazorpaySignature("secret", "order_1", "pay_2", sig) {
		t.Fatal("signature must bind the payment id")
	}
	if VerifyRazorpaySignature("other", "order_1", "pay_1", sig) {
		t.Fatal("signature must bind the secret")
	}
}

func TestRazorpayCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_key" || pass != "rzp_secret" {
			t.Errorf("expected basic auth, got %q %q", user, pass)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["amount"] != float64(9900) || body["currency"] != "INR" || body["receipt"] != "rcpt_1" {
			t.Errorf("unexpected body %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_abc","amount":9900,"currency":"INR","status":"created"}`))
	}))
	defer srv.Close()

	gw := NewRazorpay(srv.URL, "rzp_key", "rzp_secret", srv.Client())
	order, err := gw.CreateOrder(context.Background(), OrderRequest{AmountMinor: 9900, Currency: "INR", Receipt: "rcpt_1"})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != "order_abc" || order.KeyID != "rzp_key" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestRazorpayCreateOrderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	gw := NewRazorpay(srv.URL, "k", "s", srv.Client())
	_, err := gw.CreateOrder(context.Background(), OrderRequest{AmountMinor: 100, Currency: "INR"})

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Status != http.StatusUnauthorized || perr.Message != "Authentication failed" {
		t.Fatalf("unexpected provider error %+v", perr)
	}
}

func TestRazorpayCapture(t *testing.T) {
	gw := NewRazorpay("http://unused", "k", "secret", http.DefaultClient)
	ctx := context.Background()

	good := CaptureInput{OrderID: "order_1", PaymentID: "pay_1", Signature: RazorpaySignature("secret", "order_1", "pay_1")}
	capture, err := gw.Capture(ctx, good)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if capture.OrderID != "order_1" || capture.PaymentID != "pay_1" {
		t.Fatalf("unexpected capture %+v", capture)
	}

	bad := good
	bad.Signature = "deadbeef"
	if _, err := gw.Capture(ctx, bad); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}

	missing := CaptureInput{OrderID: "order_1"}
	if _, err := gw.Capture(ctx, missing); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch for missing fields, got %v", err)
	}
}

func newPayPalServer(t *testing.T, captureStatus string, tokenCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		if user, _, ok := r.BasicAuth(); !ok || user != "pp_client" {
			t.Errorf("expected basic auth on token call")
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
			t.Errorf("expected client_credentials grant")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token")
		}
		var body struct {
			Intent        string `json:"intent"`
			PurchaseUnits []struct {
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
			} `json:"purchase_units"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Intent != "CAPTURE" || len(body.PurchaseUnits) != 1 || body.PurchaseUnits[0].Amount.Value != "99.00" {
			t.Errorf("unexpected order body %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"PP-1","status":"CREATED","links":[{"href":"https://paypal.test/self","rel":"self"},{"href":"https://paypal.test/approve","rel":"approve"}]}`))
	})
	mux.HandleFunc("/v2/checkout/orders/PP-1/capture", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"PP-1","status":"` + captureStatus + `","purchase_units":[{"payments":{"captures":[{"id":"CAP-9","status":"COMPLETED"}]}}]}`))
	})
	return httptest.NewServer(mux)
}

func TestPayPalOrderAndCapture(t *testing.T) {
	var tokenCalls int32
	srv := newPayPalServer(t, "COMPLETED", &tokenCalls)
	defer srv.Close()

	gw := NewPayPal(srv.URL, "pp_client", "pp_secret", srv.Client())
	ctx := context.Background()

	order, err := gw.CreateOrder(ctx, OrderRequest{AmountMinor: 9900, Currency: "USD", Receipt: "r1"})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != "PP-1" || order.ApproveURL != "https://paypal.test/approve" {
		t.Fatalf("unexpected order %+v", order)
	}

	capture, err := gw.Capture(ctx, CaptureInput{OrderID: "PP-1"})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if capture.PaymentID != "CAP-9" {
		t.Fatalf("unexpected capture %+v", capture)
	}

	if n := atomic.LoadInt32(&tokenCalls); n != 1 {
		t.Fatalf("expected access token to be cached, fetched %d times", n)
	}
}

func TestPayPalCaptureNotCompleted(t *testing.T) {
	var tokenCalls int32
	srv := newPayPalServer(t, "PAYER_ACTION_REQUIRED", &tokenCalls)
	defer srv.Close()

	gw := NewPayPal(srv.URL, "pp_client", "pp_secret", srv.Client())
	if _, err := gw.Capture(context.Background(), CaptureInput{OrderID: "PP-1"}); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}
}

func TestNew(t *testing.T) {
	client := &http.Client{Timeout: time.Second}

	gw, err := New(&config.Config{PaymentProvider: "razorpay"}, client)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gw.Name() != "razorpay" {
		t.Fatalf("unexpected gateway %s", gw.Name())
	}
	if _, err := gw.CreateOrder(context.Background(), OrderRequest{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	gw, err = New(&config.Config{PaymentProvider: "paypal", PayPalClientID: "id", PayPalSecret: "s"}, client)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := gw.(*PayPal); !ok {
		t.Fatalf("expected *PayPal, got %T", gw)
	}

	if _, err := New(&config.Config{PaymentProvider: "stripe"}, client); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestFormatMinor(t *testing.T) {
	for minor, want := range map[int64]string{9900: "99.00", 5: "0.05", 123456: "1234.56"} {
		if got := FormatMinor(minor); got != want {
			t.Errorf("FormatMinor(%d) = %q, want %q", minor, got, want)
		}
	}
}

func TestPayPalCaptureAlreadyCaptured(t *testing.T) {
	tests := []struct {
		name        string
		captureBody string
		orderStatus string
		wantPayment string
		wantErr     func(error) bool
	}{
		{
			name:        "earlier capture is read back",
			captureBody: `{"name":"UNPROCESSABLE_ENTITY","message":"order already captured","details":[{"issue":"ORDER_ALREADY_CAPTURED"}]}`,
			orderStatus: "COMPLETED",
			wantPayment: "CAP-7",
		},
		{
			name:        "other unprocessable issues stay provider errors",
			captureBody: `{"name":"UNPROCESSABLE_ENTITY","message":"instrument declined","details":[{"issue":"INSTRUMENT_DECLINED"}]}`,
			orderStatus: "COMPLETED",
			wantErr: func(err error) bool {
				var pe *ProviderError
				return errors.As(err, &pe) && pe.Status == http.StatusUnprocessableEntity
			},
		},
		{
			name:        "order not completed after all",
			captureBody: `{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_ALREADY_CAPTURED"}]}`,
			orderStatus: "APPROVED",
			wantErr:     func(err error) bool { return errors.Is(err, ErrNotCompleted) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lookups int32
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
			})
			mux.HandleFunc("POST /v2/checkout/orders/PP-2/capture", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.captureBody))
			})
			mux.HandleFunc("GET /v2/checkout/orders/PP-2", func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&lookups, 1)
				if r.Header.Get("Authorization") != "Bearer tok" {
					t.Errorf("missing bearer token on order lookup")
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"PP-2","status":"` + tt.orderStatus + `","purchase_units":[{"payments":{"captures":[{"id":"CAP-7","status":"COMPLETED"}]}}]}`))
			})
			srv := httptest.NewServer(mux)
			defer srv.Close()

			gw := NewPayPal(srv.URL, "pp_client", "pp_secret", srv.Client())
			capture, err := gw.Capture(context.Background(), CaptureInput{OrderID: "PP-2"})
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Capture: %v", err)
			}
			if capture.OrderID != "PP-2" || capture.PaymentID != tt.wantPayment {
				t.Fatalf("unexpected capture %+v", capture)
			}
			if n := atomic.LoadInt32(&lookups); n != 1 {
				t.Fatalf("expected one order lookup, got %d", n)
			}
		})
	}
}
