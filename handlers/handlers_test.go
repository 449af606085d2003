package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamjobs/portal/auth"
	"github.com/dreamjobs/portal/config"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/notify"
	"github.com/dreamjobs/portal/payments"
	"github.com/dreamjobs/portal/storage"
)

type fakeGateway struct {
	mu         sync.Mutex
	orders     int
	captures   int
	createErr  error
	captureErr error
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) CreateOrder(_ context.Context, req payments.OrderRequest) (*payments.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return nil, g.createErr
	}
	if req.Receipt == "" {
		return nil, fmt.Errorf("missing receipt")
	}
	g.orders++
	return &payments.Order{ID: fmt.Sprintf("order_%d", g.orders), KeyID: "key_test"}, nil
}

func (g *fakeGateway) Capture(_ context.Context, in payments.CaptureInput) (*payments.Capture, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.captureErr != nil {
		return nil, g.captureErr
	}
	g.captures++
	return &payments.Capture{OrderID: in.OrderID, PaymentID: "pay_" + in.OrderID}, nil
}

type fakeGoogle struct {
	info *auth.GoogleUserInfo
	err  error
}

func (g *fakeGoogle) VerifyIDToken(context.Context, string) (*auth.GoogleUserInfo, error) {
	return g.info, g.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, e notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return n.err
}

func (n *recordingNotifier) Close() error { return nil }

type recordingMailer struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	t        *testing.T
	router   *gin.Engine
	store    *storage.SQLStore
	jwt      *auth.JWTService
	gateway  *fakeGateway
	google   *fakeGoogle
	notifier *recordingNotifier
	mailer   *recordingMailer
	now      time.Time
}

func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store, err := storage.Open(storage.DriverSQLite, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	resumes, err := storage.NewLocalResumeStore(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("NewLocalResumeStore: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiryHours:     8,
		ResumeMaxBytes:     1 << 20,
		PriceMinor:         9900,
		PriceCurrency:      "INR",
		AccessHours:        1,
		LoginRatePerMinute: 600,
		LoginBurst:         100,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	env := &testEnv{
		t:        t,
		store:    store,
		jwt:      auth.NewJWTService(cfg),
		gateway:  &fakeGateway{},
		google:   &fakeGoogle{},
		notifier: &recordingNotifier{},
		mailer:   &recordingMailer{},
		now:      time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	// Mail is only wired when configured, like the serve command does.
	var mailer notify.Mailer
	if cfg.MailConfigured() {
		mailer = env.mailer
	}
	env.router = NewRouter(Deps{
		Config:   cfg,
		Store:    store,
		Resumes:  resumes,
		Gateway:  env.gateway,
		Notifier: env.notifier,
		Mailer:   mailer,
		JWT:      env.jwt,
		Google:   env.google,
		Version:  "test",
		Now:      func() time.Time { return env.now },
	})
	return env
}

func (e *testEnv) user(email, role, password string) *models.User {
	e.t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		e.t.Fatalf("HashPassword: %v", err)
	}
	u := &models.User{Email: email, Name: strings.Split(email, "@")[0], Role: role, PasswordHash: hash, Provider: models.ProviderEmail}
	if err := e.store.CreateUser(context.Background(), u); err != nil {
		e.t.Fatalf("CreateUser(%s): %v", email, err)
	}
	return u
}

func (e *testEnv) token(u *models.User) string {
	e.t.Helper()
	token, err := e.jwt.GenerateToken(u)
	if err != nil {
		e.t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

// grantPremium records a paid payment valid for an hour from env.now.
func (e *testEnv) grantPremium(u *models.User) {
	e.t.Helper()
	ctx := context.Background()
	orderID := fmt.Sprintf("order_grant_%d", u.ID)
	p := &models.Payment{UserID: u.ID, Role: u.Role, Provider: "fake", OrderID: orderID,
		AmountMinor: 9900, Currency: "INR", CreatedAt: e.now, ExpiresAt: e.now}
	if err := e.store.CreatePayment(ctx, p); err != nil {
		e.t.Fatalf("CreatePayment: %v", err)
	}
	if _, err := e.store.MarkPaymentPaid(ctx, orderID, "pay_grant", e.now, e.now.Add(time.Hour)); err != nil {
		e.t.Fatalf("MarkPaymentPaid: %v", err)
	}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			e.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:4321"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(path, token, field, filename string, content []byte) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		e.t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createJob(token string, body map[string]any) models.Job {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/employer/jobs", token, body)
	if w.Code != http.StatusCreated {
		e.t.Fatalf("create job: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decode[models.Job](e.t, w)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
