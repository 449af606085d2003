package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestAllow_BurstThenThrottle(t *testing.T) {
	now := time.Unix(1700000000, 0)
	k := NewKeyedLimiter(60, 2) // one per second, burst of two
	k.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := k.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}

	ok, wait := k.Allow("1.2.3.4")
	if ok {
		t.Fatal("third request should be throttled")
	}
	if wait <= 0 || wait > time.Second {
		t.Fatalf("expected wait in (0, 1s], got %v", wait)
	}

	now = now.Add(time.Second)
	if ok, _ := k.Allow("1.2.3.4"); !ok {
		t.Fatal("token should refill after a second")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	now := time.Unix(1700000000, 0)
	k := NewKeyedLimiter(1, 1)
	k.now = func() time.Time { return now }

	if ok, _ := k.Allow("a"); !ok {
		t.Fatal("first request for a should pass")
	}
	if ok, _ := k.Allow("a"); ok {
		t.Fatal("second request for a should be throttled")
	}
	if ok, _ := k.Allow("b"); !ok {
		t.Fatal("b must not be blocked by a")
	}
}

func TestAllow_ForgetsIdleKeys(t *testing.T) {
	now := time.Unix(1700000000, 0)
	k := NewKeyedLimiter(10, 1)
	k.now = func() time.Time { return now }

	k.Allow("a")
	k.Allow("b")
	if k.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", k.Len())
	}

	now = now.Add(11 * time.Minute)
	k.Allow("c")
	if k.Len() != 1 {
		t.Fatalf("expected idle keys to be swept, got %d", k.Len())
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	k := NewKeyedLimiter(1, 1)
	r := gin.New()
	r.POST("/login", k.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send(); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
