package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(true, true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}

	l, err = New(false, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be disabled")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Fatalf("expected logger to be returned unchanged")
	}
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, observed := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := observed.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, entry := range entries {
		if entry.Level != want[i] {
			t.Errorf("entry %d: expected level %s, got %s", i, want[i], entry.Level)
		}
		if entry.LoggerName != "http" {
			t.Errorf("entry %d: expected logger name http, got %q", i, entry.LoggerName)
		}
	}

	ctx := entries[1].ContextMap()
	if ctx["path"] != "/missing" {
		t.Fatalf("expected path field /missing, got %v", ctx["path"])
	}
	if ctx["status"] != int64(http.StatusNotFound) {
		t.Fatalf("expected status field 404, got %v", ctx["status"])
	}
}
