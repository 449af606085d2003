package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dreamjobs/portal/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewServer(tools.NewDefaultRegistry(), "dreamjobs-portal", "test", nil).RegisterRoutes(r.Group("/api"))
	return r
}

func post(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeRPC(t *testing.T, w *httptest.ResponseRecorder) (MCPResponse, json.RawMessage) {
	t.Helper()
	var resp struct {
		MCPResponse
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return resp.MCPResponse, resp.Result
}

func TestHandleMCPInitialize(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	resp, raw := decodeRPC(t, w)
	if resp.Error != nil {
		t.Fatalf("unexpected error %+v", resp.Error)
	}

	var result InitializeResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if result.ServerInfo.Name != "dreamjobs-portal" || result.ProtocolVersion != ProtocolVersion {
		t.Fatalf("unexpected initialize result %+v", result)
	}
}

func TestHandleMCPToolsList(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)
	resp, raw := decodeRPC(t, w)
	if resp.ID != "a" {
		t.Fatalf("expected id to be echoed, got %v", resp.ID)
	}

	var result ToolsListResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if len(result.Tools) != 2 || result.Tools[0].Name != "rank_records" {
		t.Fatalf("unexpected tools %+v", result.Tools)
	}
}

func TestHandleMCPToolsCall(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"score_match","arguments":{
		"reference":{"education":"BSc","skills":"go","experienceYears":2},
		"candidate":{"education":"bsc","skills":"Go","experienceYears":2}}}}`
	_, raw := decodeRPC(t, post(t, newTestRouter(), "/api/mcp", body))

	var result ToolCallResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if result.IsError || len(result.Content) != 1 {
		t.Fatalf("unexpected call result %+v", result)
	}
	if !strings.Contains(result.Content[0].Text, `"score":10`) {
		t.Fatalf("expected score 10 in %s", result.Content[0].Text)
	}
}

func TestHandleMCPErrors(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"parse error", `{not json`, codeParseError},
		{"unknown method", `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`, codeMethodNotFound},
		{"bad params", `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":[1]}`, codeInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, r, "/api/mcp", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			resp, _ := decodeRPC(t, w)
			if resp.Error == nil || resp.Error.Code != tt.code {
				t.Fatalf("expected error code %d, got %+v", tt.code, resp.Error)
			}
		})
	}
}

func TestHandleToolsCall(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/mcp/tools/call", `{"name":"rank_records","arguments":{"reference":{},"candidates":"nope"}}`)
	var result ToolCallResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected invalid input to be reported as an error: %+v", result)
	}

	w = post(t, r, "/api/mcp/tools/call", `{"name":"missing","arguments":{}}`)
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if !result.IsError || !strings.Contains(result.Content[0].Text, "tool not found") {
		t.Fatalf("expected tool not found, got %+v", result)
	}

	w = post(t, r, "/api/mcp/tools/call", `[`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleToolsList(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp/tools/list", "")
	var result ToolsListResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if len(result.Tools) != 2 || result.Tools[1].Name != "score_match" {
		t.Fatalf("unexpected tools %+v", result.Tools)
	}
}
