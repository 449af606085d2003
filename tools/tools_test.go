package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dreamjobs/portal/match"
)

func decodeResult(t *testing.T, raw json.RawMessage) ToolResult {
	t.Helper()
	var result ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding tool result: %v", err)
	}
	return result
}

func TestRankRecordsTool(t *testing.T) {
	input := json.RawMessage(`{
		"reference": {"education": "B.Tech", "skills": "Go, SQL", "experienceYears": 3},
		"candidates": [
			{"name": "low", "education": "BA", "skills": "excel", "experienceYears": 10},
			{"name": "high", "education": "b.tech", "skills": "go, sql", "experienceYears": 3}
		]
	}`)

	raw, err := NewRankRecordsTool().Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	result := decodeResult(t, raw)
	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}

	var ranked []struct {
		Item  map[string]any `json:"item"`
		Score int            `json:"score"`
	}
	if err := json.Unmarshal(result.Data, &ranked); err != nil {
		t.Fatalf("decoding ranked data: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked records, got %d", len(ranked))
	}
	if ranked[0].Item["name"] != "high" || ranked[0].Score != 12 {
		t.Fatalf("unexpected first record %+v", ranked[0])
	}
	if ranked[1].Item["name"] != "low" || ranked[1].Score != 0 {
		t.Fatalf("unexpected second record %+v", ranked[1])
	}
}

func TestRankRecordsToolInvalidInput(t *testing.T) {
	for _, input := range []string{`[]`, `{"reference": {}}`, `{"reference": {}, "candidates": [1]}`} {
		raw, err := NewRankRecordsTool().Execute(context.Background(), json.RawMessage(input))
		if err != nil {
			t.Fatalf("Execute(%s): %v", input, err)
		}
		if result := decodeResult(t, raw); result.Success {
			t.Errorf("Execute(%s): expected failure result", input)
		}
	}
}

func TestScoreMatchTool(t *testing.T) {
	input := json.RawMessage(`{
		"reference": {"education": "MSc", "skills": "go,rust", "experience_years": "4"},
		"candidate": {"education": "msc", "skills": "rust", "experienceYears": 1}
	}`)

	raw, err := NewScoreMatchTool().Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	result := decodeResult(t, raw)
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}

	var b match.Breakdown
	if err := json.Unmarshal(result.Data, &b); err != nil {
		t.Fatalf("decoding breakdown: %v", err)
	}
	want := match.Breakdown{EducationMatch: 1, Overlap: 1, ExperienceGap: 3, ExperienceScore: 2, Score: 7}
	if b != want {
		t.Fatalf("breakdown = %+v, want %+v", b, want)
	}

	raw, err = NewScoreMatchTool().Execute(context.Background(), json.RawMessage(`{"reference": 1, "candidate": {}}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if decodeResult(t, raw).Success {
		t.Fatal("expected failure for non-object reference")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := NewDefaultRegistry()

	list := registry.List()
	if len(list) != 2 || list[0].Name() != "rank_records" || list[1].Name() != "score_match" {
		t.Fatalf("unexpected tools %v", list)
	}
	if _, ok := registry.Get("score_match"); !ok {
		t.Fatal("expected score_match to be registered")
	}
	if _, ok := registry.Get("search_web"); ok {
		t.Fatal("unexpected tool registered")
	}

	defs := registry.GetToolDefinitions()
	if len(defs) != 2 || defs[0]["name"] != "rank_records" || defs[0]["parameters"] == nil {
		t.Fatalf("unexpected definitions %v", defs)
	}
}
