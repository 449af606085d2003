package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dreamjobs/portal/match"
)

// ScoreMatchTool explains the score of one candidate against a reference
type ScoreMatchTool struct{}

// NewScoreMatchTool creates a new score breakdown tool
func NewScoreMatchTool() *ScoreMatchTool {
	return &ScoreMatchTool{}
}

func (t *ScoreMatchTool) Name() string {
	return "score_match"
}

func (t *ScoreMatchTool) Description() string {
	return `Score a single candidate record against a reference record and explain the result.
Returns educationMatch (0/1), overlap (shared skills), experienceGap, experienceScore and the total score.`
}

func (t *ScoreMatchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"reference": recordSchema("The record to score against"),
			"candidate": recordSchema("The record being scored"),
		},
		"required": []string{"reference", "candidate"},
	}
}

// ScoreMatchInput represents the input for score_match
type ScoreMatchInput struct {
	Reference json.RawMessage `json:"reference"`
	Candidate json.RawMessage `json:"candidate"`
}

func (t *ScoreMatchTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ScoreMatchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	reference, err := match.ParseRecord(in.Reference)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("reference: %v", err))
	}
	candidate, err := match.ParseRecord(in.Candidate)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("candidate: %v", err))
	}

	return NewSuccessResult(match.Explain(reference.Attributes, candidate.Attributes))
}

// NewDefaultRegistry returns a registry holding every matching tool
func NewDefaultRegistry() *ToolRegistry {
	registry := NewToolRegistry()
	registry.Register(NewRankRecordsTool())
	registry.Register(NewScoreMatchTool())
	return registry
}
