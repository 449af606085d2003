package tools

import (
	"context"
	"encoding/json"

	"github.com/dreamjobs/portal/match"
)

// RankRecordsTool ranks arbitrary JSON records against a reference record
type RankRecordsTool struct{}

// NewRankRecordsTool creates a new ranking tool
func NewRankRecordsTool() *RankRecordsTool {
	return &RankRecordsTool{}
}

func (t *RankRecordsTool) Name() string {
	return "rank_records"
}

func (t *RankRecordsTool) Description() string {
	return `Rank candidate records against a reference record.
Each record may carry education, skills (comma separated) and experienceYears; other fields are passed through.
Score = 3 for an education match + 2 per shared skill + max(0, 5 - experience gap).
Returns the candidates best first, ties in input order.`
}

func (t *RankRecordsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"reference": recordSchema("The record to rank against, e.g. a job posting"),
			"candidates": map[string]interface{}{
				"type":        "array",
				"description": "Records to rank, e.g. candidate profiles",
				"items":       recordSchema("A candidate record"),
			},
		},
		"required": []string{"reference", "candidates"},
	}
}

func (t *RankRecordsTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	reference, candidates, err := match.ParseRankRequest(input)
	if err != nil {
		return NewErrorResult(err.Error())
	}

	ranked, err := match.Rank(reference, candidates)
	if err != nil {
		return NewErrorResult(err.Error())
	}

	return NewSuccessResult(ranked)
}

func recordSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"education":       map[string]interface{}{"type": "string"},
			"skills":          map[string]interface{}{"type": "string", "description": "Comma separated, case-insensitive"},
			"experienceYears": map[string]interface{}{"type": "integer", "minimum": 0},
		},
	}
}
