package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InputError reports a malformed record set. It matches ErrInvalidInput
// under errors.Is.
type InputError struct {
	Index  int // candidate position, -1 when the problem is not tied to one
	Reason string
}

func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input: candidate %d: %s", e.Index, e.Reason)
	}
	return "invalid input: " + e.Reason
}

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// Record is an untyped posting or profile as it arrives from a caller that
// does not use this module's models. All original fields are kept so they
// can be echoed back next to the score.
type Record struct {
	Attributes
	Fields map[string]json.RawMessage
}

// MarshalJSON writes the original fields, or the scoring attributes when
// the record was built in code.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Fields == nil {
		return json.Marshal(r.Attributes)
	}
	return json.Marshal(r.Fields)
}

// ParseRankRequest decodes {"reference": {...}, "candidates": [{...}, ...]}.
// Missing or wrongly typed containers fail with ErrInvalidInput; missing or
// odd field values inside a record fall back to their zero values.
func ParseRankRequest(data []byte) (Record, []Record, error) {
	var env struct {
		Reference  json.RawMessage `json:"reference"`
		Candidates json.RawMessage `json:"candidates"`
	}
	if !isJSONObject(data) {
		return Record{}, nil, &InputError{Index: -1, Reason: "request must be a JSON object"}
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return Record{}, nil, &InputError{Index: -1, Reason: err.Error()}
	}
	if !isJSONObject(env.Reference) {
		return Record{}, nil, &InputError{Index: -1, Reason: "reference must be an object"}
	}
	ref, err := ParseRecord(env.Reference)
	if err != nil {
		return Record{}, nil, err
	}
	cands, err := ParseRecords(env.Candidates)
	if err != nil {
		return Record{}, nil, err
	}
	return ref, cands, nil
}

// ParseRecords decodes a JSON array of record objects.
func ParseRecords(data json.RawMessage) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &InputError{Index: -1, Reason: "candidates must be an array"}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &InputError{Index: -1, Reason: err.Error()}
	}
	out := make([]Record, 0, len(items))
	for i, item := range items {
		if !isJSONObject(item) {
			return nil, &InputError{Index: i, Reason: "candidate must be an object"}
		}
		rec, err := ParseRecord(item)
		if err != nil {
			return nil, &InputError{Index: i, Reason: err.Error()}
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseRecord decodes a single record object.
func ParseRecord(data json.RawMessage) (Record, error) {
	if !isJSONObject(data) {
		return Record{}, &InputError{Index: -1, Reason: "record must be an object"}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Record{}, &InputError{Index: -1, Reason: err.Error()}
	}

	exp, ok := fields["experienceYears"]
	if !ok {
		exp = fields["experience_years"]
	}
	return Record{
		Attributes: Attributes{
			Education:       stringField(fields["education"]),
			ExperienceYears: CoerceInt(exp),
			Skills:          stringField(fields["skills"]),
		},
		Fields: fields,
	}, nil
}

// CoerceInt reads a JSON number or numeric string as a non-negative integer,
// truncating toward zero. Anything else, including negatives, yields 0.
func CoerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return clampInt(t)
	case string:
		return CoerceString(t)
	}
	return 0
}

// CoerceString is CoerceInt for form and query values.
func CoerceString(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return clampInt(f)
}

func clampInt(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func isJSONObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
