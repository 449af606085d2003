// Package match scores job postings against candidate profiles.
//
// The same formula is used in both directions: a posting ranked against
// candidate profiles, or a profile ranked against postings. Rank holds no
// state between calls and is safe for concurrent use.
package match

import (
	"errors"
	"reflect"
	"sort"
	"strings"
)

const (
	educationWeight = 3
	skillWeight     = 2
	// experienceCeiling is the score for an exact experience match; every
	// year of difference costs one point until it reaches zero.
	experienceCeiling = 5
)

// ErrInvalidInput is returned when the records handed to the engine have the
// wrong shape. Irregular field values are normalized instead.
var ErrInvalidInput = errors.New("invalid input")

// Attributes are the three fields that take part in scoring.
type Attributes struct {
	Education       string `json:"education"`
	ExperienceYears int    `json:"experienceYears"`
	Skills          string `json:"skills"`
}

// MatchAttributes lets a bare Attributes value be ranked directly.
func (a Attributes) MatchAttributes() Attributes { return a }

// Scorable is implemented by any record that can be ranked.
type Scorable interface {
	MatchAttributes() Attributes
}

// Ranked pairs a record with its score.
type Ranked[T any] struct {
	Item  T   `json:"item"`
	Score int `json:"score"`
}

// Breakdown shows how a score was put together.
type Breakdown struct {
	EducationMatch  int `json:"educationMatch"`
	Overlap         int `json:"overlap"`
	ExperienceGap   int `json:"experienceGap"`
	ExperienceScore int `json:"experienceScore"`
	Score           int `json:"score"`
}

// Rank scores every candidate against reference and returns them best first.
// Candidates with equal scores keep their input order.
func Rank[T Scorable](reference Scorable, candidates []T) ([]Ranked[T], error) {
	if isNil(reference) {
		return nil, ErrInvalidInput
	}
	ref := reference.MatchAttributes()
	refSkills := NormalizeSkills(ref.Skills)

	out := make([]Ranked[T], 0, len(candidates))
	for i, c := range candidates {
		if isNil(c) {
			return nil, &InputError{Index: i, Reason: "candidate is nil"}
		}
		b := explain(ref, refSkills, c.MatchAttributes())
		out = append(out, Ranked[T]{Item: c, Score: b.Score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

// Score returns the match score of candidate against reference.
func Score(reference, candidate Attributes) int {
	return Explain(reference, candidate).Score
}

// Explain returns the individual terms of the score.
func Explain(reference, candidate Attributes) Breakdown {
	return explain(reference, NormalizeSkills(reference.Skills), candidate)
}

func explain(ref Attributes, refSkills []string, cand Attributes) Breakdown {
	candSkills := make(map[string]struct{})
	for _, s := range NormalizeSkills(cand.Skills) {
		candSkills[s] = struct{}{}
	}

	var b Breakdown
	for _, s := range refSkills {
		if _, ok := candSkills[s]; ok {
			b.Overlap++
		}
	}

	// An empty education never matches, not even another empty one.
	if ref.Education != "" && cand.Education != "" &&
		strings.ToLower(ref.Education) == strings.ToLower(cand.Education) {
		b.EducationMatch = 1
	}

	b.ExperienceGap = abs(years(ref.ExperienceYears) - years(cand.ExperienceYears))
	b.ExperienceScore = max(0, experienceCeiling-b.ExperienceGap)

	b.Score = b.EducationMatch*educationWeight + b.Overlap*skillWeight + b.ExperienceScore
	return b
}

// NormalizeSkills splits a comma separated skill list into distinct,
// lowercased, trimmed tokens in first-seen order. Empty tokens are dropped.
func NormalizeSkills(skills string) []string {
	if skills == "" {
		return nil
	}
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		tok := strings.ToLower(strings.TrimSpace(p))
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// years clamps negative experience to zero.
func years(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
