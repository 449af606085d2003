package models

import (
	"encoding/json"
	"time"

	"github.com/dreamjobs/portal/match"
)

// FlexibleInt can unmarshal from either a number or a numeric string.
// Anything else, and negative values, decode as 0.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	*f = FlexibleInt(match.CoerceInt(json.RawMessage(data)))
	return nil
}

// Job represents a job posting created by an employer
type Job struct {
	ID              int64     `json:"id" example:"7"`
	EmployerID      int64     `json:"employerId" example:"1"`
	Title           string    `json:"title" example:"Backend Engineer"`
	Company         string    `json:"company,omitempty" example:"Acme"`
	Education       string    `json:"education" example:"B.Tech"`
	ExperienceYears int       `json:"experience_years" example:"3"`
	SalaryMin       int       `json:"salary_min" example:"600000"`
	SalaryMax       int       `json:"salary_max" example:"900000"`
	Skills          string    `json:"skills" example:"go, postgres"`
	Comments        string    `json:"comments,omitempty"`
	State           string    `json:"state,omitempty" example:"Karnataka"`
	City            string    `json:"city,omitempty" example:"Bengaluru"`
	Location        string    `json:"location,omitempty" example:"Hybrid"`
	CreatedAt       time.Time `json:"created_at"`
}

// MatchAttributes implements match.Scorable.
func (j Job) MatchAttributes() match.Attributes {
	return match.Attributes{
		Education:       j.Education,
		ExperienceYears: j.ExperienceYears,
		Skills:          j.Skills,
	}
}

// JobFilter narrows a job listing
type JobFilter struct {
	Query      string // matched against title, company, skills and comments
	Location   string // matched against state, city and location
	EmployerID int64
	Limit      int // 0 means the default page; AllJobs lifts the cap
}

// AllJobs is the Limit that lists every matching job.
const AllJobs = -1

// CreateJobRequest represents a new job posting
// @Description Job posting request
type CreateJobRequest struct {
	Title           string      `json:"title" binding:"required" example:"Backend Engineer"`
	Company         string      `json:"company" example:"Acme"`
	Education       string      `json:"education" example:"B.Tech"`
	ExperienceYears FlexibleInt `json:"experience_years" swaggertype:"integer" example:"3"`
	SalaryMin       FlexibleInt `json:"salary_min" swaggertype:"integer" example:"600000"`
	SalaryMax       FlexibleInt `json:"salary_max" swaggertype:"integer" example:"900000"`
	Skills          string      `json:"skills" example:"go, postgres"`
	Comments        string      `json:"comments"`
	State           string      `json:"state" example:"Karnataka"`
	City            string      `json:"city" example:"Bengaluru"`
	Location        string      `json:"location" example:"Hybrid"`
}

// RankedJob is a Job with match scoring
type RankedJob struct {
	Job
	Score int `json:"score" example:"12"`
}

// RecommendedJobsResponse represents jobs ranked for a candidate
// @Description Jobs ranked against the candidate profile
type RecommendedJobsResponse struct {
	Results      []RankedJob `json:"results"`
	TotalResults int         `json:"total_results" example:"10"`
	Message      string      `json:"message,omitempty" example:"Complete your profile for better matches"`
}

// Application is a candidate applying to a job
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	CandidateID int64     `json:"candidateId"`
	Message     string    `json:"message,omitempty"`
	AppliedAt   time.Time `json:"appliedAt"`
	JobTitle    string    `json:"jobTitle,omitempty"`
}

// ApplicantView is an application as the employer sees it
type ApplicantView struct {
	Application
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	HasResume      bool   `json:"hasResume"`
}

// ApplyRequest represents a job application
// @Description Job application request
type ApplyRequest struct {
	Message string `json:"message" binding:"max=2000" example:"I have shipped Go services for 3 years."`
}

// JobsResponse is a page of job postings
// @Description Job listing
type JobsResponse struct {
	Results      []Job `json:"results"`
	TotalResults int   `json:"total_results" example:"25"`
}

// ApplicationsResponse lists a candidate's applications
type ApplicationsResponse struct {
	Results []Application `json:"results"`
}

// ApplicantsResponse lists applications to an employer's jobs
type ApplicantsResponse struct {
	Results []ApplicantView `json:"results"`
}

// RankResponse is the engine output for untyped records
// @Description Records ranked best first
type RankResponse struct {
	Results      []match.Ranked[match.Record] `json:"results"`
	TotalResults int                          `json:"total_results" example:"2"`
}
