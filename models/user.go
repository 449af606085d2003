package models

import (
	"time"

	"github.com/dreamjobs/portal/match"
)

// CandidateProfile is what a candidate tells employers about themselves.
// It is the candidate side of every match.
type CandidateProfile struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Email           string    `json:"email,omitempty"`
	Name            string    `json:"name,omitempty"`
	Education       string    `json:"education" example:"B.Tech"`
	ExperienceYears int       `json:"experience_years" example:"3"`
	Skills          string    `json:"skills" example:"go, postgres, docker"`
	Comments        string    `json:"comments,omitempty"`
	ResumeFile      string    `json:"-"`
	ResumeName      string    `json:"resumeName,omitempty" example:"resume.pdf"`
	ResumeMime      string    `json:"resumeMime,omitempty"`
	ResumeText      string    `json:"-"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MatchAttributes implements match.Scorable.
func (p CandidateProfile) MatchAttributes() match.Attributes {
	return match.Attributes{
		Education:       p.Education,
		ExperienceYears: p.ExperienceYears,
		Skills:          p.Skills,
	}
}

// HasResume reports whether a resume file is on record.
func (p CandidateProfile) HasResume() bool {
	return p.ResumeFile != ""
}

// UpdateProfileRequest represents a candidate profile update
// @Description Candidate profile update request
type UpdateProfileRequest struct {
	Education       string      `json:"education" example:"B.Tech"`
	ExperienceYears FlexibleInt `json:"experience_years" swaggertype:"integer" example:"3"`
	Skills          string      `json:"skills" example:"go, postgres"`
	Comments        string      `json:"comments" example:"Open to remote roles"`
}

// RankedCandidate is a CandidateProfile with its match score
type RankedCandidate struct {
	CandidateProfile
	Score int `json:"score" example:"12"`
}

// RecommendedCandidatesResponse lists candidates for one of the employer's jobs
// @Description Candidates ranked against a job posting
type RecommendedCandidatesResponse struct {
	Job          *Job              `json:"job"`
	Results      []RankedCandidate `json:"results"`
	TotalResults int               `json:"total_results" example:"10"`
}

// ResumeUploadResponse represents resume upload response
// @Description Resume upload response
type ResumeUploadResponse struct {
	ResumeName    string `json:"resumeName" example:"resume.pdf"`
	ExtractedText bool   `json:"extractedText"`
	Message       string `json:"message" example:"Resume uploaded successfully"`
}

// ResumeSearchResponse is the employer view of the resume database
// @Description Candidate profiles matching a keyword search
type ResumeSearchResponse struct {
	Results      []CandidateProfile `json:"results"`
	TotalResults int                `json:"total_results" example:"3"`
}

// ContactRequest is an employer's message to a candidate
// @Description Message sent to a candidate by email
type ContactRequest struct {
	Subject string `json:"subject" binding:"required" example:"Interview invitation"`
	Message string `json:"message" binding:"required" example:"Are you free for a call on Monday?"`
}

// ContactReasonMailNotConfigured is reported when no mail provider is set up
const ContactReasonMailNotConfigured = "mail-not-configured"

// ContactResponse reports whether the message was emailed. When it was
// not, CandidateEmail lets the client open the employer's own mail app.
// @Description Contact candidate result
type ContactResponse struct {
	Success        bool   `json:"success"`
	Reason         string `json:"reason,omitempty" example:"mail-not-configured"`
	CandidateEmail string `json:"candidateEmail,omitempty" example:"candidate@example.com"`
	Message        string `json:"message,omitempty" example:"Message sent"`
}
