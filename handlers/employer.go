package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/match"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/notify"
	"github.com/dreamjobs/portal/storage"
)

// EmployerHandler serves job posting, applicants and the premium resume
// database
type EmployerHandler struct {
	store   storage.Repository
	resumes storage.ResumeStore
	mailer  notify.Mailer
	log     *zap.Logger
}

// NewEmployerHandler creates a new employer handler. A nil mailer makes
// Contact hand the candidate's address back instead of sending.
func NewEmployerHandler(store storage.Repository, resumes storage.ResumeStore, mailer notify.Mailer, log *zap.Logger) *EmployerHandler {
	return &EmployerHandler{
		store:   store,
		resumes: resumes,
		mailer:  mailer,
		log:     logger.OrNop(log).Named("employer"),
	}
}

// CreateJob posts a new job
// @Summary Post a job
// @Description Create a job posting. Numeric fields may be numbers or numeric strings.
// @Tags Employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateJobRequest true "Job posting"
// @Success 201 {object} models.Job
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not an employer"
// @Router /employer/jobs [post]
func (h *EmployerHandler) CreateJob(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		badRequest(c, "Invalid request body", errors.New("title is required"))
		return
	}
	if req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax {
		badRequest(c, "Invalid request body", fmt.Errorf("salary_min %d exceeds salary_max %d", req.SalaryMin, req.SalaryMax))
		return
	}

	job := &models.Job{
		EmployerID:      claims.UserID,
		Title:           strings.TrimSpace(req.Title),
		Company:         strings.TrimSpace(req.Company),
		Education:       strings.TrimSpace(req.Education),
		ExperienceYears: int(req.ExperienceYears),
		SalaryMin:       int(req.SalaryMin),
		SalaryMax:       int(req.SalaryMax),
		Skills:          strings.TrimSpace(req.Skills),
		Comments:        strings.TrimSpace(req.Comments),
		State:           strings.TrimSpace(req.State),
		City:            strings.TrimSpace(req.City),
		Location:        strings.TrimSpace(req.Location),
	}
	if err := h.store.CreateJob(c.Request.Context(), job); err != nil {
		respondError(c, h.log, err, "Failed to create job")
		return
	}

	h.log.Info("job posted", zap.Int64("job_id", job.ID), zap.Int64("employer_id", claims.UserID))
	c.JSON(http.StatusCreated, job)
}

// ListJobs lists the employer's own postings
// @Summary List own jobs
// @Tags Employer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.JobsResponse
// @Router /employer/jobs [get]
func (h *EmployerHandler) ListJobs(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	jobs, err := h.store.ListJobs(c.Request.Context(), models.JobFilter{EmployerID: claims.UserID})
	if err != nil {
		respondError(c, h.log, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, models.JobsResponse{Results: jobs, TotalResults: len(jobs)})
}

// Applicants lists applications to the employer's jobs
// @Summary List applicants
// @Tags Employer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApplicantsResponse
// @Router /employer/applicants [get]
func (h *EmployerHandler) Applicants(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	applicants, err := h.store.ListApplicantsByEmployer(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to list applicants")
		return
	}
	c.JSON(http.StatusOK, models.ApplicantsResponse{Results: applicants})
}

// SearchResumes searches the candidate resume database
// @Summary Search resumes
// @Description Keyword search over candidate profiles and extracted resume text. Requires premium access.
// @Tags Employer
// @Produce json
// @Security BearerAuth
// @Param q query string false "Keyword"
// @Success 200 {object} models.ResumeSearchResponse
// @Failure 402 {object} models.ErrorResponse "Premium access required"
// @Router /employer/resumes [get]
func (h *EmployerHandler) SearchResumes(c *gin.Context) {
	profiles, err := h.store.ListProfiles(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err, "Failed to search resumes")
		return
	}
	c.JSON(http.StatusOK, models.ResumeSearchResponse{Results: profiles, TotalResults: len(profiles)})
}

// DownloadResume returns a candidate's resume file
// @Summary Download a candidate resume
// @Description Requires premium access.
// @Tags Employer
// @Produce octet-stream
// @Security BearerAuth
// @Param userId path int true "Candidate user ID"
// @Success 200 {file} file
// @Failure 402 {object} models.ErrorResponse "Premium access required"
// @Failure 404 {object} models.ErrorResponse "Resume not found"
// @Router /employer/resumes/{userId} [get]
func (h *EmployerHandler) DownloadResume(c *gin.Context) {
	userID, ok := idParam(c.Param("userId"))
	if !ok {
		badRequest(c, "Invalid user ID", nil)
		return
	}
	serveResume(c, h.store, h.resumes, h.log, userID)
}

// Recommended ranks every candidate profile against one of the employer's jobs
// @Summary Recommended candidates
// @Description Rank all candidate profiles against the given job, or the employer's latest job. Requires premium access.
// @Tags Employer
// @Produce json
// @Security BearerAuth
// @Param jobId query int false "Job ID (defaults to the latest posting)"
// @Success 200 {object} models.RecommendedCandidatesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid job ID"
// @Failure 402 {object} models.ErrorResponse "Premium access required"
// @Failure 404 {object} models.ErrorResponse "No job to match against"
// @Router /employer/recommended [get]
func (h *EmployerHandler) Recommended(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		job *models.Job
		err error
	)
	if raw := c.Query("jobId"); raw != "" {
		id, ok := idParam(raw)
		if !ok {
			badRequest(c, "Invalid job ID", nil)
			return
		}
		job, err = h.store.GetJob(ctx, id)
		if err == nil && job.EmployerID != claims.UserID {
			notFound(c, "Job not found")
			return
		}
	} else {
		job, err = h.store.LatestJobByEmployer(ctx, claims.UserID)
	}
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Post a job to get candidate recommendations")
		return
	}
	if err != nil {
		respondError(c, h.log, err, "Failed to load job")
		return
	}

	profiles, err := h.store.ListProfiles(ctx, "")
	if err != nil {
		respondError(c, h.log, err, "Failed to list candidates")
		return
	}

	ranked, err := match.Rank(job, profiles)
	if err != nil {
		respondError(c, h.log, err, "Failed to rank candidates")
		return
	}

	results := make([]models.RankedCandidate, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, models.RankedCandidate{CandidateProfile: r.Item, Score: r.Score})
	}
	c.JSON(http.StatusOK, models.RecommendedCandidatesResponse{
		Job:          job,
		Results:      results,
		TotalResults: len(results),
	})
}

// Contact emails a candidate on the employer's behalf
// @Summary Contact a candidate
// @Description Email a candidate with the employer as reply-to. Without a mail provider the candidate's address is returned instead. Requires premium access.
// @Tags Employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Candidate user ID"
// @Param request body models.ContactRequest true "Message"
// @Success 200 {object} models.ContactResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 402 {object} models.ErrorResponse "Premium access required"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 502 {object} models.ErrorResponse "Mail provider error"
// @Router /employer/candidates/{userId}/contact [post]
func (h *EmployerHandler) Contact(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	userID, ok := idParam(c.Param("userId"))
	if !ok {
		badRequest(c, "Invalid user ID", nil)
		return
	}

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	subject, message := strings.TrimSpace(req.Subject), strings.TrimSpace(req.Message)
	if subject == "" || message == "" {
		badRequest(c, "Invalid request body", errors.New("subject and message are required"))
		return
	}

	ctx := c.Request.Context()
	candidate, err := h.store.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && candidate.Role != models.RoleCandidate) {
		notFound(c, "Candidate not found")
		return
	}
	if err != nil {
		respondError(c, h.log, err, "Failed to load candidate")
		return
	}

	if h.mailer == nil {
		c.JSON(http.StatusOK, models.ContactResponse{
			Success:        false,
			Reason:         models.ContactReasonMailNotConfigured,
			CandidateEmail: candidate.Email,
		})
		return
	}

	employer, err := h.store.GetUserByID(ctx, claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to load account")
		return
	}

	err = h.mailer.Send(ctx, notify.Message{
		To:          candidate.Email,
		ToName:      candidate.Name,
		ReplyTo:     employer.Email,
		ReplyToName: employer.Name,
		Subject:     subject,
		Body:        fmt.Sprintf("Message from %s:\n\n%s", employer.Email, message),
	})
	if err != nil {
		respondError(c, h.log, err, "Failed to send email")
		return
	}

	h.log.Info("candidate contacted", zap.Int64("employer_id", employer.ID), zap.Int64("candidate_id", candidate.ID))
	c.JSON(http.StatusOK, models.ContactResponse{Success: true, Message: "Message sent"})
}
