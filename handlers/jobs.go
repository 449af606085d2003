package handlers

import (
	"errors"
	"io"
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

// JobHandler serves the public job board and applications
type JobHandler struct {
	store    storage.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(store storage.Repository, notifier notify.Notifier, log *zap.Logger) *JobHandler {
	return &JobHandler{
		store:    store,
		notifier: notifier,
		log:      logger.OrNop(log).Named("jobs"),
	}
}

// List returns jobs newest first
// @Summary Browse jobs
// @Description List jobs newest first, filtered by keyword and location
// @Tags Jobs
// @Produce json
// @Param q query string false "Keyword in title, company, skills or description"
// @Param location query string false "State, city or location"
// @Param limit query int false "Maximum results (at most 500)"
// @Success 200 {object} models.JobsResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := models.JobFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Limit:    match.CoerceString(c.Query("limit")),
	}

	jobs, err := h.store.ListJobs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, models.JobsResponse{Results: jobs, TotalResults: len(jobs)})
}

// Get returns one job
// @Summary Get a job
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} models.Job
// @Failure 400 {object} models.ErrorResponse "Invalid job ID"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c.Param("id"))
	if !ok {
		badRequest(c, "Invalid job ID", nil)
		return
	}

	job, err := h.store.GetJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Apply records a candidate's application to a job
// @Summary Apply to a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body models.ApplyRequest false "Cover message"
// @Success 201 {object} models.MessageResponse "Application submitted"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not a candidate"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 409 {object} models.ErrorResponse "Already applied"
// @Router /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	jobID, ok := idParam(c.Param("id"))
	if !ok {
		badRequest(c, "Invalid job ID", nil)
		return
	}

	var req models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	job, err := h.store.GetJob(ctx, jobID)
	if err != nil {
		respondError(c, h.log, err, "Job not found")
		return
	}

	app := &models.Application{
		JobID:       job.ID,
		CandidateID: claims.UserID,
		Message:     strings.TrimSpace(req.Message),
	}
	if err := h.store.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			respondError(c, h.log, err, "Already applied to this job")
			return
		}
		respondError(c, h.log, err, "Failed to apply")
		return
	}

	publish(ctx, h.notifier, h.log, notify.NewEvent(notify.EventApplicationCreated, map[string]any{
		"applicationId": app.ID,
		"jobId":         job.ID,
		"employerId":    job.EmployerID,
		"candidateId":   claims.UserID,
	}))

	c.JSON(http.StatusCreated, models.MessageResponse{
		ID:      app.ID,
		Message: "Application submitted",
	})
}
