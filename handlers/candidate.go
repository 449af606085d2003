package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/match"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/storage"
	"github.com/dreamjobs/portal/utils"
)

// multipartOverhead is allowed on top of the resume size limit for form
// boundaries and headers.
const multipartOverhead = 64 << 10

// CandidateHandler serves the candidate's own profile, resume and
// recommendations
type CandidateHandler struct {
	store     storage.Repository
	resumes   storage.ResumeStore
	extractor *utils.DocumentExtractor
	maxResume int64
	log       *zap.Logger
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(
	store storage.Repository,
	resumes storage.ResumeStore,
	extractor *utils.DocumentExtractor,
	maxResume int64,
	log *zap.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		store:     store,
		resumes:   resumes,
		extractor: extractor,
		maxResume: maxResume,
		log:       logger.OrNop(log).Named("candidate"),
	}
}

// GetProfile returns the candidate profile
// @Summary Get candidate profile
// @Description Get the authenticated candidate's profile. A candidate without a profile gets an empty one.
// @Tags Candidate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CandidateProfile
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not a candidate"
// @Router /candidate/profile [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	profile, err := h.loadProfile(c, claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile saves the candidate profile
// @Summary Update candidate profile
// @Description Save education, experience, skills and comments. Experience may be a number or numeric string.
// @Tags Candidate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.CandidateProfile
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /candidate/profile [put]
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	profile := &models.CandidateProfile{
		UserID:          claims.UserID,
		Education:       strings.TrimSpace(req.Education),
		ExperienceYears: int(req.ExperienceYears),
		Skills:          strings.TrimSpace(req.Skills),
		Comments:        strings.TrimSpace(req.Comments),
	}
	if err := h.store.UpsertProfile(c.Request.Context(), profile); err != nil {
		respondError(c, h.log, err, "Failed to update profile")
		return
	}

	saved, err := h.loadProfile(c, claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UploadResume stores a resume file for the candidate
// @Summary Upload resume
// @Description Upload a PDF, DOC or DOCX resume. Text is extracted for the employer resume search.
// @Tags Candidate
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file (PDF, DOC, DOCX)"
// @Success 200 {object} models.ResumeUploadResponse "Resume uploaded"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidate/resume [post]
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxResume+multipartOverhead)
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.tooLarge(c)
			return
		}
		badRequest(c, "Resume file is required", err)
		return
	}
	defer file.Close()

	if header.Size > h.maxResume {
		h.tooLarge(c)
		return
	}
	if !h.extractor.IsSupportedFormat(header.Filename) {
		badRequest(c, "Unsupported file type", fmt.Errorf("only PDF, DOC and DOCX resumes are accepted"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxResume+1))
	if err != nil {
		badRequest(c, "Failed to read resume", err)
		return
	}
	if int64(len(data)) > h.maxResume {
		h.tooLarge(c)
		return
	}

	text, err := h.extractor.ExtractText(header.Filename, data)
	if err != nil {
		h.log.Info("resume text extraction failed", zap.Int64("user_id", claims.UserID),
			zap.String("file", header.Filename), zap.Error(err))
		text = ""
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = storage.ContentTypeFor(header.Filename)
	}

	ctx := c.Request.Context()
	previous, err := h.store.GetProfile(ctx, claims.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		respondError(c, h.log, err, "Failed to upload resume")
		return
	}

	owner := strconv.FormatInt(claims.UserID, 10)
	location, err := h.resumes.Save(ctx, owner, header.Filename, mime, data)
	if err != nil {
		respondError(c, h.log, err, "Failed to upload resume")
		return
	}

	name := filepath.Base(header.Filename)
	if err := h.store.SetResume(ctx, claims.UserID, location, name, mime, text); err != nil {
		if delErr := h.resumes.Delete(ctx, location); delErr != nil {
			h.log.Warn("removing orphaned resume failed", zap.String("location", location), zap.Error(delErr))
		}
		respondError(c, h.log, err, "Failed to save resume reference")
		return
	}

	if previous != nil && previous.ResumeFile != "" && previous.ResumeFile != location {
		if err := h.resumes.Delete(ctx, previous.ResumeFile); err != nil {
			h.log.Warn("removing previous resume failed", zap.String("location", previous.ResumeFile), zap.Error(err))
		}
	}

	h.log.Info("resume uploaded", zap.Int64("user_id", claims.UserID), zap.Int("bytes", len(data)))
	c.JSON(http.StatusOK, models.ResumeUploadResponse{
		ResumeName:    name,
		ExtractedText: text != "",
		Message:       "Resume uploaded successfully",
	})
}

// DownloadResume returns the candidate's own resume file
// @Summary Download own resume
// @Tags Candidate
// @Produce octet-stream
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse "No resume on file"
// @Router /candidate/resume [get]
func (h *CandidateHandler) DownloadResume(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	serveResume(c, h.store, h.resumes, h.log, claims.UserID)
}

// Applications lists the jobs the candidate applied to
// @Summary List own applications
// @Tags Candidate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApplicationsResponse
// @Router /candidate/applications [get]
func (h *CandidateHandler) Applications(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	apps, err := h.store.ListApplicationsByCandidate(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, models.ApplicationsResponse{Results: apps})
}

// Recommended ranks every job against the candidate profile
// @Summary Recommended jobs
// @Description Rank all jobs, newest first before scoring, against the candidate profile. Requires premium access.
// @Tags Candidate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RecommendedJobsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 402 {object} models.ErrorResponse "Premium access required"
// @Router /candidate/recommended [get]
func (h *CandidateHandler) Recommended(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	profile, err := h.loadProfile(c, claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to load profile")
		return
	}

	jobs, err := h.store.ListJobs(ctx, models.JobFilter{Limit: models.AllJobs})
	if err != nil {
		respondError(c, h.log, err, "Failed to list jobs")
		return
	}

	ranked, err := match.Rank(profile, jobs)
	if err != nil {
		respondError(c, h.log, err, "Failed to rank jobs")
		return
	}

	results := make([]models.RankedJob, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, models.RankedJob{Job: r.Item, Score: r.Score})
	}

	resp := models.RecommendedJobsResponse{
		Results:      results,
		TotalResults: len(results),
	}
	if profile.Skills == "" && profile.Education == "" {
		resp.Message = "Complete your profile for better matches"
	}
	c.JSON(http.StatusOK, resp)
}

// loadProfile returns the stored profile, or an empty one carrying the
// account's name and email when the candidate has not saved one yet.
func (h *CandidateHandler) loadProfile(c *gin.Context, userID int64) (*models.CandidateProfile, error) {
	ctx := c.Request.Context()
	profile, err := h.store.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	user, err := h.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.CandidateProfile{UserID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (h *CandidateHandler) tooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
		Error:   "File too large",
		Code:    http.StatusRequestEntityTooLarge,
		Details: fmt.Sprintf("resumes are limited to %d bytes", h.maxResume),
	})
}

// serveResume streams a candidate's stored resume as an attachment.
func serveResume(c *gin.Context, store storage.Repository, resumes storage.ResumeStore, log *zap.Logger, userID int64) {
	ctx := c.Request.Context()
	profile, err := store.GetProfile(ctx, userID)
	if err != nil {
		respondError(c, log, err, "Resume not found")
		return
	}
	if !profile.HasResume() {
		notFound(c, "Resume not found")
		return
	}

	data, err := resumes.Load(ctx, profile.ResumeFile)
	if err != nil {
		respondError(c, log, err, "Resume not found")
		return
	}

	mime := profile.ResumeMime
	if mime == "" {
		mime = storage.ContentTypeFor(profile.ResumeName)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", profile.ResumeName))
	c.Header("Last-Modified", profile.UpdatedAt.UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, mime, data)
}
