package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/match"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/storage"
	"github.com/dreamjobs/portal/tools"
)

// MatchHandler exposes the scoring engine over plain JSON
type MatchHandler struct {
	registry *tools.ToolRegistry
	log      *zap.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(registry *tools.ToolRegistry, log *zap.Logger) *MatchHandler {
	return &MatchHandler{
		registry: registry,
		log:      logger.OrNop(log).Named("match"),
	}
}

// Rank scores arbitrary records against a reference record
// @Summary Rank records
// @Description Rank candidate records against a reference by education match, shared skills and experience gap. Ties keep input order.
// @Tags Match
// @Accept json
// @Produce json
// @Param request body object true "{\"reference\": {...}, \"candidates\": [{...}]}"
// @Success 200 {object} models.RankResponse
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Router /match/rank [post]
func (h *MatchHandler) Rank(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Failed to read request body", err)
		return
	}

	reference, candidates, err := match.ParseRankRequest(body)
	if err != nil {
		respondError(c, h.log, err, "Invalid input")
		return
	}

	ranked, err := match.Rank(reference, candidates)
	if err != nil {
		respondError(c, h.log, err, "Invalid input")
		return
	}
	c.JSON(http.StatusOK, models.RankResponse{Results: ranked, TotalResults: len(ranked)})
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all tools exposed to external agents over MCP
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func (h *MatchHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.GetToolDefinitions(),
	})
}

// SystemHandler reports service health
type SystemHandler struct {
	store   storage.Repository
	version string
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(store storage.Repository, version string) *SystemHandler {
	return &SystemHandler{store: store, version: version}
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and its database is reachable
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Failure 503 {object} models.HealthResponse "Database unreachable"
// @Router /health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	if err := h.store.Ping(c.Request.Context()); err != nil {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, models.HealthResponse{
		Status:    status,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
