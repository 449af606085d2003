package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/tools"
)

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// ProtocolVersion is reported by initialize
const ProtocolVersion = "2024-11-05"

// Server speaks MCP (Model Context Protocol) JSON-RPC so external agents can
// call the matching tools
type Server struct {
	registry *tools.ToolRegistry
	name     string
	version  string
	log      *zap.Logger
}

// NewServer creates a new MCP server
func NewServer(registry *tools.ToolRegistry, name, version string, log *zap.Logger) *Server {
	return &Server{
		registry: registry,
		name:     name,
		version:  version,
		log:      logger.OrNop(log).Named("mcp"),
	}
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents a JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult answers the initialize handshake
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
	Capabilities    map[string]interface{} `json:"capabilities"`
}

// ServerInfo names this server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsListResult represents the result of tools/list
type ToolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}

// ToolDefinition represents a tool definition for MCP
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolCallParams represents parameters for tools/call
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult represents the result of tools/call
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ContentItem represents a content item in MCP
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RegisterRoutes registers MCP endpoints on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP handles MCP JSON-RPC requests
// @Summary MCP JSON-RPC endpoint
// @Description Accepts initialize, tools/list and tools/call JSON-RPC requests
// @Tags mcp
// @Accept json
// @Produce json
// @Param request body MCPRequest true "JSON-RPC request"
// @Success 200 {object} MCPResponse
// @Router /mcp [post]
func (s *Server) HandleMCP(c *gin.Context) {
	var req MCPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sendError(c, nil, codeParseError, "Parse error", err.Error())
		return
	}

	switch req.Method {
	case "initialize":
		s.sendResult(c, req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      ServerInfo{Name: s.name, Version: s.version},
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
		})
	case "tools/list":
		s.sendResult(c, req.ID, ToolsListResult{Tools: s.definitions()})
	case "tools/call":
		var params ToolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(c, req.ID, codeInvalidParams, "Invalid params", err.Error())
			return
		}
		s.sendResult(c, req.ID, s.call(c.Request.Context(), params))
	default:
		s.sendError(c, req.ID, codeMethodNotFound, "Method not found", nil)
	}
}

// HandleToolsList handles POST /mcp/tools/list
// @Summary List MCP tools
// @Tags mcp
// @Produce json
// @Success 200 {object} ToolsListResult
// @Router /mcp/tools/list [post]
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, ToolsListResult{Tools: s.definitions()})
}

// HandleToolsCall handles POST /mcp/tools/call
// @Summary Call an MCP tool
// @Tags mcp
// @Accept json
// @Produce json
// @Param request body ToolCallParams true "Tool name and arguments"
// @Success 200 {object} ToolCallResult
// @Failure 400 {object} models.ErrorResponse
// @Router /mcp/tools/call [post]
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, s.call(c.Request.Context(), params))
}

func (s *Server) definitions() []ToolDefinition {
	list := s.registry.List()
	definitions := make([]ToolDefinition, 0, len(list))
	for _, tool := range list {
		definitions = append(definitions, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return definitions
}

// call runs a tool and folds both execution errors and unsuccessful tool
// results into an isError result.
func (s *Server) call(ctx context.Context, params ToolCallParams) ToolCallResult {
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return ToolCallResult{
			Content: []ContentItem{{Type: "text", Text: err.Error()}},
			IsError: true,
		}
	}

	var outcome tools.ToolResult
	failed := json.Unmarshal(result, &outcome) == nil && !outcome.Success
	return ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: string(result)}},
		IsError: failed,
	}
}

func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	tool, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}

	s.log.Debug("executing tool", zap.String("tool", name))
	result, err := tool.Execute(ctx, args)
	if err != nil {
		s.log.Warn("tool failed", zap.String("tool", name), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Server) sendResult(c *gin.Context, id interface{}, result interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *Server) sendError(c *gin.Context, id interface{}, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}
