package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/profile"
)

var errInvalidParams = errors.New("invalid parameters")

// ToolInfo describes one MCP tool for discovery.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type toolHandler func(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

type lookupParams struct {
	Name string `json:"name" description:"Ingredient name to look up"`
}

type getProfileParams struct {
	UserID string `json:"user_id" description:"User whose stored profile to return"`
}

type updateProfileParams struct {
	UserID string `json:"user_id" description:"User whose profile to update"`
	profile.Update
}

var toolDescriptions = []ToolInfo{
	{Name: "analyze_ingredients", Description: "Score an ingredient list (or label_text) against a profile or a stored user profile"},
	{Name: "lookup_ingredient", Description: "Return catalog metadata and conflict rules for one ingredient"},
	{Name: "get_profile", Description: "Return the stored profile for user_id"},
	{Name: "update_profile", Description: "Update only the provided fields of the stored profile for user_id"},
}

func (s *Server) tools() map[string]toolHandler {
	return map[string]toolHandler{
		"analyze_ingredients": s.handleAnalyzeTool,
		"lookup_ingredient":   s.handleLookupTool,
		"get_profile":         s.handleGetProfileTool,
		"update_profile":      s.handleUpdateProfileTool,
	}
}

func (s *Server) handleMCPInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"server": protocol.Implementation{Name: Name, Version: Version},
		"tools":  toolDescriptions,
	})
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": fmt.Sprintf("invalid JSON: %v", err)})
		return
	}

	handler, ok := s.tools()[request.Name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": fmt.Sprintf("unknown tool: %s", request.Name)})
		return
	}

	result, err := handler(r, &request)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAnalyzeTool(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	args := req.Arguments
	body := analyzeRequest{
		Ingredients: args["ingredients"],
		Profile:     args["profile"],
	}
	body.UserID, _ = args["user_id"].(string)
	body.LabelText, _ = args["label_text"].(string)

	sreq, err := body.toServiceRequest(logger.SourceMCP)
	if err != nil {
		return nil, err
	}
	resp, err := s.svc.Analyze(r.Context(), sreq)
	if err != nil {
		return nil, err
	}
	return createJSONResponse(resp.Result)
}

func (s *Server) handleLookupTool(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params lookupParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	info, ok := s.svc.Lookup(params.Name)
	if !ok {
		return createJSONResponse(map[string]any{"name": params.Name, "known": false})
	}
	return createJSONResponse(info)
}

func (s *Server) handleGetProfileTool(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params getProfileParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	p, err := s.svc.Profile(r.Context(), params.UserID)
	if err != nil {
		return nil, err
	}
	return createJSONResponse(p.Canonical())
}

func (s *Server) handleUpdateProfileTool(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params updateProfileParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	p, err := s.svc.UpdateProfile(r.Context(), params.UserID, params.Update)
	if err != nil {
		return nil, err
	}
	return createJSONResponse(p.Canonical())
}

// extractParams decodes the request arguments into target through JSON.
func extractParams(req *protocol.CallToolRequest, target any) error {
	data, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return nil
}

func createJSONResponse(data any) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
