// Package server provides the HTTP REST API for the founder blueprint service.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/founder-blueprint/internal/blueprint"
	"github.com/jonathan/founder-blueprint/internal/db"
	"github.com/jonathan/founder-blueprint/internal/server/middleware"
	"github.com/jonathan/founder-blueprint/internal/types"
)

// TeamMemberInput is one founding team member in a write request.
type TeamMemberInput struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// CreateStartupRequest is the onboarding payload. Ownership comes from the
// JWT, never from the body.
type CreateStartupRequest struct {
	FullName           string            `json:"fullName"`
	StartupName        string            `json:"startupName"`
	Industry           string            `json:"industry"`
	Stage              string            `json:"stage"`
	FounderCount       int               `json:"founderCount"`
	DomainPurchased    bool              `json:"domainPurchased"`
	TrademarkCompleted bool              `json:"trademarkCompleted"`
	EntityRegistered   bool              `json:"entityRegistered"`
	Goals              []string          `json:"goals"`
	FoundingTeam       []TeamMemberInput `json:"foundingTeam"`
	UserID             string            `json:"userId,omitempty"`
}

// UpdateStartupRequest is the partial-update payload. Nil fields are left
// unchanged; a non-nil FoundingTeam replaces the whole roster.
type UpdateStartupRequest struct {
	FullName           *string            `json:"fullName"`
	StartupName        *string            `json:"startupName"`
	Industry           *string            `json:"industry"`
	Stage              *string            `json:"stage"`
	FounderCount       *int               `json:"founderCount"`
	DomainPurchased    *bool              `json:"domainPurchased"`
	TrademarkCompleted *bool              `json:"trademarkCompleted"`
	EntityRegistered   *bool              `json:"entityRegistered"`
	Goals              *[]string          `json:"goals"`
	FoundingTeam       *[]TeamMemberInput `json:"foundingTeam"`
}

// StartupResponse bundles a startup with its team for detail responses.
type StartupResponse struct {
	Startup      *types.Startup             `json:"startup"`
	FoundingTeam []types.FoundingTeamMember `json:"foundingTeam"`
	Blueprint    *types.Blueprint           `json:"blueprint,omitempty"`
}

// handleCreateStartup handles the onboarding submission. The startup, its
// founding team, and the initial blueprint are persisted atomically.
func (s *Server) handleCreateStartup(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateStartupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validateCreateStartup(&req); verr != nil {
		s.errorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}

	startup := &types.Startup{
		UserID:             userID,
		FullName:           strings.TrimSpace(req.FullName),
		StartupName:        strings.TrimSpace(req.StartupName),
		Industry:           req.Industry,
		Stage:              req.Stage,
		FounderCount:       req.FounderCount,
		DomainPurchased:    req.DomainPurchased,
		TrademarkCompleted: req.TrademarkCompleted,
		EntityRegistered:   req.EntityRegistered,
		Goals:              req.Goals,
	}

	team := make([]types.FoundingTeamMember, 0, len(req.FoundingTeam))
	for _, m := range req.FoundingTeam {
		team = append(team, types.FoundingTeamMember{
			Name:   strings.TrimSpace(m.Name),
			Skills: m.Skills,
		})
	}

	content := blueprint.Generate(types.ProfileFromStartup(startup, team), team)

	created, createdTeam, err := s.db.CreateStartupOnboarding(r.Context(), startup, team, content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create startup: %v", err))
		return
	}

	bp, err := s.db.GetBlueprintByStartup(r.Context(), created.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load blueprint: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusCreated, StartupResponse{
		Startup:      created,
		FoundingTeam: createdTeam,
		Blueprint:    bp,
	})
}

// handleListStartups returns the authenticated founder's startups.
func (s *Server) handleListStartups(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.StartupFilters{
		Search: r.URL.Query().Get("search"),
		Limit:  parseQueryInt(r, "limit", 10),
		Offset: parseQueryInt(r, "offset", 0),
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 10
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	startups, err := s.db.ListStartups(r.Context(), userID, filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list startups: %v", err))
		return
	}
	if startups == nil {
		startups = []types.Startup{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"startups": startups,
		"limit":    filters.Limit,
		"offset":   filters.Offset,
	})
}

// handleGetStartup returns one startup with its team and blueprint.
func (s *Server) handleGetStartup(w http.ResponseWriter, r *http.Request) {
	startup, ok := s.ownedStartup(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	team, err := s.db.ListTeamMembers(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load team: %v", err))
		return
	}

	bp, err := s.db.GetBlueprintByStartup(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load blueprint: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, StartupResponse{
		Startup:      startup,
		FoundingTeam: team,
		Blueprint:    bp,
	})
}

// handleUpdateStartup applies a partial update to a startup, optionally
// replacing the founding team roster.
func (s *Server) handleUpdateStartup(w http.ResponseWriter, r *http.Request) {
	startup, ok := s.ownedStartup(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	var req UpdateStartupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validateUpdateStartup(&req); verr != nil {
		s.errorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}

	update := db.StartupUpdate{
		FullName:           trimmed(req.FullName),
		StartupName:        trimmed(req.StartupName),
		Industry:           req.Industry,
		Stage:              req.Stage,
		FounderCount:       req.FounderCount,
		DomainPurchased:    req.DomainPurchased,
		TrademarkCompleted: req.TrademarkCompleted,
		EntityRegistered:   req.EntityRegistered,
		Goals:              req.Goals,
	}

	if err := s.db.UpdateStartup(r.Context(), startup.ID, update); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to update startup: %v", err))
		return
	}

	if req.FoundingTeam != nil {
		team := make([]types.FoundingTeamMember, 0, len(*req.FoundingTeam))
		for _, m := range *req.FoundingTeam {
			team = append(team, types.FoundingTeamMember{
				Name:   strings.TrimSpace(m.Name),
				Skills: m.Skills,
			})
		}
		if _, err := s.db.ReplaceTeam(r.Context(), startup.ID, team); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to replace team: %v", err))
			return
		}
	}

	updated, err := s.db.GetStartup(r.Context(), startup.ID)
	if err != nil || updated == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated startup")
		return
	}
	team, err := s.db.ListTeamMembers(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load team: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, StartupResponse{
		Startup:      updated,
		FoundingTeam: team,
	})
}

// ownedStartup parses the startup ID, loads the startup, and enforces
// ownership. Writes the error response itself when the check fails.
func (s *Server) ownedStartup(w http.ResponseWriter, r *http.Request, rawID string) (*types.Startup, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	startupID, err := uuid.Parse(rawID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid startup ID")
		return nil, false
	}

	startup, err := s.db.GetStartup(r.Context(), startupID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get startup: %v", err))
		return nil, false
	}
	if startup == nil {
		err := &ErrStartupNotFound{StartupID: startupID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	if startup.UserID != userID {
		err := &ErrForbidden{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return startup, true
}

func validateCreateStartup(req *CreateStartupRequest) error {
	if req.UserID != "" {
		return &ErrValidation{Field: "userId", Message: "must not be set; ownership comes from the token"}
	}
	if strings.TrimSpace(req.FullName) == "" {
		return &ErrValidation{Field: "fullName", Message: "is required"}
	}
	if strings.TrimSpace(req.StartupName) == "" {
		return &ErrValidation{Field: "startupName", Message: "is required"}
	}
	if !types.IsValidIndustry(req.Industry) {
		return &ErrValidation{Field: "industry", Message: "must be one of: " + strings.Join(types.ValidIndustries, ", ")}
	}
	if !types.IsValidStage(req.Stage) {
		return &ErrValidation{Field: "stage", Message: "must be one of: " + strings.Join(types.ValidStages, ", ")}
	}
	if req.FounderCount < 1 {
		return &ErrValidation{Field: "founderCount", Message: "must be at least 1"}
	}
	if len(req.Goals) == 0 {
		return &ErrValidation{Field: "goals", Message: "at least one goal is required"}
	}
	for _, g := range req.Goals {
		if !types.IsValidGoal(g) {
			return &ErrValidation{Field: "goals", Message: "unknown goal: " + g}
		}
	}
	if len(req.FoundingTeam) == 0 {
		return &ErrValidation{Field: "foundingTeam", Message: "at least one member is required"}
	}
	return validateTeam(req.FoundingTeam)
}

func validateUpdateStartup(req *UpdateStartupRequest) error {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return &ErrValidation{Field: "fullName", Message: "must not be empty"}
	}
	if req.StartupName != nil && strings.TrimSpace(*req.StartupName) == "" {
		return &ErrValidation{Field: "startupName", Message: "must not be empty"}
	}
	if req.Industry != nil && !types.IsValidIndustry(*req.Industry) {
		return &ErrValidation{Field: "industry", Message: "must be one of: " + strings.Join(types.ValidIndustries, ", ")}
	}
	if req.Stage != nil && !types.IsValidStage(*req.Stage) {
		return &ErrValidation{Field: "stage", Message: "must be one of: " + strings.Join(types.ValidStages, ", ")}
	}
	if req.FounderCount != nil && *req.FounderCount < 1 {
		return &ErrValidation{Field: "founderCount", Message: "must be at least 1"}
	}
	if req.Goals != nil {
		if len(*req.Goals) == 0 {
			return &ErrValidation{Field: "goals", Message: "at least one goal is required"}
		}
		for _, g := range *req.Goals {
			if !types.IsValidGoal(g) {
				return &ErrValidation{Field: "goals", Message: "unknown goal: " + g}
			}
		}
	}
	if req.FoundingTeam != nil {
		if len(*req.FoundingTeam) == 0 {
			return &ErrValidation{Field: "foundingTeam", Message: "at least one member is required"}
		}
		return validateTeam(*req.FoundingTeam)
	}
	return nil
}

func validateTeam(team []TeamMemberInput) error {
	for _, m := range team {
		if strings.TrimSpace(m.Name) == "" {
			return &ErrValidation{Field: "foundingTeam", Message: "member name is required"}
		}
		if len(m.Skills) == 0 {
			return &ErrValidation{Field: "foundingTeam", Message: "member skills are required"}
		}
		for _, sk := range m.Skills {
			if strings.TrimSpace(sk) == "" {
				return &ErrValidation{Field: "foundingTeam", Message: "member skills must not be empty"}
			}
		}
	}
	return nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
