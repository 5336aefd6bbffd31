// Package server provides the HTTP REST API for the founder blueprint service.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/founder-blueprint/internal/server/middleware"
	"github.com/jonathan/founder-blueprint/internal/types"
	"golang.org/x/sync/errgroup"
)

// RecommendationsRequest identifies the startup to personalize for.
type RecommendationsRequest struct {
	StartupID string `json:"startupId"`
}

// handleRecommendations returns personalized recommendations for a startup.
// The AI path degrades to the deterministic fallback on any failure, so a
// found-and-owned startup always yields a 200.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StartupID == "" {
		s.errorResponse(w, http.StatusBadRequest, "startupId is required")
		return
	}
	startupID, err := uuid.Parse(req.StartupID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid startup ID")
		return
	}

	// Startup and team roster load in parallel.
	var startup *types.Startup
	var team []types.FoundingTeamMember
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		startup, err = s.db.GetStartup(ctx, startupID)
		return err
	})
	g.Go(func() error {
		var err error
		team, err = s.db.ListTeamMembers(ctx, startupID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load startup profile: %v", err))
		return
	}

	if startup == nil {
		nf := &ErrStartupNotFound{StartupID: startupID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	if startup.UserID != userID {
		forbidden := &ErrForbidden{}
		s.errorResponse(w, HTTPStatus(forbidden), forbidden.Error())
		return
	}

	profile := types.ProfileFromStartup(startup, team)
	response := s.orchestrator.GetRecommendations(r.Context(), profile)

	s.jsonResponse(w, http.StatusOK, response)
}
