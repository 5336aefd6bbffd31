// Package server provides the HTTP REST API for the founder blueprint service.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/founder-blueprint/internal/blueprint"
	"github.com/jonathan/founder-blueprint/internal/types"
)

// RegenerateBlueprintRequest identifies the startup whose blueprint should
// be rebuilt from its current profile.
type RegenerateBlueprintRequest struct {
	StartupID string `json:"startupId"`
}

// handleRegenerateBlueprint rebuilds a startup's blueprint from its current
// profile and team. Completed flags carry over for tasks that survive the
// regeneration, keyed by stable task ID.
func (s *Server) handleRegenerateBlueprint(w http.ResponseWriter, r *http.Request) {
	var req RegenerateBlueprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StartupID == "" {
		s.errorResponse(w, http.StatusBadRequest, "startupId is required")
		return
	}

	startup, ok := s.ownedStartup(w, r, req.StartupID)
	if !ok {
		return
	}

	team, err := s.db.ListTeamMembers(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load team: %v", err))
		return
	}

	existing, err := s.db.GetBlueprintByStartup(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load blueprint: %v", err))
		return
	}

	var previous *types.BlueprintContent
	if existing != nil {
		previous = &existing.Content
	}

	content := blueprint.Regenerate(types.ProfileFromStartup(startup, team), team, previous)

	bp, created, err := s.db.UpsertBlueprint(r.Context(), startup.ID, content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save blueprint: %v", err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, bp)
}

// handleGetBlueprint returns a startup's blueprint.
func (s *Server) handleGetBlueprint(w http.ResponseWriter, r *http.Request) {
	startup, ok := s.ownedStartup(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	bp, err := s.db.GetBlueprintByStartup(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load blueprint: %v", err))
		return
	}
	if bp == nil {
		nf := &ErrBlueprintNotFound{StartupID: startup.ID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, bp)
}

// handleReplaceBlueprint overwrites a startup's blueprint content wholesale.
// This is the persistence path for client-side task state.
func (s *Server) handleReplaceBlueprint(w http.ResponseWriter, r *http.Request) {
	startup, ok := s.ownedStartup(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	var content types.BlueprintContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bp, err := s.db.GetBlueprintByStartup(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load blueprint: %v", err))
		return
	}
	if bp == nil {
		nf := &ErrBlueprintNotFound{StartupID: startup.ID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	if err := s.db.UpdateBlueprintContent(r.Context(), bp.ID, content); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save blueprint: %v", err))
		return
	}

	bp.Content = content
	s.jsonResponse(w, http.StatusOK, bp)
}

// handleToggleTask flips one legal task's completed flag, addressed by its
// stable task ID.
func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	startup, ok := s.ownedStartup(w, r, r.PathValue("id"))
	if !ok {
		return
	}
	taskID := r.PathValue("task_id")

	bp, err := s.db.GetBlueprintByStartup(r.Context(), startup.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load blueprint: %v", err))
		return
	}
	if bp == nil {
		nf := &ErrBlueprintNotFound{StartupID: startup.ID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	found := false
	for i := range bp.Content.LegalTasks {
		if bp.Content.LegalTasks[i].ID == taskID {
			bp.Content.LegalTasks[i].Completed = !bp.Content.LegalTasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		nf := &ErrTaskNotFound{TaskID: taskID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	if err := s.db.UpdateBlueprintContent(r.Context(), bp.ID, bp.Content); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save blueprint: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, bp)
}
