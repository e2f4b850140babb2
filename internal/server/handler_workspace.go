package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/me/disksched/internal/requests"
	"github.com/me/disksched/pkg/model"
)

// rawValue accepts a JSON number or string and returns its text, so the
// workspace can apply its own input validation.
func rawValue(raw json.RawMessage) string {
	return strings.Trim(strings.TrimSpace(string(raw)), `"`)
}

func (s *Server) handleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleAddRequest(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req struct {
		Track json.RawMessage `json:"track"`
	}
	if !decodeJSON(w, r, reqID, &req) {
		return
	}
	if _, err := s.workspace.AddRequestInput(rawValue(req.Track)); err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	respondCreated(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleRemoveRequest(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	t, err := requests.ParseTrack(chi.URLParam(r, "track"), s.workspace.Snapshot().TotalTracks)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	if err := s.workspace.RemoveRequest(t); err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	respondOK(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleClearRequests(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if err := s.workspace.ClearAll(); err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	respondOK(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleSetHead(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req struct {
		Head json.RawMessage `json:"head"`
	}
	if !decodeJSON(w, r, reqID, &req) {
		return
	}
	t, err := requests.ParseTrack(rawValue(req.Head), s.workspace.Snapshot().TotalTracks)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	if err := s.workspace.SetHead(t); err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	respondOK(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleSetAlgorithm(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req struct {
		Algorithm string `json:"algorithm"`
	}
	if !decodeJSON(w, r, reqID, &req) {
		return
	}
	alg, err := model.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	if err := s.workspace.SelectAlgorithm(alg); err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	respondOK(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleSetDirection(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req struct {
		Direction string `json:"direction"`
	}
	if !decodeJSON(w, r, reqID, &req) {
		return
	}
	if err := s.workspace.SetDirection(model.Direction(req.Direction)); err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	respondOK(w, reqID, s.workspace.Snapshot())
}

func (s *Server) handleStartSimulation(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	state, err := s.workspace.Start(s.runCtx)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	s.logger.Info("simulation started", "run_id", state.RunID, "request_id", reqID)
	respondJSON(w, http.StatusAccepted, reqID, state, nil)
}

func (s *Server) handleStopSimulation(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	stopped := s.workspace.Stop()
	respondOK(w, reqID, map[string]any{
		"stopped":   stopped,
		"workspace": s.workspace.Snapshot(),
	})
}

func (s *Server) handleListNotices(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, s.workspace.Notices())
}
