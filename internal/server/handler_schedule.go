package server

import (
	"net/http"

	"github.com/me/disksched/internal/engine"
	"github.com/me/disksched/internal/metrics"
	"github.com/me/disksched/internal/requests"
	"github.com/me/disksched/pkg/model"
)

type algorithmInfo struct {
	Key         model.Algorithm `json:"key"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
}

func (s *Server) handleListAlgorithms(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	algs := model.Algorithms()
	out := make([]algorithmInfo, 0, len(algs))
	for _, a := range algs {
		out = append(out, algorithmInfo{Key: a, Label: a.Label(), Description: a.Description()})
	}
	respondOK(w, reqID, out)
}

// scheduleInput is a ScheduleRequest after validation.
type scheduleInput struct {
	requests    []model.Track
	head        model.Track
	direction   model.Direction
	totalTracks int
}

// validateSchedule applies the same checks the workspace applies to
// interactive input.
func (s *Server) validateSchedule(req model.ScheduleRequest) (scheduleInput, error) {
	in := scheduleInput{
		head:        model.Track(s.config.InitialHead),
		direction:   model.DirectionRight,
		totalTracks: req.TotalTracks,
	}
	if req.Head != nil {
		in.head = *req.Head
	}
	if in.totalTracks <= 0 {
		in.totalTracks = s.config.TotalTracks
	}
	if req.Direction != "" {
		dir, err := model.ParseDirection(req.Direction)
		if err != nil {
			return in, err
		}
		in.direction = dir
	}
	if err := requests.ValidateHead(in.head, in.totalTracks); err != nil {
		return in, err
	}
	set, err := requests.FromTracks(in.totalTracks, req.Requests)
	if err != nil {
		return in, err
	}
	in.requests = set.Tracks()
	return in, nil
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.ScheduleRequest
	if !decodeJSON(w, r, reqID, &req) {
		return
	}
	alg, err := model.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	in, err := s.validateSchedule(req)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}

	res, err := engine.Schedule(alg, in.requests, in.head, in.totalTracks, in.direction)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}
	metrics.ObserveSequence(alg, res.Metrics)
	respondOK(w, reqID, res)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.ScheduleRequest
	if !decodeJSON(w, r, reqID, &req) {
		return
	}
	in, err := s.validateSchedule(req)
	if err != nil {
		respondDomainError(w, reqID, err)
		return
	}

	reports := engine.Compare(in.requests, in.head, in.totalTracks, in.direction)
	for _, rep := range reports {
		metrics.ObserveSequence(rep.Algorithm, rep.Metrics)
	}
	respondOK(w, reqID, reports)
}
