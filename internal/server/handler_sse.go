package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// handleSSEWorkspace streams workspace snapshots via Server-Sent Events.
// The stream ends with a "complete" event once a run that was observed
// in progress finishes.
// GET /api/v1/sse/workspace
func (s *Server) handleSSEWorkspace(w http.ResponseWriter, r *http.Request) {
	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	state, changed := s.workspace.Watch()
	if err := sendSSEEvent(w, flusher, "init", state); err != nil {
		s.logger.Debug("sse client disconnected", "error", err)
		return
	}
	running := state.Simulating

	ticker := time.NewTicker(s.sseHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		case <-changed:
			state, changed = s.workspace.Watch()
			if err := sendSSEEvent(w, flusher, "update", state); err != nil {
				s.logger.Debug("sse client disconnected", "error", err)
				return
			}
			if running && !state.Simulating {
				sendSSEEvent(w, flusher, "complete", state)
				return
			}
			running = state.Simulating
		}
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, jsonData)
	if err != nil {
		return err
	}

	flusher.Flush()
	return nil
}
