package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "disksched API",
		Version:     "v1",
		Description: "Disk scheduling simulator: FCFS, SSTF, SCAN and C-SCAN service sequences with seek metrics",
		Endpoints: []endpointInfo{
			{"/api/v1/algorithms", []string{"GET"}, "Supported scheduling algorithms"},
			{"/api/v1/schedule", []string{"POST"}, "Compute a service sequence and per-step metrics"},
			{"/api/v1/compare", []string{"POST"}, "Run every algorithm over the same request set"},
			{"/api/v1/workspace", []string{"GET"}, "Current workspace state"},
			{"/api/v1/workspace/requests", []string{"POST", "DELETE"}, "Queue a track or clear the queue"},
			{"/api/v1/workspace/requests/{track}", []string{"DELETE"}, "Remove a queued track"},
			{"/api/v1/workspace/head", []string{"PUT"}, "Move the head"},
			{"/api/v1/workspace/algorithm", []string{"PUT"}, "Select the scheduling algorithm"},
			{"/api/v1/workspace/direction", []string{"PUT"}, "Select the initial SCAN direction"},
			{"/api/v1/workspace/simulation", []string{"POST"}, "Start an animated run"},
			{"/api/v1/workspace/simulation/stop", []string{"PUT"}, "Stop the active run"},
			{"/api/v1/workspace/notices", []string{"GET"}, "Notification log"},
			{"/api/v1/sse/workspace", []string{"GET"}, "Server-Sent Events stream of workspace state"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
			{"/metrics", []string{"GET"}, "Prometheus metrics"},
		},
	})
}
