package model

import "time"

// Response is the standard API response envelope.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Error     *APIError `json:"error"`
}

// ScheduleRequest is the body of a stateless scheduling call.
type ScheduleRequest struct {
	Algorithm   string  `json:"algorithm"`
	Requests    []Track `json:"requests"`
	Head        *Track  `json:"head,omitempty"` // nil means the configured initial head
	Direction   string  `json:"direction,omitempty"`
	TotalTracks int     `json:"total_tracks,omitempty"`
}

// ScheduleResult is the response to a scheduling call.
type ScheduleResult struct {
	Algorithm Algorithm   `json:"algorithm"`
	Sequence  Sequence    `json:"sequence"`
	Steps     []Step      `json:"steps"`
	Metrics   SeekMetrics `json:"metrics"`
}
