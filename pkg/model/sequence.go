package model

// Sequence is the order in which requests are serviced.
type Sequence []Track

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// SeekMetrics summarizes head movement over a prefix of a Sequence.
// AverageSeekTime and Throughput are 0 when they would divide by zero.
type SeekMetrics struct {
	Steps           int     `json:"steps"`
	TotalSeekTime   int     `json:"total_seek_time"`
	AverageSeekTime float64 `json:"average_seek_time"`
	Throughput      float64 `json:"throughput"`
}

// Step is a single head movement within an animation.
type Step struct {
	Index   int         `json:"index"`
	From    Track       `json:"from"`
	To      Track       `json:"to"`
	Seek    int         `json:"seek"`
	Metrics SeekMetrics `json:"metrics"`
}

// Report is the outcome of running one algorithm over a request set.
type Report struct {
	Algorithm Algorithm   `json:"algorithm"`
	Label     string      `json:"label"`
	Sequence  Sequence    `json:"sequence"`
	Metrics   SeekMetrics `json:"metrics"`
}
