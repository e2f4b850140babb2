package engine

import "github.com/me/disksched/pkg/model"

// ComputeMetrics returns the seek metrics after the first prefixLength
// entries of seq have been serviced, starting from initialHead.
// prefixLength is clamped to [0, len(seq)].
func ComputeMetrics(seq model.Sequence, initialHead model.Track, prefixLength int) model.SeekMetrics {
	prefixLength = max(0, min(prefixLength, len(seq)))

	total := 0
	prev := initialHead
	for _, t := range seq[:prefixLength] {
		total += distance(t, prev)
		prev = t
	}
	return metricsFor(prefixLength, total)
}

// Trace returns one Step per entry of seq, each carrying the running metrics
// for the prefix ending at that step.
func Trace(seq model.Sequence, initialHead model.Track) []model.Step {
	steps := make([]model.Step, 0, len(seq))
	total := 0
	prev := initialHead
	for i, t := range seq {
		seek := distance(t, prev)
		total += seek
		steps = append(steps, model.Step{
			Index:   i,
			From:    prev,
			To:      t,
			Seek:    seek,
			Metrics: metricsFor(i+1, total),
		})
		prev = t
	}
	return steps
}

func metricsFor(steps, total int) model.SeekMetrics {
	m := model.SeekMetrics{Steps: steps, TotalSeekTime: total}
	if steps > 0 {
		m.AverageSeekTime = float64(total) / float64(steps)
	}
	if total > 0 {
		m.Throughput = float64(steps) / (float64(total) / 1000)
	}
	return m
}
