package engine

import "github.com/me/disksched/pkg/model"

// Compare runs every algorithm over the same input and reports the full
// sequence and final metrics of each, in model.Algorithms order.
func Compare(requests []model.Track, head model.Track, totalTracks int, dir model.Direction) []model.Report {
	head = clampHead(head, totalTracks)

	reports := make([]model.Report, 0, len(model.Algorithms()))
	for _, alg := range model.Algorithms() {
		seq, err := ComputeSequence(alg, requests, head, totalTracks, dir)
		if err != nil {
			// Algorithms only yields known keys.
			panic(err)
		}
		reports = append(reports, model.Report{
			Algorithm: alg,
			Label:     alg.Label(),
			Sequence:  seq,
			Metrics:   ComputeMetrics(seq, head, len(seq)),
		})
	}
	return reports
}

// Schedule computes the sequence for alg together with its per-step trace.
func Schedule(alg model.Algorithm, requests []model.Track, head model.Track, totalTracks int, dir model.Direction) (model.ScheduleResult, error) {
	head = clampHead(head, totalTracks)
	seq, err := ComputeSequence(alg, requests, head, totalTracks, dir)
	if err != nil {
		return model.ScheduleResult{}, err
	}
	return model.ScheduleResult{
		Algorithm: alg,
		Sequence:  seq,
		Steps:     Trace(seq, head),
		Metrics:   ComputeMetrics(seq, head, len(seq)),
	}, nil
}
