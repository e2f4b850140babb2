// Package engine computes disk-head service orders and the seek metrics
// derived from them. Every function is pure: inputs are copied, never
// mutated, and no state survives between calls.
package engine

import (
	"fmt"

	"github.com/me/disksched/pkg/model"
)

// ComputeSequence returns the order in which alg services requests when the
// head starts at head on a disk of totalTracks cylinders. dir is consulted
// only by SCAN. Requests outside [0, totalTracks) are a caller contract
// violation and are not rejected here.
func ComputeSequence(alg model.Algorithm, requests []model.Track, head model.Track, totalTracks int, dir model.Direction) (model.Sequence, error) {
	head = clampHead(head, totalTracks)

	switch alg {
	case model.AlgorithmFCFS:
		return fcfs(requests), nil
	case model.AlgorithmSSTF:
		return sstf(requests, head), nil
	case model.AlgorithmSCAN:
		return scan(requests, head, dir), nil
	case model.AlgorithmCSCAN:
		return cscan(requests, head), nil
	}
	return nil, fmt.Errorf("%w: %q", model.ErrInvalidAlgorithm, string(alg))
}

// clampHead keeps head on the disk. A non-positive totalTracks leaves it as is.
func clampHead(head model.Track, totalTracks int) model.Track {
	if totalTracks <= 0 {
		return head
	}
	if head < 0 {
		return 0
	}
	if int(head) >= totalTracks {
		return model.Track(totalTracks - 1)
	}
	return head
}

// fcfs services requests in arrival order.
func fcfs(requests []model.Track) model.Sequence {
	seq := make(model.Sequence, len(requests))
	copy(seq, requests)
	return seq
}
