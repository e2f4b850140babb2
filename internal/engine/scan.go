package engine

import (
	"slices"

	"github.com/me/disksched/pkg/model"
)

// scan sweeps from head towards dir, servicing every request it passes, then
// reverses and services the rest. Only pending requests are emitted; the
// physical end of the disk is not. A request at head is serviced by the
// first sweep in either direction.
func scan(requests []model.Track, head model.Track, dir model.Direction) model.Sequence {
	sorted := sortedCopy(requests)
	seq := make(model.Sequence, 0, len(sorted))

	if dir == model.DirectionLeft {
		split := lowerBound(sorted, head+1) // first request > head
		seq = appendDescending(seq, sorted[:split])
		return append(seq, sorted[split:]...)
	}

	split := lowerBound(sorted, head) // first request >= head
	seq = append(seq, sorted[split:]...)
	return appendDescending(seq, sorted[:split])
}

// cscan sweeps upward from head, wraps to track 0 and continues upward.
func cscan(requests []model.Track, head model.Track) model.Sequence {
	sorted := sortedCopy(requests)
	split := lowerBound(sorted, head)

	seq := make(model.Sequence, 0, len(sorted))
	seq = append(seq, sorted[split:]...)
	return append(seq, sorted[:split]...)
}

func sortedCopy(requests []model.Track) []model.Track {
	sorted := slices.Clone(requests)
	slices.Sort(sorted)
	return sorted
}

// lowerBound returns the index of the first element >= t.
func lowerBound(sorted []model.Track, t model.Track) int {
	i, _ := slices.BinarySearch(sorted, t)
	return i
}

func appendDescending(seq model.Sequence, ascending []model.Track) model.Sequence {
	for i := len(ascending) - 1; i >= 0; i-- {
		seq = append(seq, ascending[i])
	}
	return seq
}
