package engine

import "github.com/me/disksched/pkg/model"

// sstf repeatedly services the closest pending request. On equal distance the
// earliest request in the remaining list wins; the list keeps arrival order
// with served entries removed.
func sstf(requests []model.Track, head model.Track) model.Sequence {
	remaining := make([]model.Track, len(requests))
	copy(remaining, requests)

	seq := make(model.Sequence, 0, len(requests))
	current := head
	for len(remaining) > 0 {
		best := 0
		bestDist := distance(remaining[0], current)
		for i := 1; i < len(remaining); i++ {
			if d := distance(remaining[i], current); d < bestDist {
				best, bestDist = i, d
			}
		}
		current = remaining[best]
		seq = append(seq, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return seq
}

func distance(a, b model.Track) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
