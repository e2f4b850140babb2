// Package requests holds the pending track queue a workspace feeds into the
// scheduling engine, along with the input validation applied before a track
// is accepted.
package requests

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/me/disksched/pkg/model"
)

// Set is an ordered set of unique, in-range tracks. Insertion order is kept
// because FCFS services requests in arrival order.
type Set struct {
	totalTracks int
	tracks      []model.Track
}

// New creates an empty Set for a disk of totalTracks cylinders.
// A non-positive totalTracks selects model.DefaultTotalTracks.
func New(totalTracks int) *Set {
	if totalTracks <= 0 {
		totalTracks = model.DefaultTotalTracks
	}
	return &Set{totalTracks: totalTracks}
}

// FromTracks builds a Set from tracks, failing on the first rejected value.
func FromTracks(totalTracks int, tracks []model.Track) (*Set, error) {
	s := New(totalTracks)
	for _, t := range tracks {
		if err := s.Add(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// TotalTracks returns the disk size the set validates against.
func (s *Set) TotalTracks() int {
	return s.totalTracks
}

// Add appends t. Out-of-range and duplicate tracks are rejected with a
// *model.ValidationError.
func (s *Set) Add(t model.Track) error {
	if !t.InRange(s.totalTracks) {
		return outOfRange(strconv.Itoa(int(t)), s.totalTracks)
	}
	if s.Contains(t) {
		return &model.ValidationError{
			Field:   "track",
			Value:   strconv.Itoa(int(t)),
			Message: fmt.Sprintf("Track %d is already in the request queue", t),
			Err:     model.ErrDuplicateTrack,
		}
	}
	s.tracks = append(s.tracks, t)
	return nil
}

// Remove deletes t and reports whether it was present.
func (s *Set) Remove(t model.Track) bool {
	i := slices.Index(s.tracks, t)
	if i < 0 {
		return false
	}
	s.tracks = slices.Delete(s.tracks, i, i+1)
	return true
}

// Clear removes every track.
func (s *Set) Clear() {
	s.tracks = nil
}

// Contains reports whether t is pending.
func (s *Set) Contains(t model.Track) bool {
	return slices.Contains(s.tracks, t)
}

// Len returns the number of pending tracks.
func (s *Set) Len() int {
	return len(s.tracks)
}

// Tracks returns a copy of the pending tracks in insertion order.
func (s *Set) Tracks() []model.Track {
	return slices.Clone(s.tracks)
}

// ParseTrack converts user input into a Track, rejecting anything that is not
// an integer in [0, totalTracks).
func ParseTrack(input string, totalTracks int) (model.Track, error) {
	if totalTracks <= 0 {
		totalTracks = model.DefaultTotalTracks
	}
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, &model.ValidationError{
			Field:   "track",
			Value:   input,
			Message: rangeMessage(totalTracks),
			Err:     model.ErrInvalidTrack,
		}
	}
	t := model.Track(n)
	if !t.InRange(totalTracks) {
		return 0, outOfRange(input, totalTracks)
	}
	return t, nil
}

// ParseTrackList parses a comma or whitespace separated list of tracks.
func ParseTrackList(input string, totalTracks int) ([]model.Track, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	tracks := make([]model.Track, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTrack(f, totalTracks)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// ValidateHead checks that a head position lies on the disk.
func ValidateHead(t model.Track, totalTracks int) error {
	if !t.InRange(totalTracks) {
		return outOfRange(strconv.Itoa(int(t)), totalTracks)
	}
	return nil
}

func outOfRange(value string, totalTracks int) error {
	return &model.ValidationError{
		Field:   "track",
		Value:   value,
		Message: rangeMessage(totalTracks),
		Err:     model.ErrTrackOutOfRange,
	}
}

func rangeMessage(totalTracks int) string {
	return fmt.Sprintf("Please enter a valid track number (0-%d)", totalTracks-1)
}
