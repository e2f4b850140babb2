package requests

import (
	"errors"
	"slices"
	"testing"

	"github.com/me/disksched/pkg/model"
)

func TestSet_AddKeepsInsertionOrder(t *testing.T) {
	s := New(0)
	for _, tr := range []model.Track{98, 183, 37} {
		if err := s.Add(tr); err != nil {
			t.Fatalf("Add(%d): %v", tr, err)
		}
	}
	if got := s.Tracks(); !slices.Equal(got, []model.Track{98, 183, 37}) {
		t.Errorf("Tracks() = %v", got)
	}
	if s.TotalTracks() != model.DefaultTotalTracks {
		t.Errorf("TotalTracks() = %d", s.TotalTracks())
	}
}

func TestSet_AddRejects(t *testing.T) {
	s := New(200)
	if err := s.Add(10); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		track model.Track
		want  error
	}{
		{"duplicate", 10, model.ErrDuplicateTrack},
		{"negative", -1, model.ErrTrackOutOfRange},
		{"upper bound", 200, model.ErrTrackOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Add(tt.track)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var vErr *model.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error %T is not a ValidationError", err)
			}
		})
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSet_DuplicateMessage(t *testing.T) {
	s := New(200)
	s.Add(42)
	err := s.Add(42)
	if err == nil || err.Error() != "Track 42 is already in the request queue" {
		t.Errorf("error = %v", err)
	}
}

func TestSet_RemoveAndClear(t *testing.T) {
	s, err := FromTracks(200, []model.Track{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Remove(2) {
		t.Error("Remove(2) = false")
	}
	if s.Remove(2) {
		t.Error("second Remove(2) = true")
	}
	if got := s.Tracks(); !slices.Equal(got, []model.Track{1, 3}) {
		t.Errorf("Tracks() = %v", got)
	}
	s.Clear()
	if s.Len() != 0 || s.Contains(1) {
		t.Errorf("Clear left %v", s.Tracks())
	}
}

func TestSet_TracksIsCopy(t *testing.T) {
	s, _ := FromTracks(200, []model.Track{1, 2})
	got := s.Tracks()
	got[0] = 99
	if s.Contains(99) {
		t.Error("Tracks() exposes internal slice")
	}
}

func TestFromTracks_Rejects(t *testing.T) {
	if _, err := FromTracks(200, []model.Track{1, 1}); !errors.Is(err, model.ErrDuplicateTrack) {
		t.Errorf("error = %v", err)
	}
}

func TestParseTrack(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Track
		wantErr error
	}{
		{"0", 0, nil},
		{" 199 ", 199, nil},
		{"53", 53, nil},
		{"200", 0, model.ErrTrackOutOfRange},
		{"-4", 0, model.ErrTrackOutOfRange},
		{"12.5", 0, model.ErrInvalidTrack},
		{"abc", 0, model.ErrInvalidTrack},
		{"", 0, model.ErrInvalidTrack},
	}
	for _, tt := range tests {
		got, err := ParseTrack(tt.input, 200)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseTrack(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTrack(%q) = %d, %v", tt.input, got, err)
		}
	}
}

func TestParseTrack_Message(t *testing.T) {
	_, err := ParseTrack("x", 200)
	if err == nil || err.Error() != "Please enter a valid track number (0-199)" {
		t.Errorf("error = %v", err)
	}
	_, err = ParseTrack("150", 100)
	if err == nil || err.Error() != "Please enter a valid track number (0-99)" {
		t.Errorf("error = %v", err)
	}
}

func TestParseTrackList(t *testing.T) {
	got, err := ParseTrackList("98, 183,37 122\t14", 200)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []model.Track{98, 183, 37, 122, 14}) {
		t.Errorf("got %v", got)
	}
	if _, err := ParseTrackList("1,x", 200); !errors.Is(err, model.ErrInvalidTrack) {
		t.Errorf("error = %v", err)
	}
	if got, err := ParseTrackList("", 200); err != nil || len(got) != 0 {
		t.Errorf("empty = %v, %v", got, err)
	}
}

func TestValidateHead(t *testing.T) {
	if err := ValidateHead(0, 200); err != nil {
		t.Error(err)
	}
	if err := ValidateHead(199, 200); err != nil {
		t.Error(err)
	}
	if err := ValidateHead(200, 200); !errors.Is(err, model.ErrTrackOutOfRange) {
		t.Errorf("error = %v", err)
	}
}
