package model

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"fcfs", AlgorithmFCFS},
		{"SSTF", AlgorithmSSTF},
		{" scan ", AlgorithmSCAN},
		{"cscan", AlgorithmCSCAN},
		{"C-SCAN", AlgorithmCSCAN},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseAlgorithm_Invalid(t *testing.T) {
	for _, input := range []string{"", "lifo", "look", "c_scan"} {
		_, err := ParseAlgorithm(input)
		if !errors.Is(err, ErrInvalidAlgorithm) {
			t.Errorf("ParseAlgorithm(%q) error = %v, want ErrInvalidAlgorithm", input, err)
		}
	}
}

func TestAlgorithms(t *testing.T) {
	algs := Algorithms()
	if len(algs) != 4 {
		t.Fatalf("len = %d, want 4", len(algs))
	}
	labels := []string{"FCFS", "SSTF", "SCAN", "C-SCAN"}
	for i, a := range algs {
		if !a.IsValid() {
			t.Errorf("%q not valid", a)
		}
		if a.Label() != labels[i] {
			t.Errorf("Label() = %q, want %q", a.Label(), labels[i])
		}
		if a.Description() == "" {
			t.Errorf("%q has no description", a)
		}
	}
	if Algorithm("look").IsValid() {
		t.Error("look should not be valid")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("LEFT"); err != nil || d != DirectionLeft {
		t.Errorf("ParseDirection(LEFT) = %q, %v", d, err)
	}
	if d, err := ParseDirection("right"); err != nil || d != DirectionRight {
		t.Errorf("ParseDirection(right) = %q, %v", d, err)
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("expected error for up")
	}
}

func TestTrack_InRange(t *testing.T) {
	tests := []struct {
		track Track
		want  bool
	}{
		{-1, false},
		{0, true},
		{199, true},
		{200, false},
	}
	for _, tt := range tests {
		if got := tt.track.InRange(DefaultTotalTracks); got != tt.want {
			t.Errorf("Track(%d).InRange(200) = %v, want %v", tt.track, got, tt.want)
		}
	}
}

func TestSequence_Clone(t *testing.T) {
	seq := Sequence{1, 2, 3}
	c := seq.Clone()
	c[0] = 99
	if seq[0] != 1 {
		t.Error("Clone shares backing array")
	}
	if Sequence(nil).Clone() != nil {
		t.Error("Clone(nil) should be nil")
	}
}
