package model

import (
	"fmt"
	"strings"
)

// DefaultTotalTracks is the number of cylinders on the simulated disk (0-199).
const DefaultTotalTracks = 200

// DefaultHead is the head position a fresh workspace starts at.
const DefaultHead Track = 50

// Track is a disk cylinder address in [0, totalTracks).
type Track int

// Direction is the initial sweep direction used by SCAN.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection converts a direction key to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionLeft:
		return DirectionLeft, nil
	case DirectionRight:
		return DirectionRight, nil
	}
	return "", &ValidationError{
		Field:   "direction",
		Value:   s,
		Message: fmt.Sprintf("invalid direction %q (want left or right)", s),
		Err:     ErrInvalidDirection,
	}
}

// Algorithm selects the sequencing policy.
type Algorithm string

const (
	AlgorithmFCFS  Algorithm = "fcfs"
	AlgorithmSSTF  Algorithm = "sstf"
	AlgorithmSCAN  Algorithm = "scan"
	AlgorithmCSCAN Algorithm = "cscan"
)

var algorithmInfo = map[Algorithm]struct {
	label       string
	description string
}{
	AlgorithmFCFS: {
		"FCFS",
		"First Come First Serve (FCFS) processes requests in the order they arrive, without any optimization.",
	},
	AlgorithmSSTF: {
		"SSTF",
		"Shortest Seek Time First (SSTF) selects the request with the minimum seek time from the current head position.",
	},
	AlgorithmSCAN: {
		"SCAN",
		"SCAN (Elevator) algorithm moves the head in one direction until it reaches the end, then reverses direction.",
	},
	AlgorithmCSCAN: {
		"C-SCAN",
		"C-SCAN (Circular SCAN) moves the head in one direction until the end, then jumps to the beginning.",
	},
}

// Algorithms returns every known algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSSTF, AlgorithmSCAN, AlgorithmCSCAN}
}

// ParseAlgorithm converts an algorithm key to an Algorithm.
// "c-scan" is accepted as an alias for cscan.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "c-scan" {
		key = string(AlgorithmCSCAN)
	}
	a := Algorithm(key)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
	}
	return a, nil
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// IsValid reports whether a is one of the four known algorithms.
func (a Algorithm) IsValid() bool {
	_, ok := algorithmInfo[a]
	return ok
}

// Label returns the display name, e.g. "C-SCAN".
func (a Algorithm) Label() string {
	if info, ok := algorithmInfo[a]; ok {
		return info.label
	}
	return strings.ToUpper(string(a))
}

// Description returns a one-sentence explanation of the policy.
func (a Algorithm) Description() string {
	return algorithmInfo[a].description
}

// InRange reports whether t lies in [0, totalTracks).
func (t Track) InRange(totalTracks int) bool {
	return t >= 0 && int(t) < totalTracks
}
