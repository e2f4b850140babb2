// Package scenario reads request queues and disk settings from YAML files
// so runs can be reproduced from the command line.
package scenario

import (
	"fmt"
	"os"

	"github.com/me/disksched/internal/requests"
	"github.com/me/disksched/pkg/model"
	"gopkg.in/yaml.v3"
)

// Scenario is a validated request queue plus the disk it runs on.
type Scenario struct {
	Name        string
	TotalTracks int
	Head        model.Track
	Direction   model.Direction
	// Algorithm is empty when the file does not pick one.
	Algorithm model.Algorithm
	Requests  []model.Track
}

type document struct {
	Name        string `yaml:"name"`
	TotalTracks int    `yaml:"total_tracks"`
	Head        *int   `yaml:"head"`
	Direction   string `yaml:"direction"`
	Algorithm   string `yaml:"algorithm"`
	Requests    []int  `yaml:"requests"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario document. Requests go through the
// same checks as interactive input: duplicates and out-of-range tracks are
// rejected.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	sc := &Scenario{
		Name:        doc.Name,
		TotalTracks: doc.TotalTracks,
		Head:        model.DefaultHead,
		Direction:   model.DirectionRight,
	}
	if sc.TotalTracks <= 0 {
		sc.TotalTracks = model.DefaultTotalTracks
	}

	if doc.Head != nil {
		sc.Head = model.Track(*doc.Head)
	}
	if err := requests.ValidateHead(sc.Head, sc.TotalTracks); err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}

	if doc.Direction != "" {
		dir, err := model.ParseDirection(doc.Direction)
		if err != nil {
			return nil, err
		}
		sc.Direction = dir
	}
	if doc.Algorithm != "" {
		alg, err := model.ParseAlgorithm(doc.Algorithm)
		if err != nil {
			return nil, err
		}
		sc.Algorithm = alg
	}

	set := requests.New(sc.TotalTracks)
	for i, r := range doc.Requests {
		if err := set.Add(model.Track(r)); err != nil {
			return nil, fmt.Errorf("requests[%d]: %w", i, err)
		}
	}
	sc.Requests = set.Tracks()
	return sc, nil
}

// AlgorithmOr returns the scenario's algorithm, or def when none was set.
func (s *Scenario) AlgorithmOr(def model.Algorithm) model.Algorithm {
	if s.Algorithm == "" {
		return def
	}
	return s.Algorithm
}
