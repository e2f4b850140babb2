package cli

import (
	"fmt"

	"github.com/me/disksched/internal/requests"
	"github.com/me/disksched/internal/scenario"
	"github.com/me/disksched/pkg/model"
	"github.com/spf13/cobra"
)

// scenarioFlags are the inputs shared by the local commands. Explicit flags
// override values read from --file.
type scenarioFlags struct {
	file        string
	requests    string
	head        int
	direction   string
	totalTracks int
	algorithm   string
}

func (f *scenarioFlags) register(cmd *cobra.Command, withAlgorithm bool) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Scenario YAML file")
	cmd.Flags().StringVarP(&f.requests, "requests", "r", "", "Comma-separated track requests, e.g. 98,183,37")
	cmd.Flags().IntVar(&f.head, "head", int(model.DefaultHead), "Initial head position")
	cmd.Flags().StringVar(&f.direction, "direction", string(model.DirectionRight), "Initial SCAN direction (left, right)")
	cmd.Flags().IntVar(&f.totalTracks, "total-tracks", model.DefaultTotalTracks, "Number of tracks on the disk")
	if withAlgorithm {
		cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "Algorithm (fcfs, sstf, scan, cscan)")
	}
}

// resolve builds a validated scenario from --file and the explicit flags.
func (f *scenarioFlags) resolve(cmd *cobra.Command) (*scenario.Scenario, error) {
	sc := &scenario.Scenario{
		TotalTracks: f.totalTracks,
		Head:        model.Track(f.head),
		Direction:   model.DirectionRight,
	}
	if f.file != "" {
		loaded, err := scenario.Load(f.file)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded scenario", "path", f.file, "name", loaded.Name, "requests", len(loaded.Requests))
		sc = loaded
	}

	changed := cmd.Flags().Changed
	if f.file == "" || changed("total-tracks") {
		sc.TotalTracks = f.totalTracks
	}
	if f.file == "" || changed("head") {
		sc.Head = model.Track(f.head)
	}
	if f.file == "" || changed("direction") {
		dir, err := model.ParseDirection(f.direction)
		if err != nil {
			return nil, err
		}
		sc.Direction = dir
	}
	if f.algorithm != "" {
		alg, err := model.ParseAlgorithm(f.algorithm)
		if err != nil {
			return nil, err
		}
		sc.Algorithm = alg
	}

	if err := requests.ValidateHead(sc.Head, sc.TotalTracks); err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	if f.file == "" || changed("requests") {
		tracks, err := requests.ParseTrackList(f.requests, sc.TotalTracks)
		if err != nil {
			return nil, err
		}
		sc.Requests = tracks
	}
	set, err := requests.FromTracks(sc.TotalTracks, sc.Requests)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: use --requests or --file", model.ErrEmptyRequestSet)
	}
	sc.Requests = set.Tracks()
	return sc, nil
}
