// Package shell is the stateful collaborator that drives the scheduling
// engine: it owns the pending request queue, the head position and the
// selected policy, and animates runs through a simulation.Runner.
package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/me/disksched/internal/engine"
	"github.com/me/disksched/internal/metrics"
	"github.com/me/disksched/internal/requests"
	"github.com/me/disksched/internal/simulation"
	"github.com/me/disksched/pkg/model"
)

// maxNotices bounds the notification log.
const maxNotices = 50

// Options configures a new Workspace.
type Options struct {
	TotalTracks  int
	InitialHead  model.Track
	Algorithm    model.Algorithm
	Direction    model.Direction
	StepInterval time.Duration
}

// DefaultOptions mirrors the initial state of the teaching UI.
func DefaultOptions() Options {
	return Options{
		TotalTracks:  model.DefaultTotalTracks,
		InitialHead:  model.DefaultHead,
		Algorithm:    model.AlgorithmFCFS,
		Direction:    model.DirectionRight,
		StepInterval: simulation.DefaultConfig().StepInterval,
	}
}

// State is a point-in-time copy of the workspace.
type State struct {
	ID          string            `json:"id"`
	TotalTracks int               `json:"total_tracks"`
	Requests    []model.Track     `json:"requests"`
	Head        model.Track       `json:"head"`
	Algorithm   model.Algorithm   `json:"algorithm"`
	Description string            `json:"description"`
	Direction   model.Direction   `json:"direction"`
	Simulating  bool              `json:"simulating"`
	RunID       string            `json:"run_id,omitempty"`
	Sequence    model.Sequence    `json:"sequence,omitempty"`
	Applied     int               `json:"applied"`
	Metrics     model.SeekMetrics `json:"metrics"`
}

// HeadPercent is the head marker offset along the track bar, 0-100.
func (s State) HeadPercent() float64 {
	if s.TotalTracks <= 1 {
		return 0
	}
	return float64(s.Head) / float64(s.TotalTracks-1) * 100
}

// Workspace holds one user's request queue and simulation state. All methods
// are safe for concurrent use.
type Workspace struct {
	id     string
	runner *simulation.Runner
	logger *slog.Logger

	mu        sync.Mutex
	requests  *requests.Set
	head      model.Track
	startHead model.Track
	algorithm model.Algorithm
	direction model.Direction
	runID     string
	sequence  model.Sequence
	applied   int
	metrics   model.SeekMetrics
	notices   []model.Notice
	changed   chan struct{}
}

// New creates a Workspace. Zero-valued options fall back to DefaultOptions.
func New(opts Options, logger *slog.Logger) *Workspace {
	def := DefaultOptions()
	if opts.TotalTracks <= 0 {
		opts.TotalTracks = def.TotalTracks
	}
	if !opts.Algorithm.IsValid() {
		opts.Algorithm = def.Algorithm
	}
	if opts.Direction == "" {
		opts.Direction = def.Direction
	}
	if !opts.InitialHead.InRange(opts.TotalTracks) {
		opts.InitialHead = 0
	}

	id := "ws_" + uuid.New().String()
	logger = logger.With("component", "workspace", "workspace_id", id)
	return &Workspace{
		id:        id,
		runner:    simulation.NewRunner(simulation.Config{StepInterval: opts.StepInterval}, logger),
		logger:    logger,
		requests:  requests.New(opts.TotalTracks),
		head:      opts.InitialHead,
		startHead: opts.InitialHead,
		algorithm: opts.Algorithm,
		direction: opts.Direction,
		changed:   make(chan struct{}),
	}
}

// ID returns the workspace identifier.
func (w *Workspace) ID() string {
	return w.id
}

// AddRequest queues track t.
func (w *Workspace) AddRequest(t model.Track) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkIdle(); err != nil {
		return err
	}
	if err := w.requests.Add(t); err != nil {
		level := model.NoticeError
		if isDuplicate(err) {
			level = model.NoticeWarning
		}
		w.notify(level, err.Error())
		return err
	}
	w.notify(model.NoticeSuccess, fmt.Sprintf("Added request for track %d", t))
	w.touch()
	return nil
}

// AddRequestInput parses raw user input and queues the resulting track.
func (w *Workspace) AddRequestInput(input string) (model.Track, error) {
	t, err := requests.ParseTrack(input, w.totalTracks())
	if err != nil {
		w.mu.Lock()
		w.notify(model.NoticeError, err.Error())
		w.mu.Unlock()
		return 0, err
	}
	return t, w.AddRequest(t)
}

// RemoveRequest drops track t from the queue.
func (w *Workspace) RemoveRequest(t model.Track) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkIdle(); err != nil {
		return err
	}
	if !w.requests.Remove(t) {
		return model.NewNotFoundError("Request", fmt.Sprint(t))
	}
	w.notify(model.NoticeInfo, fmt.Sprintf("Removed request for track %d", t))
	w.touch()
	return nil
}

// ClearAll empties the queue, moves the head back to its initial position
// and resets the last run's sequence and metrics.
func (w *Workspace) ClearAll() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkIdle(); err != nil {
		return err
	}
	w.requests.Clear()
	w.head = w.startHead
	w.sequence = nil
	w.applied = 0
	w.metrics = model.SeekMetrics{}
	w.runID = ""
	w.notify(model.NoticeInfo, "All requests cleared")
	w.touch()
	return nil
}

// SetHead moves the head to t.
func (w *Workspace) SetHead(t model.Track) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkIdle(); err != nil {
		return err
	}
	if err := requests.ValidateHead(t, w.requests.TotalTracks()); err != nil {
		w.notify(model.NoticeError, err.Error())
		return err
	}
	w.head = t
	w.touch()
	return nil
}

// SelectAlgorithm changes the policy used by the next run.
func (w *Workspace) SelectAlgorithm(alg model.Algorithm) error {
	if !alg.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidAlgorithm, string(alg))
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkIdle(); err != nil {
		return err
	}
	w.algorithm = alg
	w.touch()
	return nil
}

// SetDirection changes the initial SCAN sweep direction.
func (w *Workspace) SetDirection(dir model.Direction) error {
	dir, err := model.ParseDirection(string(dir))
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkIdle(); err != nil {
		return err
	}
	w.direction = dir
	w.touch()
	return nil
}

// Start computes the service sequence for the pending requests and animates
// it. Each applied step moves the head, removes the serviced request and
// updates the running metrics. Start returns once the run has begun.
func (w *Workspace) Start(ctx context.Context) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.requests.Len() == 0 {
		w.notify(model.NoticeError, "Please add some disk requests first")
		return State{}, model.ErrEmptyRequestSet
	}
	if w.runner.Busy() {
		return State{}, model.ErrSimulationBusy
	}

	seq, err := engine.ComputeSequence(w.algorithm, w.requests.Tracks(), w.head, w.requests.TotalTracks(), w.direction)
	if err != nil {
		return State{}, err
	}
	metrics.ObserveSequence(w.algorithm, engine.ComputeMetrics(seq, w.head, len(seq)))

	runID, err := w.runner.Start(ctx, seq, w.head, w.applyStep, w.runDone)
	if err != nil {
		return State{}, err
	}
	w.runID = runID
	w.sequence = seq
	w.applied = 0
	w.metrics = model.SeekMetrics{}
	w.logger.Info("simulation requested", "run_id", runID, "algorithm", w.algorithm, "requests", len(seq))
	w.touch()
	return w.snapshotLocked(), nil
}

// Stop halts the active run. Requests not yet serviced stay queued and the
// metrics of applied steps are kept. It reports whether a run was active.
func (w *Workspace) Stop() bool {
	return w.runner.Stop()
}

// Busy reports whether a run is active.
func (w *Workspace) Busy() bool {
	return w.runner.Busy()
}

// Snapshot returns a copy of the current state.
func (w *Workspace) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Watch returns the current state together with a channel that is closed on
// the next change.
func (w *Workspace) Watch() (State, <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked(), w.changed
}

// Notices returns the notification log, oldest first.
func (w *Workspace) Notices() []model.Notice {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]model.Notice, len(w.notices))
	copy(out, w.notices)
	return out
}

func (w *Workspace) applyStep(step model.Step) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.head = step.To
	w.requests.Remove(step.To)
	w.applied = step.Index + 1
	w.metrics = step.Metrics
	w.touch()
}

func (w *Workspace) runDone(res simulation.Result, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// A newer run may have started between release and this callback.
	if res.RunID != w.runID {
		w.logger.Debug("ignoring stale run completion", "run_id", res.RunID, "current_run_id", w.runID)
		return
	}
	switch {
	case err != nil:
		w.logger.Warn("simulation aborted", "run_id", res.RunID, "error", err)
		w.notify(model.NoticeWarning, "Simulation aborted")
	case res.Stopped:
		w.notify(model.NoticeInfo, "Simulation stopped")
	default:
		w.notify(model.NoticeSuccess, "Simulation completed!")
	}
	w.touch()
}

func (w *Workspace) snapshotLocked() State {
	return State{
		ID:          w.id,
		TotalTracks: w.requests.TotalTracks(),
		Requests:    w.requests.Tracks(),
		Head:        w.head,
		Algorithm:   w.algorithm,
		Description: w.algorithm.Description(),
		Direction:   w.direction,
		Simulating:  w.runner.Busy(),
		RunID:       w.runID,
		Sequence:    w.sequence.Clone(),
		Applied:     w.applied,
		Metrics:     w.metrics,
	}
}

func (w *Workspace) totalTracks() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.requests.TotalTracks()
}

// checkIdle rejects mutations while a run is active.
func (w *Workspace) checkIdle() error {
	if w.runner.Busy() {
		return model.ErrSimulationBusy
	}
	return nil
}

func (w *Workspace) notify(level model.NoticeLevel, msg string) {
	w.notices = append(w.notices, model.Notice{Level: level, Message: msg, Time: time.Now().UTC()})
	if len(w.notices) > maxNotices {
		w.notices = w.notices[len(w.notices)-maxNotices:]
	}
}

// touch wakes every Watch caller.
func (w *Workspace) touch() {
	close(w.changed)
	w.changed = make(chan struct{})
}

func isDuplicate(err error) bool {
	return errors.Is(err, model.ErrDuplicateTrack)
}
