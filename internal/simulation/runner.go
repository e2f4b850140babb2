// Package simulation animates a precomputed service sequence one head
// movement at a time. Only one run may be active per Runner.
package simulation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/me/disksched/internal/engine"
	"github.com/me/disksched/internal/metrics"
	"github.com/me/disksched/pkg/model"
)

// Config holds animation configuration.
type Config struct {
	StepInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{StepInterval: time.Second}
}

// Result describes how a run ended.
type Result struct {
	RunID     string       `json:"run_id"`
	Completed bool         `json:"completed"`
	Stopped   bool         `json:"stopped"`
	Steps     []model.Step `json:"steps"`
}

// StepFunc receives each applied step. It must not call Runner.Stop.
type StepFunc func(step model.Step)

// DoneFunc receives the outcome of an asynchronous run. The runner is no
// longer busy when it is called.
type DoneFunc func(res Result, err error)

type run struct {
	id       string
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// Runner steps through sequences on a fixed interval.
type Runner struct {
	config Config
	logger *slog.Logger

	mu      sync.Mutex
	current *run
}

// NewRunner creates a Runner. A non-positive StepInterval applies steps
// back to back.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	return &Runner{
		config: cfg,
		logger: logger.With("component", "simulation"),
	}
}

// Busy reports whether a run is active.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current != nil
}

// Run animates seq starting from head and blocks until it completes, is
// stopped, or ctx is cancelled. A second concurrent call fails with
// model.ErrSimulationBusy.
func (r *Runner) Run(ctx context.Context, seq model.Sequence, head model.Track, onStep StepFunc) (Result, error) {
	rn, err := r.begin()
	if err != nil {
		return Result{}, err
	}
	defer close(rn.doneCh)
	defer r.release(rn)
	return r.loop(ctx, rn, seq, head, onStep)
}

// Start begins an asynchronous run. The busy check happens before Start
// returns; onDone is called once the run ends.
func (r *Runner) Start(ctx context.Context, seq model.Sequence, head model.Track, onStep StepFunc, onDone DoneFunc) (string, error) {
	rn, err := r.begin()
	if err != nil {
		return "", err
	}
	go func() {
		defer close(rn.doneCh)
		res, err := r.loop(ctx, rn, seq, head, onStep)
		r.release(rn)
		if onDone != nil {
			onDone(res, err)
		}
	}()
	return rn.id, nil
}

// Stop signals the active run to discard its remaining steps and waits for
// it to exit, including its DoneFunc. It reports whether a run was active.
func (r *Runner) Stop() bool {
	r.mu.Lock()
	rn := r.current
	r.mu.Unlock()
	if rn == nil {
		return false
	}
	rn.stopOnce.Do(func() { close(rn.stopCh) })
	<-rn.doneCh
	return true
}

func (r *Runner) begin() (*run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		return nil, model.ErrSimulationBusy
	}
	r.current = &run{
		id:     "run_" + uuid.New().String(),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	return r.current, nil
}

func (r *Runner) release(rn *run) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == rn {
		r.current = nil
	}
}

// loop applies one step, then waits StepInterval before the next. The stop
// signal and ctx are checked before every step.
func (r *Runner) loop(ctx context.Context, rn *run, seq model.Sequence, head model.Track, onStep StepFunc) (Result, error) {
	steps := engine.Trace(seq, head)
	res := Result{RunID: rn.id, Steps: make([]model.Step, 0, len(steps))}
	r.logger.Info("simulation started", "run_id", rn.id, "steps", len(steps), "head", head)

	var tick <-chan time.Time
	if r.config.StepInterval > 0 {
		ticker := time.NewTicker(r.config.StepInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, step := range steps {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation stopping (context cancelled)", "run_id", rn.id, "applied", i)
			res.Stopped = true
			metrics.ObserveRun(true)
			return res, ctx.Err()
		case <-rn.stopCh:
			r.logger.Info("simulation stopping (stop called)", "run_id", rn.id, "applied", i)
			res.Stopped = true
			metrics.ObserveRun(true)
			return res, nil
		default:
		}

		if onStep != nil {
			onStep(step)
		}
		res.Steps = append(res.Steps, step)
		metrics.ObserveStep()
		r.logger.Debug("step applied", "run_id", rn.id, "index", step.Index, "from", step.From, "to", step.To, "seek", step.Seek)

		if i == len(steps)-1 || tick == nil {
			continue
		}
		select {
		case <-tick:
		case <-rn.stopCh:
		case <-ctx.Done():
		}
	}

	res.Completed = true
	metrics.ObserveRun(false)
	final := engine.ComputeMetrics(seq, head, len(seq))
	r.logger.Info("simulation completed", "run_id", rn.id, "total_seek_time", final.TotalSeekTime, "average_seek_time", final.AverageSeekTime)
	return res, nil
}
