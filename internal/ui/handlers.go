package ui

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/me/disksched/internal/requests"
	"github.com/me/disksched/internal/shell"
	"github.com/me/disksched/pkg/model"
)

// recentNotices is how many notices the workspace page shows.
const recentNotices = 5

// UI handles the web user interface.
type UI struct {
	workspace *shell.Workspace
	logger    *slog.Logger
	runCtx    context.Context
}

// Config holds UI configuration.
type Config struct {
	RunContext context.Context // Parent context for simulation runs
}

// New creates a new UI handler.
func New(ws *shell.Workspace, logger *slog.Logger, cfg Config) *UI {
	if cfg.RunContext == nil {
		cfg.RunContext = context.Background()
	}
	return &UI{
		workspace: ws,
		logger:    logger.With("component", "ui"),
		runCtx:    cfg.RunContext,
	}
}

// trackMarker positions a pending request on the track bar.
type trackMarker struct {
	Track   model.Track
	Percent float64
}

// HandleWorkspace renders the interactive workspace page.
func (ui *UI) HandleWorkspace(w http.ResponseWriter, r *http.Request) {
	st := ui.workspace.Snapshot()

	markers := make([]trackMarker, 0, len(st.Requests))
	for _, t := range st.Requests {
		markers = append(markers, trackMarker{Track: t, Percent: trackPercent(t, st.TotalTracks)})
	}

	notices := ui.workspace.Notices()
	if len(notices) > recentNotices {
		notices = notices[len(notices)-recentNotices:]
	}

	ui.render(w, http.StatusOK, "workspace", map[string]any{
		"Title":       "Disk Scheduling Simulator",
		"State":       st,
		"HeadPercent": st.HeadPercent(),
		"Markers":     markers,
		"Algorithms":  model.Algorithms(),
		"Notices":     notices,
		"Error":       r.URL.Query().Get("error"),
	})
}

// HandleAlgorithms renders the algorithm reference page.
func (ui *UI) HandleAlgorithms(w http.ResponseWriter, r *http.Request) {
	ui.render(w, http.StatusOK, "algorithms", map[string]any{
		"Title":      "Algorithms - Disk Scheduling Simulator",
		"Algorithms": model.Algorithms(),
	})
}

// HandleAddRequest queues the track from the form.
func (ui *UI) HandleAddRequest(w http.ResponseWriter, r *http.Request) {
	_, err := ui.workspace.AddRequestInput(r.FormValue("track"))
	ui.redirect(w, r, err)
}

// HandleRemoveRequest drops a queued track.
func (ui *UI) HandleRemoveRequest(w http.ResponseWriter, r *http.Request) {
	t, err := requests.ParseTrack(chi.URLParam(r, "track"), ui.workspace.Snapshot().TotalTracks)
	if err == nil {
		err = ui.workspace.RemoveRequest(t)
	}
	ui.redirect(w, r, err)
}

// HandleClear empties the queue.
func (ui *UI) HandleClear(w http.ResponseWriter, r *http.Request) {
	ui.redirect(w, r, ui.workspace.ClearAll())
}

// HandleSetHead moves the head.
func (ui *UI) HandleSetHead(w http.ResponseWriter, r *http.Request) {
	t, err := requests.ParseTrack(r.FormValue("head"), ui.workspace.Snapshot().TotalTracks)
	if err == nil {
		err = ui.workspace.SetHead(t)
	}
	ui.redirect(w, r, err)
}

// HandleSetAlgorithm selects the scheduling policy.
func (ui *UI) HandleSetAlgorithm(w http.ResponseWriter, r *http.Request) {
	alg, err := model.ParseAlgorithm(r.FormValue("algorithm"))
	if err == nil {
		err = ui.workspace.SelectAlgorithm(alg)
	}
	ui.redirect(w, r, err)
}

// HandleSetDirection selects the initial SCAN direction.
func (ui *UI) HandleSetDirection(w http.ResponseWriter, r *http.Request) {
	ui.redirect(w, r, ui.workspace.SetDirection(model.Direction(r.FormValue("direction"))))
}

// HandleStart begins an animated run.
func (ui *UI) HandleStart(w http.ResponseWriter, r *http.Request) {
	_, err := ui.workspace.Start(ui.runCtx)
	ui.redirect(w, r, err)
}

// HandleStop halts the active run.
func (ui *UI) HandleStop(w http.ResponseWriter, r *http.Request) {
	ui.workspace.Stop()
	ui.redirect(w, r, nil)
}

// redirect sends the browser back to the workspace, carrying err in the
// query string.
func (ui *UI) redirect(w http.ResponseWriter, r *http.Request, err error) {
	target := "/"
	if err != nil {
		ui.logger.Debug("ui action rejected", "path", r.URL.Path, "error", err)
		target += "?error=" + url.QueryEscape(err.Error())
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func trackPercent(t model.Track, totalTracks int) float64 {
	if totalTracks <= 1 {
		return 0
	}
	return float64(t) / float64(totalTracks-1) * 100
}

func (ui *UI) render(w http.ResponseWriter, status int, template string, data map[string]any) {
	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
