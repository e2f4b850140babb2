package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/me/disksched/internal/config"
	"github.com/me/disksched/internal/server"
	"github.com/me/disksched/internal/shell"
	"github.com/me/disksched/pkg/model"
)

const textbookRequests = "98,183,37,122,14,124,65,67"

// startTestServer starts a server with a fresh workspace and returns the URL.
func startTestServer(t *testing.T) string {
	t.Helper()
	srvLogger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	opts := shell.DefaultOptions()
	opts.StepInterval = 0
	ws := shell.New(opts, srvLogger)
	t.Cleanup(func() { ws.Stop() })

	srv := server.New(config.DefaultServerConfig(), ws, srvLogger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScheduleCommand(t *testing.T) {
	output, err := runCLI(t, "schedule", "-a", "scan", "--head", "53", "-r", textbookRequests)
	if err != nil {
		t.Fatalf("schedule error: %v\noutput: %s", err, output)
	}
	for _, want := range []string{
		"Algorithm: SCAN",
		"(moving right)",
		"65 -> 67 -> 98 -> 122 -> 124 -> 183 -> 37 -> 14",
		"Total seek time:   299",
		"Average seek time: 37.38",
		"Throughput:        26.76 req per 1000 tracks",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestScheduleCommand_JSON(t *testing.T) {
	output, err := runCLI(t, "schedule", "-a", "sstf", "--head", "53", "-r", textbookRequests, "--json")
	if err != nil {
		t.Fatalf("schedule error: %v", err)
	}
	var res model.ScheduleResult
	if err := json.Unmarshal([]byte(output), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	want := model.Sequence{65, 67, 37, 14, 98, 122, 124, 183}
	if !slices.Equal(res.Sequence, want) {
		t.Errorf("sequence = %v, want %v", res.Sequence, want)
	}
	if res.Metrics.TotalSeekTime != 236 {
		t.Errorf("total = %d, want 236", res.Metrics.TotalSeekTime)
	}
}

func TestScheduleCommand_File(t *testing.T) {
	path := writeScenario(t, "name: textbook\nhead: 53\nalgorithm: cscan\nrequests: ["+textbookRequests+"]\n")

	output, err := runCLI(t, "schedule", "-f", path, "--json")
	if err != nil {
		t.Fatalf("schedule error: %v", err)
	}
	var res model.ScheduleResult
	json.Unmarshal([]byte(output), &res)
	if res.Algorithm != model.AlgorithmCSCAN || res.Metrics.TotalSeekTime != 322 {
		t.Errorf("result = %+v", res)
	}

	// Flags override the file.
	output, err = runCLI(t, "schedule", "-f", path, "-a", "fcfs", "--json")
	if err != nil {
		t.Fatalf("schedule error: %v", err)
	}
	json.Unmarshal([]byte(output), &res)
	if res.Algorithm != model.AlgorithmFCFS || res.Metrics.TotalSeekTime != 640 {
		t.Errorf("override result = %+v", res)
	}
}

func TestScheduleCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no requests", []string{"schedule"}, model.ErrEmptyRequestSet},
		{"duplicate", []string{"schedule", "-r", "5,5"}, model.ErrDuplicateTrack},
		{"out of range", []string{"schedule", "-r", "250"}, model.ErrTrackOutOfRange},
		{"not a number", []string{"schedule", "-r", "5,x"}, model.ErrInvalidTrack},
		{"algorithm", []string{"schedule", "-a", "look", "-r", "5"}, model.ErrInvalidAlgorithm},
		{"direction", []string{"schedule", "--direction", "up", "-r", "5"}, model.ErrInvalidDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCompareCommand(t *testing.T) {
	output, err := runCLI(t, "compare", "--head", "53", "-r", textbookRequests)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	for _, want := range []string{"FCFS", "SSTF", "SCAN", "C-SCAN", "640", "236", "299", "322"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestSimulateCommand(t *testing.T) {
	output, err := runCLI(t, "simulate", "-a", "sstf", "--head", "53", "-r", textbookRequests, "--interval", "0")
	if err != nil {
		t.Fatalf("simulate error: %v", err)
	}
	if !strings.Contains(output, "Simulation completed!") {
		t.Errorf("expected completion in output, got: %s", output)
	}
	if !strings.Contains(output, "Total seek time:   236") {
		t.Errorf("expected total 236 in output, got: %s", output)
	}
}

func TestWorkspaceCommands(t *testing.T) {
	url := startTestServer(t)

	output, err := runCLI(t, "--server", url, "workspace", "add", "98")
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if !strings.Contains(output, "Requests:  98") {
		t.Errorf("expected queued track, got: %s", output)
	}

	_, err = runCLI(t, "--server", url, "workspace", "add", "98")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrValidation {
		t.Errorf("duplicate add: error = %v, want VALIDATION_ERROR", err)
	}
	if _, err := runCLI(t, "--server", url, "ws", "add", "abc"); err == nil {
		t.Error("expected validation error")
	}

	runCLI(t, "--server", url, "workspace", "add", "37")
	output, err = runCLI(t, "--server", url, "workspace", "algorithm", "scan")
	if err != nil {
		t.Fatalf("algorithm error: %v", err)
	}
	if !strings.Contains(output, "Algorithm: SCAN") || !strings.Contains(output, "Direction: right") {
		t.Errorf("unexpected output: %s", output)
	}

	output, err = runCLI(t, "--server", url, "workspace", "head", "120")
	if err != nil || !strings.Contains(output, "Head:      120") {
		t.Errorf("head: err=%v output=%s", err, output)
	}

	output, err = runCLI(t, "--server", url, "workspace", "remove", "98")
	if err != nil || !strings.Contains(output, "Requests:  37") {
		t.Errorf("remove: err=%v output=%s", err, output)
	}

	output, err = runCLI(t, "--server", url, "workspace", "notices")
	if err != nil || !strings.Contains(output, "Removed request for track 98") {
		t.Errorf("notices: err=%v output=%s", err, output)
	}

	output, err = runCLI(t, "--server", url, "workspace", "clear")
	if err != nil || !strings.Contains(output, "(none)") {
		t.Errorf("clear: err=%v output=%s", err, output)
	}

	output, err = runCLI(t, "--server", url, "workspace", "stop")
	if err != nil || !strings.Contains(output, "No simulation running") {
		t.Errorf("stop: err=%v output=%s", err, output)
	}
}
