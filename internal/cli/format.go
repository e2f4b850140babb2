package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/me/disksched/internal/shell"
	"github.com/me/disksched/pkg/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinTracks(tracks []model.Track, sep string) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = fmt.Sprint(int(t))
	}
	return strings.Join(parts, sep)
}

func printMetrics(w io.Writer, m model.SeekMetrics) {
	fmt.Fprintf(w, "Total seek time:   %d\n", m.TotalSeekTime)
	fmt.Fprintf(w, "Average seek time: %.2f\n", m.AverageSeekTime)
	fmt.Fprintf(w, "Throughput:        %.2f req per 1000 tracks\n", m.Throughput)
}

func printStepHeader(w io.Writer) {
	fmt.Fprintf(w, "%-5s  %5s  %5s  %5s  %7s  %8s\n", "STEP", "FROM", "TO", "SEEK", "TOTAL", "AVG")
	fmt.Fprintf(w, "%-5s  %5s  %5s  %5s  %7s  %8s\n", "----", "----", "--", "----", "-----", "---")
}

func printStep(w io.Writer, s model.Step) {
	fmt.Fprintf(w, "%-5d  %5d  %5d  %5d  %7d  %8.2f\n",
		s.Index+1, s.From, s.To, s.Seek, s.Metrics.TotalSeekTime, s.Metrics.AverageSeekTime)
}

func printState(w io.Writer, st shell.State) {
	fmt.Fprintf(w, "Workspace: %s\n", st.ID)
	fmt.Fprintf(w, "  Head:      %d (0-%d)\n", st.Head, st.TotalTracks-1)
	fmt.Fprintf(w, "  Algorithm: %s\n", st.Algorithm.Label())
	if st.Algorithm == model.AlgorithmSCAN {
		fmt.Fprintf(w, "  Direction: %s\n", st.Direction)
	}
	if len(st.Requests) == 0 {
		fmt.Fprintf(w, "  Requests:  (none)\n")
	} else {
		fmt.Fprintf(w, "  Requests:  %s\n", joinTracks(st.Requests, ", "))
	}
	if st.Simulating {
		fmt.Fprintf(w, "  Simulation: running (%s, step %d of %d)\n", st.RunID, st.Applied, len(st.Sequence))
	}
	if len(st.Sequence) > 0 {
		fmt.Fprintf(w, "  Sequence:  %s\n", joinTracks(st.Sequence, " -> "))
		fmt.Fprintf(w, "  Seek:      total %d, average %.2f, throughput %.2f req per 1000 tracks\n",
			st.Metrics.TotalSeekTime, st.Metrics.AverageSeekTime, st.Metrics.Throughput)
	}
}
