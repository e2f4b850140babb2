package cli

import (
	"fmt"

	"github.com/me/disksched/internal/engine"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var flags scenarioFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every algorithm on the same request set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			reports := engine.Compare(sc.Requests, sc.Head, sc.TotalTracks, sc.Direction)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, reports)
			}

			fmt.Fprintf(out, "Head %d, %d requests, SCAN moving %s\n\n", sc.Head, len(sc.Requests), sc.Direction)
			fmt.Fprintf(out, "%-8s  %10s  %8s  %10s  %s\n", "ALG", "TOTAL SEEK", "AVG SEEK", "THROUGHPUT", "SEQUENCE")
			fmt.Fprintf(out, "%-8s  %10s  %8s  %10s  %s\n", "---", "----------", "--------", "----------", "--------")
			for _, r := range reports {
				fmt.Fprintf(out, "%-8s  %10d  %8.2f  %10.2f  %s\n",
					r.Label, r.Metrics.TotalSeekTime, r.Metrics.AverageSeekTime, r.Metrics.Throughput,
					joinTracks(r.Sequence, " "))
			}
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reports as JSON")
	return cmd
}
