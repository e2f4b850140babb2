package cli

import (
	"fmt"

	"github.com/me/disksched/internal/engine"
	"github.com/me/disksched/pkg/model"
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	var flags scenarioFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the service sequence for one algorithm",
		Long:  "Compute the service sequence and per-step seek metrics locally, without a server.",
		Example: "  disksched schedule -a scan --head 53 -r 98,183,37,122,14,124,65,67\n" +
			"  disksched schedule -f scenario.yml --json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			alg := sc.AlgorithmOr(model.AlgorithmFCFS)

			res, err := engine.Schedule(alg, sc.Requests, sc.Head, sc.TotalTracks, sc.Direction)
			if err != nil {
				return err
			}
			logger.Debug("schedule computed", "algorithm", alg, "requests", len(sc.Requests), "total_seek_time", res.Metrics.TotalSeekTime)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}

			fmt.Fprintf(out, "Algorithm: %s\n", alg.Label())
			fmt.Fprintf(out, "Head:      %d", sc.Head)
			if alg == model.AlgorithmSCAN {
				fmt.Fprintf(out, " (moving %s)", sc.Direction)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Sequence:  %s\n\n", joinTracks(res.Sequence, " -> "))
			printStepHeader(out)
			for _, s := range res.Steps {
				printStep(out, s)
			}
			fmt.Fprintln(out)
			printMetrics(out, res.Metrics)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
