package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/me/disksched/internal/engine"
	"github.com/me/disksched/internal/simulation"
	"github.com/me/disksched/pkg/model"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var flags scenarioFlags
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Animate a run in the terminal, one head movement per interval",
		Long:  "Animate a run locally. Press Ctrl-C to stop; the metrics of applied steps are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			alg := sc.AlgorithmOr(model.AlgorithmFCFS)
			seq, err := engine.ComputeSequence(alg, sc.Requests, sc.Head, sc.TotalTracks, sc.Direction)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Simulating %s from head %d: %s\n\n", alg.Label(), sc.Head, joinTracks(seq, " -> "))
			printStepHeader(out)

			runner := simulation.NewRunner(simulation.Config{StepInterval: interval}, logger)
			res, err := runner.Run(ctx, seq, sc.Head, func(s model.Step) {
				printStep(out, s)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			fmt.Fprintln(out)
			if !res.Completed {
				fmt.Fprintf(out, "Simulation stopped after %d of %d steps\n", len(res.Steps), len(seq))
			} else {
				fmt.Fprintln(out, "Simulation completed!")
			}
			printMetrics(out, engine.ComputeMetrics(seq, sc.Head, len(res.Steps)))
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().DurationVar(&interval, "interval", simulation.DefaultConfig().StepInterval, "Delay between head movements")
	return cmd
}
