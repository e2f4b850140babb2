package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/me/disksched/internal/shell"
	"github.com/me/disksched/pkg/model"
	"github.com/spf13/cobra"
)

const workspacePath = "/api/v1/workspace"

func newWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Drive the interactive workspace on a disksched server",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the workspace state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "get workspace", "GET", workspacePath+"/", nil)
			},
		},
		&cobra.Command{
			Use:   "add <track>",
			Short: "Queue a track request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "add request", "POST", workspacePath+"/requests/", map[string]any{"track": args[0]})
			},
		},
		&cobra.Command{
			Use:   "remove <track>",
			Short: "Remove a queued track",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "remove request", "DELETE", workspacePath+"/requests/"+args[0], nil)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every queued track and reset the metrics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "clear requests", "DELETE", workspacePath+"/requests/", nil)
			},
		},
		&cobra.Command{
			Use:   "head <track>",
			Short: "Move the head",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "set head", "PUT", workspacePath+"/head", map[string]any{"head": args[0]})
			},
		},
		&cobra.Command{
			Use:       "algorithm <fcfs|sstf|scan|cscan>",
			Short:     "Select the scheduling algorithm",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"fcfs", "sstf", "scan", "cscan"},
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "set algorithm", "PUT", workspacePath+"/algorithm", map[string]any{"algorithm": args[0]})
			},
		},
		&cobra.Command{
			Use:       "direction <left|right>",
			Short:     "Select the initial SCAN direction",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"left", "right"},
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "set direction", "PUT", workspacePath+"/direction", map[string]any{"direction": args[0]})
			},
		},
		&cobra.Command{
			Use:   "start",
			Short: "Start an animated run",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showState(cmd, "start simulation", "POST", workspacePath+"/simulation", nil)
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the active run",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				var data struct {
					Stopped   bool        `json:"stopped"`
					Workspace shell.State `json:"workspace"`
				}
				if err := client.Call(cmd.Context(), "PUT", workspacePath+"/simulation/stop", nil, &data); err != nil {
					return fmt.Errorf("stop simulation: %w", err)
				}
				out := cmd.OutOrStdout()
				if data.Stopped {
					fmt.Fprintln(out, "Simulation stopped")
				} else {
					fmt.Fprintln(out, "No simulation running")
				}
				printState(out, data.Workspace)
				return nil
			},
		},
		&cobra.Command{
			Use:   "notices",
			Short: "Show the notification log",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				var notices []model.Notice
				if err := client.Call(cmd.Context(), "GET", workspacePath+"/notices", nil, &notices); err != nil {
					return fmt.Errorf("get notices: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(notices) == 0 {
					fmt.Fprintln(out, "No notices.")
					return nil
				}
				for _, n := range notices {
					fmt.Fprintf(out, "%-16s  %-7s  %s\n", humanize.Time(n.Time), n.Level, n.Message)
				}
				return nil
			},
		},
	)

	return cmd
}

// showState calls a workspace endpoint and prints the state it returns.
func showState(cmd *cobra.Command, action, method, path string, body any) error {
	var st shell.State
	if err := client.Call(cmd.Context(), method, path, body, &st); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	printState(cmd.OutOrStdout(), st)
	return nil
}
