package cli

import (
	"log/slog"
	"os"

	"github.com/me/disksched/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking DISKSCHED_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("DISKSCHED_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the disksched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "disksched",
		Short: "disksched: disk scheduling simulator",
		Long: "disksched computes FCFS, SSTF, SCAN and C-SCAN service sequences with seek metrics,\n" +
			"either locally or against a running disksched server workspace.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "disksched server URL (or DISKSCHED_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newScheduleCmd(),
		newCompareCmd(),
		newSimulateCmd(),
		newWorkspaceCmd(),
	)

	return root
}
