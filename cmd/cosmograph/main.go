package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbreese-x/cosmograph/cmd/cosmograph/commands"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cosmograph",
	Short: "cosmograph - Graph renderer configuration builder and server",
	Long: `cosmograph merges caller props over a renderer preset and serves the
resulting options record, and the graph it styles, to the browser.

Available commands:
  am      - Manage cosmograph configuration
  config  - Build, compare and validate graph options
  render  - Resolve labels, colors and sizes for a graph file
  server  - Start the graph server
  version - Show build information

Examples:
  cosmograph config show -p explorer   # Merged explorer options
  cosmograph render graph.yaml --table # Resolved nodes
  cosmograph server --graph graph.yaml # Serve a graph`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger.SetVerbosity(verbosity)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.ServerCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		logger.Cleanup()
		os.Exit(1)
	}
}
