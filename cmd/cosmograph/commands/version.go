package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbreese-x/cosmograph/version"
)

// VersionCmd represents the version command
var VersionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show cosmograph version information",
		Long:  `Display version, build time, commit hash, and platform information for the cosmograph binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if jsonOutput {
				return writeFormatted(cmd.OutOrStdout(), info, "json")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output version info as JSON")
	return cmd
}
