package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = newAmCmd()

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage cosmograph configuration",
		Long: `am: manage cosmograph configuration ("what the graph is")

Configuration sources (in order of precedence):
1. Environment variables (COSMOGRAPH_* prefix, e.g. COSMOGRAPH_GRAPH_PROPS_SIMULATION_GRAVITY)
2. Project config (nearest am.toml or cosmograph.toml, searching up directories)
3. User config (~/.cosmograph/am.toml)
4. Default values

Examples:
  cosmograph am show                                   # Show current configuration
  cosmograph am show --format json                     # Show configuration in JSON format
  cosmograph am get graph.preset                       # Get specific config value
  cosmograph am where graph.props.background_color     # Which source set a value
  cosmograph am set graph.props.simulation_gravity 0.2 # Persist a setting`,
	}
	cmd.AddCommand(newAmShowCmd(), newAmGetCmd(), newAmWhereCmd(), newAmSetCmd())
	return cmd
}

func newAmShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current cosmograph configuration from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := am.Load(); err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			// Effective settings keyed as they are written in am.toml
			settings := am.GetViper().AllSettings()
			if format != "json" {
				fmt.Fprintln(cmd.OutOrStdout(), "# cosmograph configuration")
			}
			return writeFormatted(cmd.OutOrStdout(), settings, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func newAmGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., graph.preset, server.port)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !am.GetViper().IsSet(key) {
				return errors.Wrapf(errors.ErrNotFound, "configuration key %q", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
			return nil
		},
	}
}

func newAmWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where [key]",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and the source of every effective setting.

With a key, print only that setting and its source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				info, err := am.Where(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s = %v  [%s] %s\n", info.Key, info.Value, info.Source, info.SourcePath)
				return nil
			}

			intro, err := am.GetConfigIntrospection()
			if err != nil {
				return errors.Wrap(err, "failed to get config introspection")
			}

			fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
			fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
			fmt.Fprintf(out, "  2. [USER]     %s\n", am.UserConfigPath())
			fmt.Fprintln(out, "  3. [PROJECT]  ./am.toml or ./cosmograph.toml (searches up directories)")
			fmt.Fprintf(out, "  4. [ENV]      %s_* environment variables\n", am.EnvPrefix)
			fmt.Fprintln(out)

			// Group settings by the file or source that set them
			groups := make(map[string][]am.SettingInfo)
			for _, s := range intro.Settings {
				key := s.SourcePath
				if key == "" {
					key = string(s.Source)
				}
				groups[key] = append(groups[key], s)
			}
			keys := make([]string, 0, len(groups))
			for k := range groups {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				settings := groups[k]
				fmt.Fprintf(out, "[%s] %s\n", settings[0].Source, k)
				for _, s := range settings {
					fmt.Fprintf(out, "  %s = %v\n", s.Key, s.Value)
				}
			}
			return nil
		},
	}
}

func newAmSetCmd() *cobra.Command {
	var user bool
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a configuration value",
		Long: `Write a dotted key into a config file, keeping rotating backups (.back1-.back3).

The value is read as YAML, so 0.2 is a number, false is a boolean and
[10, 1000] is a range. The target is the active project file, or
./am.toml when none exists. --user writes ~/.cosmograph/am.toml instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := setTarget(user)
			if path == "" {
				return errors.New("cannot determine config file path")
			}
			if err := am.UpdateSetting(path, args[0], parseValue(args[1])); err != nil {
				return err
			}
			am.Reset()
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s set in %s\n", args[0], path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&user, "user", false, "Write to the user config (~/.cosmograph/am.toml)")
	return cmd
}

func setTarget(user bool) string {
	if user {
		return am.UserConfigPath()
	}
	if path := am.ConfigFilePath(); path != "" && path != am.UserConfigPath() {
		return path
	}
	return "am.toml"
}
