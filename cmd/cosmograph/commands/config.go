package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
)

// ConfigCmd groups commands that work on the merged options record
var ConfigCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Build, compare and validate graph options",
		Long: `Merge caller props over a preset baseline and inspect the result.

A prop that is set (including 0, false or "") replaces the baseline value;
an absent prop keeps it. Unknown props are ignored.

Examples:
  cosmograph config show                                   # Merged options for graph.preset
  cosmograph config show -p explorer --set simulation_gravity=0.3
  cosmograph config show --props props.yaml --format yaml
  cosmograph config show --diff                            # Only options that differ from the baseline
  cosmograph config presets                                # Compare preset baselines
  cosmograph config validate                               # Check am.toml`,
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigPresetsCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		flags  settingsFlags
		format string
		diff   bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged options record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, settings, err := flags.resolve()
			if err != nil {
				return err
			}
			cfg, err := preset.Build(settings, cosmo.Handlers{})
			if err != nil {
				return err
			}
			warnUnknown(cmd, preset, settings)

			if diff {
				return printDiff(cmd, preset.Name, cosmo.DiffOptions(preset.Baseline().Options, cfg.Options))
			}

			opts, err := cfg.Options.ToMap()
			if err != nil {
				return err
			}
			return writeFormatted(cmd.OutOrStdout(), opts, format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml, toml")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show only options that differ from the preset baseline")
	return cmd
}

func printDiff(cmd *cobra.Command, preset string, diffs []cosmo.OptionDiff) error {
	out := cmd.OutOrStdout()
	if len(diffs) == 0 {
		fmt.Fprintf(out, "No options differ from the %s baseline\n", preset)
		return nil
	}

	data := pterm.TableData{{"Option", preset + " baseline", "Value"}}
	for _, d := range diffs {
		data = append(data, []string{d.Name, fmt.Sprint(d.Left), fmt.Sprint(d.Right)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	fmt.Fprintln(out, table)
	return nil
}

// warnUnknown notes settings the preset ignores. They never fail a build.
func warnUnknown(cmd *cobra.Command, preset cosmo.Preset, settings map[string]interface{}) {
	unknown, err := preset.Unknown(settings)
	if err != nil || len(unknown) == 0 {
		return
	}
	pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("%s preset ignores: %v", preset.Name, unknown)
}

func newConfigPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List presets and the baseline options where they differ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := cosmo.Presets()

			list := pterm.TableData{{"Preset", "Settings", "Description"}}
			for _, p := range presets {
				list = append(list, []string{p.Name, fmt.Sprint(len(p.SettingNames())), p.Description})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(list).Srender()
			if err != nil {
				return errors.Wrap(err, "failed to render table")
			}
			fmt.Fprintln(out, table)

			standard, explorer := presets[0], presets[1]
			diffs := cosmo.DiffOptions(standard.Baseline().Options, explorer.Baseline().Options)
			data := pterm.TableData{{"Option", standard.Name, explorer.Name}}
			for _, d := range diffs {
				data = append(data, []string{d.Name, fmt.Sprint(d.Left), fmt.Sprint(d.Right)})
			}
			table, err = pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, "failed to render table")
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, table)
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the graph and server configuration",
		Long:  "Load am.toml, merge [graph.props] over graph.preset and check every option range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}

			if unknown, err := cfg.UnknownProps(); err == nil && len(unknown) > 0 {
				pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("%s preset ignores [graph.props]: %v", cfg.GetPreset(), unknown)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
			return nil
		},
	}
}
