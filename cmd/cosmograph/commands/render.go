package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
)

// RenderCmd resolves every accessor of the merged options against a graph file
var RenderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	var (
		flags  settingsFlags
		format string
		table  bool
	)
	cmd := &cobra.Command{
		Use:   "render <graph-file|url>",
		Short: "Resolve labels, colors and sizes for a graph file",
		Long: `Load a JSON or YAML graph (file or http(s) URL), merge props over the preset and apply every
accessor. Nodes without a label attribute are labelled with their id.

Examples:
  cosmograph render graph.yaml
  cosmograph render https://example.com/graphs/team.json --table
  cosmograph render graph.json -p explorer --set node_label_key=title --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadSource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := g.Validate(); err != nil {
				return errors.Wrapf(err, "graph %s", args[0])
			}

			preset, settings, err := flags.resolve()
			if err != nil {
				return err
			}
			cfg, err := preset.Build(settings, cosmo.Handlers{})
			if err != nil {
				return err
			}
			warnUnknown(cmd, preset, settings)

			view := cosmo.Render(cfg, g)
			if table {
				return printView(cmd, view)
			}
			return writeFormatted(cmd.OutOrStdout(), view, format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml")
	cmd.Flags().BoolVar(&table, "table", false, "Print resolved nodes as a table")
	return cmd
}

func printView(cmd *cobra.Command, view cosmo.View) error {
	data := pterm.TableData{{"ID", "Label", "Color", "Size"}}
	for _, n := range view.Nodes {
		data = append(data, []string{n.ID, n.Label, n.Color, cast.ToString(n.Size)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "%d nodes, %d links\n", view.Stats.TotalNodes, view.Stats.TotalEdges)
	return nil
}
