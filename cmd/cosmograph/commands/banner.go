package commands

import (
	"fmt"
	"io"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/logger"
	"github.com/kbreese-x/cosmograph/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(w io.Writer, verbosity int, cfg *am.Config, configPath string) {
	// ANSI escape codes
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	info := version.Get()

	fmt.Fprintf(w, "\n%s%s", cyan, bold)
	fmt.Fprintf(w, "   ╔═══════════════════════════════════════╗\n")
	fmt.Fprintf(w, "   ║                                       ║\n")
	fmt.Fprintf(w, "   ║      ◉───◉        c o s m o           ║\n")
	fmt.Fprintf(w, "   ║       ╲ ╱ ╲                           ║\n")
	fmt.Fprintf(w, "   ║        ◉───◉      g r a p h           ║\n")
	fmt.Fprintf(w, "   ║                                       ║\n")
	fmt.Fprintf(w, "   ╚═══════════════════════════════════════╝%s\n\n", reset)

	fmt.Fprintf(w, "%s%s┌─ cosmograph ────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Fprintf(w, "%s│%s Version:   %s (commit %s)\n", green, reset, info.Version, info.Short())
	fmt.Fprintf(w, "%s│%s Built:     %s\n", green, reset, info.BuildTime)
	fmt.Fprintf(w, "%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Fprintf(w, "%s│%s Preset:    %s\n", green, reset, cfg.GetPreset())
	if cfg.Graph.File != "" {
		fmt.Fprintf(w, "%s│%s Graph:     %s\n", green, reset, cfg.Graph.File)
	}
	if configPath != "" {
		fmt.Fprintf(w, "%s│%s Config:    %s (watched)\n", green, reset, configPath)
	}
	fmt.Fprintf(w, "%s└─────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Fprintf(w, "\n%s%s✨ Edit am.toml to restyle connected browsers live%s\n", yellow, bold, reset)
	fmt.Fprintf(w, "%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
