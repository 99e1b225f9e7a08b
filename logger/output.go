package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Merged options, rendered views
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputStartup // Startup banner, listen address
	OutputReloads // Config file reloads, graph replacements
	OutputClients // WebSocket connect/disconnect

	// Level 2 (-vv) - Detailed
	OutputConfig // Options record after each merge
	OutputEvents // Pointer events dispatched into callbacks

	// Level 3 (-vvv) - Full dump
	OutputDataDump // Full websocket payloads
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputStartup: VerbosityInfo,
	OutputReloads: VerbosityInfo,
	OutputClients: VerbosityInfo,

	OutputConfig: VerbosityDebug,
	OutputEvents: VerbosityDebug,

	OutputDataDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:  "results",
	OutputErrors:   "errors",
	OutputStartup:  "startup",
	OutputReloads:  "reloads",
	OutputClients:  "clients",
	OutputConfig:   "config",
	OutputEvents:   "events",
	OutputDataDump: "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
