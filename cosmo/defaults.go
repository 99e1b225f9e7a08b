package cosmo

import (
	"github.com/spf13/cast"

	"github.com/kbreese-x/cosmograph/graph"
)

// Accessor fallbacks. Unlike the merge itself these use truthiness:
// a node with color "" or size 0 gets the default.
const (
	DefaultNodeColor = "#b3b3b3"
	DefaultNodeSize  = 4.0
	DefaultLinkColor = "#666666"
	DefaultLinkWidth = 1.0
)

func standardOptions() Options {
	return Options{
		BackgroundColor:  "#ffffff",
		NodeSizeScale:    1.0,
		ScaleNodesOnZoom: true,
		PixelRatio:       2.0,

		NodeGreyoutOpacity:    0.1,
		FocusedNodeRingColor:  "white",
		RenderHoveredNodeRing: true,
		HoveredNodeRingColor:  "white",

		RenderLinks:                    true,
		LinkWidthScale:                 1.0,
		LinkArrows:                     true,
		LinkArrowsSizeScale:            1.0,
		LinkGreyoutOpacity:             0.1,
		CurvedLinks:                    false,
		CurvedLinkSegments:             19,
		CurvedLinkWeight:               0.8,
		CurvedLinkControlPointDistance: 0.5,
		LinkVisibilityMinTransparency:  0.25,
		LinkVisibilityDistance:         Range{50, 150},

		ShowDynamicLabels:    true,
		ShowTopLabels:        false,
		ShowTopLabelsLimit:   100,
		ShowHoveredNodeLabel: true,

		DisableZoom:      false,
		InitialZoomLevel: 1.0,
		FitViewOnInit:    true,
		FitViewDelay:     250,

		DisableSimulation:            false,
		SpaceSize:                    4096,
		SimulationDecay:              1000,
		SimulationFriction:           0.85,
		SimulationRepulsion:          0.1,
		SimulationRepulsionTheta:     1.7,
		SimulationLinkSpring:         1.0,
		SimulationLinkDistance:       2.0,
		SimulationGravity:            0.0,
		SimulationCenter:             0.0,
		SimulationRepulsionFromMouse: 2.0,
		UseQuadtree:                  false,
		RepulsionQuadtreeLevels:      12,
	}
}

// explorerOptions tunes the standard baseline for interactive exploration:
// dark canvas, slower cooling, stronger repulsion and a pull toward the center.
func explorerOptions() Options {
	o := standardOptions()
	o.BackgroundColor = "#222222"
	o.LinkArrows = false
	o.CurvedLinks = true
	o.ShowTopLabels = true

	o.SimulationDecay = 5000
	o.SimulationFriction = 0.9
	o.SimulationRepulsion = 0.5
	o.SimulationRepulsionTheta = 1.15
	o.SimulationLinkSpring = 0.5
	o.SimulationLinkDistance = 10
	o.SimulationGravity = 0.1
	o.SimulationCenter = 0.1
	return o
}

func withAccessors(o Options) Config {
	return Config{
		Options:           o,
		NodeColor:         nodeColor,
		NodeSize:          nodeSize,
		LinkColor:         linkColor,
		LinkWidth:         linkWidth,
		NodeLabelAccessor: nodeID,
	}
}

// fillAccessors replaces nil accessors with the baseline ones.
func fillAccessors(cfg Config) Config {
	if cfg.NodeColor == nil {
		cfg.NodeColor = nodeColor
	}
	if cfg.NodeSize == nil {
		cfg.NodeSize = nodeSize
	}
	if cfg.LinkColor == nil {
		cfg.LinkColor = linkColor
	}
	if cfg.LinkWidth == nil {
		cfg.LinkWidth = linkWidth
	}
	if cfg.NodeLabelAccessor == nil {
		cfg.NodeLabelAccessor = nodeID
	}
	return cfg
}

// Baseline returns the standard preset's fallback record.
// A new value is returned on every call.
func Baseline() Config {
	return withAccessors(standardOptions())
}

// ExplorerBaseline returns the explorer preset's fallback record.
// No event callbacks are set.
func ExplorerBaseline() Config {
	return withAccessors(explorerOptions())
}

func nodeColor(n graph.Node) string {
	if c := cast.ToString(n.Attrs["color"]); c != "" {
		return c
	}
	return DefaultNodeColor
}

func nodeSize(n graph.Node) float64 {
	if s := cast.ToFloat64(n.Attrs["size"]); s != 0 {
		return s
	}
	return DefaultNodeSize
}

func linkColor(l graph.Link) string {
	if c := cast.ToString(l.Attrs["color"]); c != "" {
		return c
	}
	return DefaultLinkColor
}

func linkWidth(l graph.Link) float64 {
	if w := cast.ToFloat64(l.Attrs["width"]); w != 0 {
		return w
	}
	return DefaultLinkWidth
}

func nodeID(n graph.Node) string {
	return n.ID
}
