// Package cosmo builds the options record consumed by the Cosmograph renderer.
//
// A caller supplies a partial record (Props or ExplorerProps) whose fields are
// pointers: nil means "not supplied" and falls back to the preset's baseline,
// while any non-nil value, including 0, false and "", is kept as given.
package cosmo

import (
	"encoding/json"

	"github.com/kbreese-x/cosmograph/graph"
)

// Range is a [min, max] pair. A supplied Range replaces the baseline pair as a whole.
type Range [2]float64

// Min returns the lower bound
func (r Range) Min() float64 { return r[0] }

// Max returns the upper bound
func (r Range) Max() float64 { return r[1] }

// Options is the serialisable part of the renderer configuration.
// JSON names match the renderer's option names.
type Options struct {
	// Visual configuration
	BackgroundColor  string  `json:"backgroundColor"`
	NodeSizeScale    float64 `json:"nodeSizeScale"`
	ScaleNodesOnZoom bool    `json:"scaleNodesOnZoom"`
	PixelRatio       float64 `json:"pixelRatio"`

	// Node appearance
	NodeGreyoutOpacity    float64 `json:"nodeGreyoutOpacity"`
	FocusedNodeRingColor  string  `json:"focusedNodeRingColor"`
	RenderHoveredNodeRing bool    `json:"renderHoveredNodeRing"`
	HoveredNodeRingColor  string  `json:"hoveredNodeRingColor"`

	// Link styling
	RenderLinks                    bool    `json:"renderLinks"`
	LinkWidthScale                 float64 `json:"linkWidthScale"`
	LinkArrows                     bool    `json:"linkArrows"`
	LinkArrowsSizeScale            float64 `json:"linkArrowsSizeScale"`
	LinkGreyoutOpacity             float64 `json:"linkGreyoutOpacity"`
	CurvedLinks                    bool    `json:"curvedLinks"`
	CurvedLinkSegments             int     `json:"curvedLinkSegments"`
	CurvedLinkWeight               float64 `json:"curvedLinkWeight"`
	CurvedLinkControlPointDistance float64 `json:"curvedLinkControlPointDistance"`
	LinkVisibilityMinTransparency  float64 `json:"linkVisibilityMinTransparency"`
	LinkVisibilityDistance         Range   `json:"linkVisibilityDistance"`

	// Labels
	ShowDynamicLabels    bool `json:"showDynamicLabels"`
	ShowTopLabels        bool `json:"showTopLabels"`
	ShowTopLabelsLimit   int  `json:"showTopLabelsLimit"`
	ShowHoveredNodeLabel bool `json:"showHoveredNodeLabel"`

	// View
	DisableZoom      bool    `json:"disableZoom"`
	InitialZoomLevel float64 `json:"initialZoomLevel"`
	FitViewOnInit    bool    `json:"fitViewOnInit"`
	FitViewDelay     int     `json:"fitViewDelay"` // milliseconds

	// Simulation
	DisableSimulation            bool    `json:"disableSimulation"`
	SpaceSize                    int     `json:"spaceSize"`
	SimulationDecay              float64 `json:"simulationDecay"`
	SimulationFriction           float64 `json:"simulationFriction"`
	SimulationRepulsion          float64 `json:"simulationRepulsion"`
	SimulationRepulsionTheta     float64 `json:"simulationRepulsionTheta"`
	SimulationLinkSpring         float64 `json:"simulationLinkSpring"`
	SimulationLinkDistance       float64 `json:"simulationLinkDistance"`
	SimulationGravity            float64 `json:"simulationGravity"`
	SimulationCenter             float64 `json:"simulationCenter"`
	SimulationRepulsionFromMouse float64 `json:"simulationRepulsionFromMouse"`
	UseQuadtree                  bool    `json:"useQuadtree"`
	RepulsionQuadtreeLevels      int     `json:"repulsionQuadtreeLevels"`
}

// ToMap converts the options to a map keyed by renderer option name,
// for encoders (YAML, TOML) that do not read json tags.
func (o Options) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Config is a fully merged options record: every option has a value.
// Accessors and callbacks are not serialised.
type Config struct {
	Options

	NodeColor         func(graph.Node) string  `json:"-"`
	NodeSize          func(graph.Node) float64 `json:"-"`
	LinkColor         func(graph.Link) string  `json:"-"`
	LinkWidth         func(graph.Link) float64 `json:"-"`
	NodeLabelAccessor func(graph.Node) string  `json:"-"`

	// OnClick receives the clicked node, or nil when empty space was clicked.
	OnClick func(node *graph.Node) `json:"-"`
	// OnNodeMouseOver/OnNodeMouseOut bracket a hover.
	OnNodeMouseOver func(node graph.Node) `json:"-"`
	OnNodeMouseOut  func()                `json:"-"`
}
