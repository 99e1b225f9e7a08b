package cosmo

import "github.com/kbreese-x/cosmograph/graph"

// Props is the caller surface of the standard preset. Every field is optional.
type Props struct {
	BackgroundColor  *string  `json:"backgroundColor,omitempty" mapstructure:"background_color"`
	NodeSizeScale    *float64 `json:"nodeSizeScale,omitempty" mapstructure:"node_size_scale"`
	LinkWidthScale   *float64 `json:"linkWidthScale,omitempty" mapstructure:"link_width_scale"`
	ScaleNodesOnZoom *bool    `json:"scaleNodesOnZoom,omitempty" mapstructure:"scale_nodes_on_zoom"`
	PixelRatio       *float64 `json:"pixelRatio,omitempty" mapstructure:"pixel_ratio"`

	NodeGreyoutOpacity    *float64 `json:"nodeGreyoutOpacity,omitempty" mapstructure:"node_greyout_opacity"`
	FocusedNodeRingColor  *string  `json:"focusedNodeRingColor,omitempty" mapstructure:"focused_node_ring_color"`
	RenderHoveredNodeRing *bool    `json:"renderHoveredNodeRing,omitempty" mapstructure:"render_hovered_node_ring"`
	HoveredNodeRingColor  *string  `json:"hoveredNodeRingColor,omitempty" mapstructure:"hovered_node_ring_color"`

	RenderLinks                    *bool    `json:"renderLinks,omitempty" mapstructure:"render_links"`
	LinkArrows                     *bool    `json:"linkArrows,omitempty" mapstructure:"link_arrows"`
	LinkArrowsSizeScale            *float64 `json:"linkArrowsSizeScale,omitempty" mapstructure:"link_arrows_size_scale"`
	LinkGreyoutOpacity             *float64 `json:"linkGreyoutOpacity,omitempty" mapstructure:"link_greyout_opacity"`
	CurvedLinks                    *bool    `json:"curvedLinks,omitempty" mapstructure:"curved_links"`
	CurvedLinkSegments             *int     `json:"curvedLinkSegments,omitempty" mapstructure:"curved_link_segments"`
	CurvedLinkWeight               *float64 `json:"curvedLinkWeight,omitempty" mapstructure:"curved_link_weight"`
	CurvedLinkControlPointDistance *float64 `json:"curvedLinkControlPointDistance,omitempty" mapstructure:"curved_link_control_point_distance"`
	LinkVisibilityMinTransparency  *float64 `json:"linkVisibilityMinTransparency,omitempty" mapstructure:"link_visibility_min_transparency"`
	LinkVisibilityDistanceRange    *Range   `json:"linkVisibilityDistanceRange,omitempty" mapstructure:"link_visibility_distance_range"`

	// NodeLabelKey names the node attribute used as label text.
	// Unlike the other fields an empty key means "use the baseline accessor".
	NodeLabelKey         *string `json:"nodeLabelKey,omitempty" mapstructure:"node_label_key"`
	ShowDynamicLabels    *bool   `json:"showDynamicLabels,omitempty" mapstructure:"show_dynamic_labels"`
	ShowTopLabels        *bool   `json:"showTopLabels,omitempty" mapstructure:"show_top_labels"`
	ShowTopLabelsLimit   *int    `json:"showTopLabelsLimit,omitempty" mapstructure:"show_top_labels_limit"`
	ShowHoveredNodeLabel *bool   `json:"showHoveredNodeLabel,omitempty" mapstructure:"show_hovered_node_label"`

	DisableZoom      *bool    `json:"disableZoom,omitempty" mapstructure:"disable_zoom"`
	InitialZoomLevel *float64 `json:"initialZoomLevel,omitempty" mapstructure:"initial_zoom_level"`
	FitViewOnInit    *bool    `json:"fitViewOnInit,omitempty" mapstructure:"fit_view_on_init"`
	FitViewDelay     *int     `json:"fitViewDelay,omitempty" mapstructure:"fit_view_delay"`

	DisableSimulation            *bool    `json:"disableSimulation,omitempty" mapstructure:"disable_simulation"`
	SpaceSize                    *int     `json:"spaceSize,omitempty" mapstructure:"space_size"`
	SimulationDecay              *float64 `json:"simulationDecay,omitempty" mapstructure:"simulation_decay"`
	SimulationFriction           *float64 `json:"simulationFriction,omitempty" mapstructure:"simulation_friction"`
	SimulationRepulsion          *float64 `json:"simulationRepulsion,omitempty" mapstructure:"simulation_repulsion"`
	SimulationRepulsionTheta     *float64 `json:"simulationRepulsionTheta,omitempty" mapstructure:"simulation_repulsion_theta"`
	SimulationLinkSpring         *float64 `json:"simulationLinkSpring,omitempty" mapstructure:"simulation_link_spring"`
	SimulationLinkDistance       *float64 `json:"simulationLinkDistance,omitempty" mapstructure:"simulation_link_distance"`
	SimulationGravity            *float64 `json:"simulationGravity,omitempty" mapstructure:"simulation_gravity"`
	SimulationCenter             *float64 `json:"simulationCenter,omitempty" mapstructure:"simulation_center"`
	SimulationRepulsionFromMouse *float64 `json:"simulationRepulsionFromMouse,omitempty" mapstructure:"simulation_repulsion_from_mouse"`
	UseQuadtree                  *bool    `json:"useQuadtree,omitempty" mapstructure:"use_quadtree"`
	RepulsionQuadtreeLevels      *int     `json:"repulsionQuadtreeLevels,omitempty" mapstructure:"repulsion_quadtree_levels"`
}

// ExplorerProps is the caller surface of the explorer preset: a narrower set of
// display options plus node click and hover handlers.
type ExplorerProps struct {
	BackgroundColor  *string  `json:"backgroundColor,omitempty" mapstructure:"background_color"`
	NodeSizeScale    *float64 `json:"nodeSizeScale,omitempty" mapstructure:"node_size_scale"`
	LinkWidthScale   *float64 `json:"linkWidthScale,omitempty" mapstructure:"link_width_scale"`
	ScaleNodesOnZoom *bool    `json:"scaleNodesOnZoom,omitempty" mapstructure:"scale_nodes_on_zoom"`

	RenderLinks                   *bool    `json:"renderLinks,omitempty" mapstructure:"render_links"`
	LinkArrows                    *bool    `json:"linkArrows,omitempty" mapstructure:"link_arrows"`
	LinkArrowsSizeScale           *float64 `json:"linkArrowsSizeScale,omitempty" mapstructure:"link_arrows_size_scale"`
	CurvedLinks                   *bool    `json:"curvedLinks,omitempty" mapstructure:"curved_links"`
	LinkVisibilityMinTransparency *float64 `json:"linkVisibilityMinTransparency,omitempty" mapstructure:"link_visibility_min_transparency"`
	LinkVisibilityDistanceRange   *Range   `json:"linkVisibilityDistanceRange,omitempty" mapstructure:"link_visibility_distance_range"`

	NodeLabelKey         *string `json:"nodeLabelKey,omitempty" mapstructure:"node_label_key"`
	ShowDynamicLabels    *bool   `json:"showDynamicLabels,omitempty" mapstructure:"show_dynamic_labels"`
	ShowTopLabels        *bool   `json:"showTopLabels,omitempty" mapstructure:"show_top_labels"`
	ShowTopLabelsLimit   *int    `json:"showTopLabelsLimit,omitempty" mapstructure:"show_top_labels_limit"`
	ShowHoveredNodeLabel *bool   `json:"showHoveredNodeLabel,omitempty" mapstructure:"show_hovered_node_label"`

	FitViewOnInit *bool `json:"fitViewOnInit,omitempty" mapstructure:"fit_view_on_init"`

	DisableSimulation            *bool    `json:"disableSimulation,omitempty" mapstructure:"disable_simulation"`
	SimulationDecay              *float64 `json:"simulationDecay,omitempty" mapstructure:"simulation_decay"`
	SimulationFriction           *float64 `json:"simulationFriction,omitempty" mapstructure:"simulation_friction"`
	SimulationRepulsion          *float64 `json:"simulationRepulsion,omitempty" mapstructure:"simulation_repulsion"`
	SimulationRepulsionTheta     *float64 `json:"simulationRepulsionTheta,omitempty" mapstructure:"simulation_repulsion_theta"`
	SimulationLinkSpring         *float64 `json:"simulationLinkSpring,omitempty" mapstructure:"simulation_link_spring"`
	SimulationLinkDistance       *float64 `json:"simulationLinkDistance,omitempty" mapstructure:"simulation_link_distance"`
	SimulationGravity            *float64 `json:"simulationGravity,omitempty" mapstructure:"simulation_gravity"`
	SimulationCenter             *float64 `json:"simulationCenter,omitempty" mapstructure:"simulation_center"`
	SimulationRepulsionFromMouse *float64 `json:"simulationRepulsionFromMouse,omitempty" mapstructure:"simulation_repulsion_from_mouse"`

	// OnNodeClick fires only when a node, not empty space, was clicked.
	OnNodeClick func(node graph.Node) `json:"-" mapstructure:"-"`
	// OnNodeHover receives the node on hover start and nil on hover end.
	OnNodeHover func(node *graph.Node) `json:"-" mapstructure:"-"`
}
