package cosmo

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/kbreese-x/cosmograph/graph"
)

// pick returns *v when the caller supplied it, otherwise def.
func pick[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// Build merges p over the standard baseline.
func Build(p Props) Config {
	cfg := Baseline()
	o := &cfg.Options

	o.BackgroundColor = pick(p.BackgroundColor, o.BackgroundColor)
	o.NodeSizeScale = pick(p.NodeSizeScale, o.NodeSizeScale)
	o.LinkWidthScale = pick(p.LinkWidthScale, o.LinkWidthScale)
	o.ScaleNodesOnZoom = pick(p.ScaleNodesOnZoom, o.ScaleNodesOnZoom)
	o.PixelRatio = pick(p.PixelRatio, o.PixelRatio)

	o.NodeGreyoutOpacity = pick(p.NodeGreyoutOpacity, o.NodeGreyoutOpacity)
	o.FocusedNodeRingColor = pick(p.FocusedNodeRingColor, o.FocusedNodeRingColor)
	o.RenderHoveredNodeRing = pick(p.RenderHoveredNodeRing, o.RenderHoveredNodeRing)
	o.HoveredNodeRingColor = pick(p.HoveredNodeRingColor, o.HoveredNodeRingColor)

	o.RenderLinks = pick(p.RenderLinks, o.RenderLinks)
	o.LinkArrows = pick(p.LinkArrows, o.LinkArrows)
	o.LinkArrowsSizeScale = pick(p.LinkArrowsSizeScale, o.LinkArrowsSizeScale)
	o.LinkGreyoutOpacity = pick(p.LinkGreyoutOpacity, o.LinkGreyoutOpacity)
	o.CurvedLinks = pick(p.CurvedLinks, o.CurvedLinks)
	o.CurvedLinkSegments = pick(p.CurvedLinkSegments, o.CurvedLinkSegments)
	o.CurvedLinkWeight = pick(p.CurvedLinkWeight, o.CurvedLinkWeight)
	o.CurvedLinkControlPointDistance = pick(p.CurvedLinkControlPointDistance, o.CurvedLinkControlPointDistance)
	o.LinkVisibilityMinTransparency = pick(p.LinkVisibilityMinTransparency, o.LinkVisibilityMinTransparency)
	o.LinkVisibilityDistance = pick(p.LinkVisibilityDistanceRange, o.LinkVisibilityDistance)

	cfg.NodeLabelAccessor = labelAccessor(p.NodeLabelKey, cfg.NodeLabelAccessor)
	o.ShowDynamicLabels = pick(p.ShowDynamicLabels, o.ShowDynamicLabels)
	o.ShowTopLabels = pick(p.ShowTopLabels, o.ShowTopLabels)
	o.ShowTopLabelsLimit = pick(p.ShowTopLabelsLimit, o.ShowTopLabelsLimit)
	o.ShowHoveredNodeLabel = pick(p.ShowHoveredNodeLabel, o.ShowHoveredNodeLabel)

	o.DisableZoom = pick(p.DisableZoom, o.DisableZoom)
	o.InitialZoomLevel = pick(p.InitialZoomLevel, o.InitialZoomLevel)
	o.FitViewOnInit = pick(p.FitViewOnInit, o.FitViewOnInit)
	o.FitViewDelay = pick(p.FitViewDelay, o.FitViewDelay)

	o.DisableSimulation = pick(p.DisableSimulation, o.DisableSimulation)
	o.SpaceSize = pick(p.SpaceSize, o.SpaceSize)
	o.SimulationDecay = pick(p.SimulationDecay, o.SimulationDecay)
	o.SimulationFriction = pick(p.SimulationFriction, o.SimulationFriction)
	o.SimulationRepulsion = pick(p.SimulationRepulsion, o.SimulationRepulsion)
	o.SimulationRepulsionTheta = pick(p.SimulationRepulsionTheta, o.SimulationRepulsionTheta)
	o.SimulationLinkSpring = pick(p.SimulationLinkSpring, o.SimulationLinkSpring)
	o.SimulationLinkDistance = pick(p.SimulationLinkDistance, o.SimulationLinkDistance)
	o.SimulationGravity = pick(p.SimulationGravity, o.SimulationGravity)
	o.SimulationCenter = pick(p.SimulationCenter, o.SimulationCenter)
	o.SimulationRepulsionFromMouse = pick(p.SimulationRepulsionFromMouse, o.SimulationRepulsionFromMouse)
	o.UseQuadtree = pick(p.UseQuadtree, o.UseQuadtree)
	o.RepulsionQuadtreeLevels = pick(p.RepulsionQuadtreeLevels, o.RepulsionQuadtreeLevels)

	return cfg
}

// BuildExplorer merges p over the explorer baseline and wires its handlers.
func BuildExplorer(p ExplorerProps) Config {
	cfg := ExplorerBaseline()
	o := &cfg.Options

	o.BackgroundColor = pick(p.BackgroundColor, o.BackgroundColor)
	o.NodeSizeScale = pick(p.NodeSizeScale, o.NodeSizeScale)
	o.LinkWidthScale = pick(p.LinkWidthScale, o.LinkWidthScale)
	o.ScaleNodesOnZoom = pick(p.ScaleNodesOnZoom, o.ScaleNodesOnZoom)

	o.RenderLinks = pick(p.RenderLinks, o.RenderLinks)
	o.LinkArrows = pick(p.LinkArrows, o.LinkArrows)
	o.LinkArrowsSizeScale = pick(p.LinkArrowsSizeScale, o.LinkArrowsSizeScale)
	o.CurvedLinks = pick(p.CurvedLinks, o.CurvedLinks)
	o.LinkVisibilityMinTransparency = pick(p.LinkVisibilityMinTransparency, o.LinkVisibilityMinTransparency)
	o.LinkVisibilityDistance = pick(p.LinkVisibilityDistanceRange, o.LinkVisibilityDistance)

	cfg.NodeLabelAccessor = labelAccessor(p.NodeLabelKey, cfg.NodeLabelAccessor)
	o.ShowDynamicLabels = pick(p.ShowDynamicLabels, o.ShowDynamicLabels)
	o.ShowTopLabels = pick(p.ShowTopLabels, o.ShowTopLabels)
	o.ShowTopLabelsLimit = pick(p.ShowTopLabelsLimit, o.ShowTopLabelsLimit)
	o.ShowHoveredNodeLabel = pick(p.ShowHoveredNodeLabel, o.ShowHoveredNodeLabel)

	o.FitViewOnInit = pick(p.FitViewOnInit, o.FitViewOnInit)

	o.DisableSimulation = pick(p.DisableSimulation, o.DisableSimulation)
	o.SimulationDecay = pick(p.SimulationDecay, o.SimulationDecay)
	o.SimulationFriction = pick(p.SimulationFriction, o.SimulationFriction)
	o.SimulationRepulsion = pick(p.SimulationRepulsion, o.SimulationRepulsion)
	o.SimulationRepulsionTheta = pick(p.SimulationRepulsionTheta, o.SimulationRepulsionTheta)
	o.SimulationLinkSpring = pick(p.SimulationLinkSpring, o.SimulationLinkSpring)
	o.SimulationLinkDistance = pick(p.SimulationLinkDistance, o.SimulationLinkDistance)
	o.SimulationGravity = pick(p.SimulationGravity, o.SimulationGravity)
	o.SimulationCenter = pick(p.SimulationCenter, o.SimulationCenter)
	o.SimulationRepulsionFromMouse = pick(p.SimulationRepulsionFromMouse, o.SimulationRepulsionFromMouse)

	cfg.OnClick = wrapClick(p.OnNodeClick)
	cfg.OnNodeMouseOver, cfg.OnNodeMouseOut = wrapHover(p.OnNodeHover)

	return cfg
}

// labelAccessor returns an accessor reading node[key] as text, falling back to
// the node id when the attribute is missing, nil, or renders as "".
// A nil or empty key keeps def.
func labelAccessor(key *string, def func(graph.Node) string) func(graph.Node) string {
	if key == nil || *key == "" {
		return def
	}
	k := *key
	return func(n graph.Node) string {
		v, ok := n.Get(k)
		if !ok || v == nil {
			return n.ID
		}
		if s := stringify(v); s != "" {
			return s
		}
		return n.ID
	}
}

func stringify(v interface{}) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// wrapClick adapts a node click handler to the renderer's click callback,
// which also fires for clicks on empty space.
func wrapClick(handler func(graph.Node)) func(*graph.Node) {
	if handler == nil {
		return nil
	}
	return func(n *graph.Node) {
		if n != nil {
			handler(*n)
		}
	}
}

// wrapHover splits a single hover handler into mouse-over and mouse-out
// callbacks. Mouse-out calls the handler with nil.
func wrapHover(handler func(*graph.Node)) (over func(graph.Node), out func()) {
	if handler == nil {
		return nil, nil
	}
	over = func(n graph.Node) {
		handler(&n)
	}
	out = func() {
		handler(nil)
	}
	return over, out
}
