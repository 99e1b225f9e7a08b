package cosmo

import "github.com/kbreese-x/cosmograph/graph"

// ViewNode is a node with every accessor resolved. Size is unscaled:
// the renderer applies nodeSizeScale itself.
type ViewNode struct {
	ID    string                 `json:"id"`
	Label string                 `json:"label"`
	Color string                 `json:"color"`
	Size  float64                `json:"size"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// ViewLink is a link with its color and width resolved.
type ViewLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
}

// View is what a browser client needs to draw a graph without running accessors itself.
type View struct {
	Config Options     `json:"config"`
	Nodes  []ViewNode  `json:"nodes"`
	Links  []ViewLink  `json:"links"`
	Stats  graph.Stats `json:"stats"`
}

// Render applies cfg's accessors to every node and link of g.
// A nil graph renders as empty. g is not modified.
func Render(cfg Config, g *graph.Graph) View {
	if g == nil {
		g = graph.Empty()
	}
	cfg = fillAccessors(cfg)

	view := View{
		Config: cfg.Options,
		Nodes:  make([]ViewNode, 0, len(g.Nodes)),
		Links:  make([]ViewLink, 0, len(g.Links)),
		Stats:  g.Stats(),
	}
	for _, n := range g.Nodes {
		view.Nodes = append(view.Nodes, ViewNode{
			ID:    n.ID,
			Label: cfg.NodeLabelAccessor(n),
			Color: cfg.NodeColor(n),
			Size:  cfg.NodeSize(n),
			Attrs: n.Attrs,
		})
	}
	for _, l := range g.Links {
		view.Links = append(view.Links, ViewLink{
			Source: l.Source,
			Target: l.Target,
			Color:  cfg.LinkColor(l),
			Width:  cfg.LinkWidth(l),
		})
	}
	return view
}
