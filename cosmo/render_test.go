package cosmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/graph"
	"github.com/kbreese-x/cosmograph/internal/util"
)

func sampleGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: "n1", Attrs: map[string]interface{}{"title": "Alpha", "color": "#ff0000", "size": 9}},
			{ID: "n2"},
		},
		Links: []graph.Link{
			{Source: "n1", Target: "n2", Attrs: map[string]interface{}{"width": 3}},
		},
	}
}

func TestRender(t *testing.T) {
	cfg := Build(Props{NodeLabelKey: util.Ptr("title"), NodeSizeScale: util.Ptr(2.0)})
	view := Render(cfg, sampleGraph())

	require.Len(t, view.Nodes, 2)
	assert.Equal(t, ViewNode{
		ID:    "n1",
		Label: "Alpha",
		Color: "#ff0000",
		Size:  9,
		Attrs: map[string]interface{}{"title": "Alpha", "color": "#ff0000", "size": 9},
	}, view.Nodes[0])
	assert.Equal(t, "n2", view.Nodes[1].Label)
	assert.Equal(t, DefaultNodeColor, view.Nodes[1].Color)
	assert.Equal(t, DefaultNodeSize, view.Nodes[1].Size)

	require.Len(t, view.Links, 1)
	assert.Equal(t, ViewLink{Source: "n1", Target: "n2", Color: DefaultLinkColor, Width: 3}, view.Links[0])

	assert.Equal(t, 2.0, view.Config.NodeSizeScale)
	assert.Equal(t, graph.Stats{TotalNodes: 2, TotalEdges: 1}, view.Stats)
}

func TestRenderNilGraphAndBareConfig(t *testing.T) {
	view := Render(Config{}, nil)
	assert.NotNil(t, view.Nodes)
	assert.NotNil(t, view.Links)
	assert.Empty(t, view.Nodes)

	view = Render(Config{}, sampleGraph())
	assert.Equal(t, "n1", view.Nodes[0].Label)
	assert.Equal(t, "#ff0000", view.Nodes[0].Color)
}
