package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grapherror "github.com/kbreese-x/cosmograph/graph/error"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		graph       Graph
		subcategory string
	}{
		{
			name:  "valid graph",
			graph: Graph{Nodes: []Node{{ID: "a"}, {ID: "b"}}, Links: []Link{{Source: "a", Target: "b"}}},
		},
		{
			name:        "missing id",
			graph:       Graph{Nodes: []Node{{ID: "a"}, {Attrs: map[string]interface{}{"title": "x"}}}},
			subcategory: grapherror.SubcategoryGraphMissingID,
		},
		{
			name:        "duplicate id",
			graph:       Graph{Nodes: []Node{{ID: "a"}, {ID: "a"}}},
			subcategory: grapherror.SubcategoryGraphDuplicateID,
		},
		{
			name:        "dangling target",
			graph:       Graph{Nodes: []Node{{ID: "a"}}, Links: []Link{{Source: "a", Target: "ghost"}}},
			subcategory: grapherror.SubcategoryGraphDanglingLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.Validate()
			if tt.subcategory == "" {
				assert.NoError(t, err)
				return
			}
			ge, ok := grapherror.As(err)
			require.True(t, ok, "expected GraphError, got %v", err)
			assert.Equal(t, grapherror.CategoryGraph, ge.Category)
			assert.Equal(t, tt.subcategory, ge.Subcategory)
		})
	}
}
