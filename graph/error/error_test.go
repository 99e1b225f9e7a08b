package grapherror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphError_Error(t *testing.T) {
	assert.Equal(t, "open graph.json: no such file",
		New(CategoryLoad, SubcategoryLoadRead, errors.New("open graph.json: no such file")).Describe("Could not load").Error())
	assert.Equal(t, "Duplicate node id", (&GraphError{Description: "Duplicate node id"}).Error())
	assert.Equal(t, "", (&GraphError{}).Error())
}

func TestWithReplacesField(t *testing.T) {
	err := Newf(CategoryGraph, SubcategoryGraphDanglingLink, "link at index %d references unknown node %q", 2, "zz").
		With("index", 2).
		With("node_id", "zz").
		With("index", 3)

	assert.Equal(t, []interface{}{"index", 3, "node_id", "zz"}, err.Fields)
	assert.Equal(t, 3, err.Field("index"))
	assert.Nil(t, err.Field("file"))
}

func TestAsAndMatches(t *testing.T) {
	inner := New(CategoryLoad, SubcategoryLoadDecode, errors.New("bad yaml"))
	wrapped := fmt.Errorf("loading graph: %w", inner)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)

	assert.True(t, Matches(wrapped, CategoryLoad, SubcategoryLoadDecode))
	// "read" exists under both load and websocket
	assert.False(t, Matches(New(CategoryWebSocket, SubcategoryWSRead, nil), CategoryLoad, SubcategoryLoadRead))
	assert.False(t, Matches(errors.New("plain"), CategoryLoad, SubcategoryLoadDecode))
}

func TestToMeta(t *testing.T) {
	err := Newf(CategoryGraph, SubcategoryGraphDanglingLink, "link l3 targets unknown node").
		With("node_id", "zz").
		With("category", "shadowed")

	assert.Equal(t, map[string]string{
		"error":       "link l3 targets unknown node",
		"category":    "graph",
		"description": "graph has invalid nodes or links",
		"subcategory": "dangling_link",
		"node_id":     "zz",
	}, err.ToMeta())

	bare := New(CategoryWebSocket, "", errors.New("boom")).Describe("Unknown node").ToMeta()
	assert.Equal(t, "Unknown node", bare["description"])
	assert.NotContains(t, bare, "subcategory")
}

func TestToLogFields(t *testing.T) {
	err := New(CategoryWebSocket, SubcategoryWSWrite, errors.New("write: broken pipe")).
		With("client_id", "c1")

	assert.Equal(t, []interface{}{
		"error_category", CategoryWebSocket,
		"error", "write: broken pipe",
		"error_subcategory", SubcategoryWSWrite,
		"client_id", "c1",
	}, err.ToLogFields())
}
