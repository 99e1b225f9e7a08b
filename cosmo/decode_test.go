package cosmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/errors"
)

func TestDecodeProps(t *testing.T) {
	p, err := DecodeProps(map[string]interface{}{
		"simulation_gravity":             0,
		"linkArrows":                     false,
		"background_color":               "",
		"show-top-labels-limit":          "25",
		"link_visibility_distance_range": []interface{}{10, 20},
		"node_label_key":                 "title",
		"curved_link_segments":           nil,
		"made_up_option":                 true,
	})
	require.NoError(t, err)

	require.NotNil(t, p.SimulationGravity)
	assert.Equal(t, 0.0, *p.SimulationGravity)
	require.NotNil(t, p.LinkArrows)
	assert.False(t, *p.LinkArrows)
	require.NotNil(t, p.BackgroundColor)
	assert.Equal(t, "", *p.BackgroundColor)
	require.NotNil(t, p.ShowTopLabelsLimit)
	assert.Equal(t, 25, *p.ShowTopLabelsLimit)
	require.NotNil(t, p.LinkVisibilityDistanceRange)
	assert.Equal(t, Range{10, 20}, *p.LinkVisibilityDistanceRange)
	assert.Nil(t, p.CurvedLinkSegments, "nil counts as absent")
	assert.Nil(t, p.PixelRatio)

	cfg := Build(p)
	assert.Equal(t, 0.0, cfg.SimulationGravity)
	assert.False(t, cfg.LinkArrows)
	assert.Equal(t, "", cfg.BackgroundColor)
	assert.Equal(t, 19, cfg.CurvedLinkSegments)
}

func TestDecodeRangeFromString(t *testing.T) {
	p, err := DecodeExplorerProps(map[string]interface{}{
		"link_visibility_distance_range": "5, 500",
	})
	require.NoError(t, err)
	require.NotNil(t, p.LinkVisibilityDistanceRange)
	assert.Equal(t, Range{5, 500}, *p.LinkVisibilityDistanceRange)

	_, err = DecodeExplorerProps(map[string]interface{}{
		"link_visibility_distance_range": "5",
	})
	assert.Error(t, err)
}

func TestDecodeExplorerIgnoresStandardOnlyKeys(t *testing.T) {
	p, err := DecodeExplorerProps(map[string]interface{}{
		"pixel_ratio":        1,
		"simulation_gravity": 0.3,
		"on_node_click":      "not a function",
	})
	require.NoError(t, err)

	assert.Nil(t, p.OnNodeClick)
	require.NotNil(t, p.SimulationGravity)
	assert.Equal(t, 0.3, *p.SimulationGravity)
}

func TestDecodeRejectsWrongTypes(t *testing.T) {
	_, err := DecodeProps(map[string]interface{}{"link_arrows": "sometimes"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestDecodeRangeRejectsWrongLength(t *testing.T) {
	for _, v := range []interface{}{
		[]interface{}{10},
		[]interface{}{},
		[]interface{}{1, 2, 3},
		[]float64{10},
	} {
		_, err := DecodeProps(map[string]interface{}{"link_visibility_distance_range": v})
		require.Error(t, err, "%v", v)
		assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		assert.Contains(t, err.Error(), "exactly two values")
	}

	p, err := DecodeProps(map[string]interface{}{"link_visibility_distance_range": []float64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, Range{1, 2}, *p.LinkVisibilityDistanceRange)
}

func TestCanonicalSettings(t *testing.T) {
	got := CanonicalSettings(map[string]interface{}{
		"linkArrows":          false,
		"link-width-scale":    2,
		"LinkWidthScale":      3,
		"simulationGravity":   nil,
		"zz_top":              1,
		"scale_nodes_on_zoom": true,
		"scaleNodesOnZoom":    false,
	})
	assert.Equal(t, map[string]interface{}{
		"link_arrows":         false,
		"link_width_scale":    3, // "LinkWidthScale" sorts before "link-width-scale"
		"zz_top":              1,
		"scale_nodes_on_zoom": true,
	}, got)
}

func TestDecodeMixedSpellingsIsStable(t *testing.T) {
	settings := map[string]interface{}{
		"link_arrows": true,
		"linkArrows":  false,
		"link-arrows": false,
		"linkarrows":  false,
	}
	for i := 0; i < 20; i++ {
		p, err := DecodeProps(settings)
		require.NoError(t, err)
		require.NotNil(t, p.LinkArrows)
		assert.True(t, *p.LinkArrows)
	}
}
