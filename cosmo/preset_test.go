package cosmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
)

func TestLookup(t *testing.T) {
	p, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, PresetStandard, p.Name)

	p, err = Lookup(PresetExplorer)
	require.NoError(t, err)
	assert.Equal(t, ExplorerBaseline().Options, p.Baseline().Options)

	_, err = Lookup("galaxy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownPreset))
	assert.Contains(t, errors.FlattenHints(err), "standard, explorer")
}

func TestPresetsAreIndependent(t *testing.T) {
	assert.Equal(t, []string{PresetStandard, PresetExplorer}, PresetNames())

	all := Presets()
	all[0].Name = "mutated"
	assert.Equal(t, PresetStandard, Presets()[0].Name)
}

func TestPresetBuild(t *testing.T) {
	settings := map[string]interface{}{"simulation_gravity": 0.25}
	var clicked string
	handlers := Handlers{OnNodeClick: func(n graph.Node) { clicked = n.ID }}

	standard, _ := Lookup(PresetStandard)
	cfg, err := standard.Build(settings, handlers)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.SimulationGravity)
	assert.Nil(t, cfg.OnClick, "standard preset has no event surface")

	explorer, _ := Lookup(PresetExplorer)
	cfg, err = explorer.Build(settings, handlers)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.SimulationGravity)
	require.NotNil(t, cfg.OnClick)
	cfg.OnClick(&graph.Node{ID: "n9"})
	assert.Equal(t, "n9", clicked)

	_, err = explorer.Build(map[string]interface{}{"curved_links": "twisty"}, Handlers{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset explorer")
}

func TestPresetUnknownAndSettingNames(t *testing.T) {
	explorer, _ := Lookup(PresetExplorer)
	unknown, err := explorer.Unknown(map[string]interface{}{
		"pixel_ratio":        2,
		"simulation_gravity": 0.2,
		"zz_top":             1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pixel_ratio", "zz_top"}, unknown)

	assert.Contains(t, explorer.SettingNames(), "simulation_gravity")
	assert.NotContains(t, explorer.SettingNames(), "pixel_ratio")

	standard, _ := Lookup(PresetStandard)
	assert.Contains(t, standard.SettingNames(), "pixel_ratio")
	assert.Contains(t, standard.SettingNames(), "node_label_key")
}
