package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want interface{}
	}{
		{"0", 0},
		{"0.25", 0.25},
		{"false", false},
		{"", ""},
		{"#000000", "#000000"},
		{"title", "title"},
		{"[10, 1000]", []interface{}{10, 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.raw))
		})
	}
}

func TestParseSet(t *testing.T) {
	key, value, err := parseSet("simulation_gravity=0")
	require.NoError(t, err)
	assert.Equal(t, "simulation_gravity", key)
	assert.Equal(t, 0, value)

	key, value, err = parseSet("node_label_key=")
	require.NoError(t, err)
	assert.Equal(t, "node_label_key", key)
	assert.Equal(t, "", value)

	for _, bad := range []string{"no_equals", "=0.2"} {
		_, _, err := parseSet(bad)
		require.Error(t, err, bad)
		assert.NotEmpty(t, errors.FlattenHints(err))
	}
}

func TestReadPropsFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "props.json")
	writeFile(t, jsonPath, `{"simulation_gravity": 0, "render_links": false}`)
	props, err := readPropsFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 0.0, props["simulation_gravity"])
	assert.Equal(t, false, props["render_links"])

	yamlPath := filepath.Join(dir, "props.yml")
	writeFile(t, yamlPath, "background_color: \"\"\nlink_visibility_distance_range: [10, 20]\n")
	props, err = readPropsFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "", props["background_color"])
	assert.Equal(t, []interface{}{10, 20}, props["link_visibility_distance_range"])

	_, err = readPropsFile(filepath.Join(dir, "props.txt"))
	require.Error(t, err)

	_, err = readPropsFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestResolvePrecedence(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "am.toml"), `
[graph]
preset = "explorer"

[graph.props]
simulation_gravity = 0.3
background_color = "#101010"
show_top_labels_limit = 5
`)
	propsPath := filepath.Join(project, "props.yaml")
	writeFile(t, propsPath, "simulation_gravity: 0.4\nbackground_color: \"#202020\"\n")

	flags := settingsFlags{
		propsFile: propsPath,
		sets:      []string{"simulation_gravity=0"},
	}
	preset, settings, err := flags.resolve()
	require.NoError(t, err)

	assert.Equal(t, cosmo.PresetExplorer, preset.Name)
	assert.Equal(t, 0, settings["simulation_gravity"], "--set wins")
	assert.Equal(t, "#202020", settings["background_color"], "props file beats am.toml")
	assert.EqualValues(t, 5, settings["show_top_labels_limit"])
}

func TestResolveNoConfig(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "am.toml"), "[graph]\npreset = \"explorer\"\n[graph.props]\nsimulation_gravity = 0.3\n")

	flags := settingsFlags{noConfig: true}
	preset, settings, err := flags.resolve()
	require.NoError(t, err)
	assert.Equal(t, cosmo.PresetStandard, preset.Name)
	assert.Empty(t, settings)

	flags = settingsFlags{noConfig: true, preset: "fancy"}
	_, _, err = flags.resolve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownPreset))
}

func TestResolvePrecedenceAcrossSpellings(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "am.toml"), `
[graph.props]
link_arrows = true
simulationGravity = 0.3
`)
	propsPath := filepath.Join(project, "props.json")
	writeFile(t, propsPath, `{"simulation-gravity": 0.4, "renderLinks": false}`)

	flags := settingsFlags{
		propsFile: propsPath,
		sets:      []string{"linkArrows=false", "render_links=true"},
	}
	preset, settings, err := flags.resolve()
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"link_arrows":        false,
		"simulation_gravity": 0.4,
		"render_links":       true,
	}, settings)

	props, err := cosmo.DecodeProps(settings)
	require.NoError(t, err)
	assert.False(t, *props.LinkArrows)
	assert.True(t, *props.RenderLinks)

	cfg, err := preset.Build(settings, cosmo.Handlers{})
	require.NoError(t, err)
	assert.False(t, cfg.LinkArrows)
	assert.Equal(t, 0.4, cfg.SimulationGravity)
}
