package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/internal/util"
)

// isolate points HOME and the working directory at fresh temp dirs and clears cached state.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, project)
	Reset()
	t.Cleanup(Reset)
	return home, project
}

// chdir changes the working directory for the duration of the test (Go 1.21 stand-in for t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without user/project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, cosmo.PresetStandard, cfg.Graph.Preset)
	assert.Empty(t, cfg.Graph.File)
	assert.Nil(t, cfg.Graph.Props)
	assert.Equal(t, DefaultServerPort, cfg.GetServerPort())
	assert.Equal(t, 30.0, cfg.Server.EventRatePerSecond)
	assert.Equal(t, "everforest", cfg.GetServerLogTheme())
	assert.Contains(t, cfg.GetServerAllowedOrigins(), "http://localhost")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	writeFile(t, path, `
[graph]
preset = "explorer"
file = "graph.yaml"

[graph.props]
simulation_gravity = 0
linkArrows = true
link_visibility_distance_range = [10, 40]

[server]
port = 9000
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "explorer", cfg.GetPreset())
	assert.Equal(t, "graph.yaml", cfg.Graph.File)
	assert.Equal(t, 9000, cfg.GetServerPort())

	built, err := cfg.BuildGraphConfig(cosmo.Handlers{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, built.SimulationGravity, "explicit zero must override the explorer default")
	assert.True(t, built.LinkArrows)
	assert.Equal(t, cosmo.Range{10, 40}, built.LinkVisibilityDistance)
	assert.Equal(t, 0.9, built.SimulationFriction)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadFromFile_BadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	writeFile(t, path, "[server]\nport = \"eighty\"\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Precedence(t *testing.T) {
	home, project := isolate(t)

	writeFile(t, filepath.Join(home, ".cosmograph", "am.toml"), `
[graph]
preset = "explorer"

[server]
port = 8100
log_theme = "gruvbox"
`)
	writeFile(t, filepath.Join(project, "am.toml"), `
[server]
port = 8200
`)
	t.Setenv("COSMOGRAPH_GRAPH_PROPS_SIMULATION_GRAVITY", "0.4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "explorer", cfg.Graph.Preset, "user file applies when project is silent")
	assert.Equal(t, 8200, cfg.GetServerPort(), "project file beats user file")
	assert.Equal(t, "gruvbox", cfg.Server.LogTheme)

	built, err := cfg.BuildGraphConfig(cosmo.Handlers{})
	require.NoError(t, err)
	assert.Equal(t, 0.4, built.SimulationGravity, "environment beats files")

	assert.Equal(t, SourceProject, ConfigSources["server.port"].Source)
	assert.Equal(t, SourceUser, ConfigSources["graph.preset"].Source)
	assert.Equal(t, filepath.Join(project, "am.toml"), ConfigFilePath())
}

func TestLoad_ProjectSearchWalksUp(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "cosmograph.toml"), `
[graph]
preset = "explorer"
`)
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)
	Reset()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "explorer", cfg.Graph.Preset)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "empty config is valid",
			config: Config{},
		},
		{
			name:    "zero port is invalid",
			config:  Config{Server: ServerConfig{Port: util.Ptr(0)}},
			wantErr: "server.port cannot be 0",
		},
		{
			name:    "negative port is invalid",
			config:  Config{Server: ServerConfig{Port: util.Ptr(-1)}},
			wantErr: "server.port must be between",
		},
		{
			name:   "zero event rate is valid (drop all)",
			config: Config{Server: ServerConfig{EventRatePerSecond: 0}},
		},
		{
			name:    "negative event rate is invalid",
			config:  Config{Server: ServerConfig{EventRatePerSecond: -1}},
			wantErr: "event_rate_per_second",
		},
		{
			name:    "unknown preset",
			config:  Config{Graph: GraphConfig{Preset: "galaxy"}},
			wantErr: "unknown preset",
		},
		{
			name: "props out of range",
			config: Config{Graph: GraphConfig{Props: map[string]interface{}{
				"simulation_friction": 0.2,
			}}},
			wantErr: "simulationFriction",
		},
		{
			name: "props with wrong type",
			config: Config{Graph: GraphConfig{Props: map[string]interface{}{
				"render_links": "perhaps",
			}}},
			wantErr: "graph",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_OutOfRangeIsInvalidConfig(t *testing.T) {
	cfg := Config{Graph: GraphConfig{Preset: "explorer", Props: map[string]interface{}{"simulation_center": 3}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestUnknownProps(t *testing.T) {
	cfg := Config{Graph: GraphConfig{Preset: "explorer", Props: map[string]interface{}{
		"pixel_ratio":     1,
		"curved_links":    false,
		"not_a_real_prop": "x",
	}}}

	unknown, err := cfg.UnknownProps()
	require.NoError(t, err)
	assert.Equal(t, []string{"not_a_real_prop", "pixel_ratio"}, unknown)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "COSMOGRAPH_SERVER_PORT", EnvName("server.port"))
	assert.Equal(t, "COSMOGRAPH_GRAPH_PROPS_NODE_LABEL_KEY", EnvName("graph.props.node_label_key"))
}
