package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/am"
)

func readTOML(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := make(map[string]interface{})
	require.NoError(t, toml.Unmarshal(data, &out))
	return out
}

func TestAmSetWritesProjectFile(t *testing.T) {
	_, project := isolate(t)

	out, err := run(t, newAmCmd(), "set", "graph.props.simulation_gravity", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "graph.props.simulation_gravity")

	written := readTOML(t, filepath.Join(project, "am.toml"))
	props := written["graph"].(map[string]interface{})["props"].(map[string]interface{})
	assert.EqualValues(t, 0, props["simulation_gravity"])

	// The cached config was reset, so a fresh load sees the value
	cfg, err := am.Load()
	require.NoError(t, err)
	assert.EqualValues(t, 0, cfg.Graph.Props["simulation_gravity"])
}

func TestAmSetUser(t *testing.T) {
	home, _ := isolate(t)

	_, err := run(t, newAmCmd(), "set", "--user", "graph.preset", "explorer")
	require.NoError(t, err)

	written := readTOML(t, filepath.Join(home, ".cosmograph", "am.toml"))
	assert.Equal(t, "explorer", written["graph"].(map[string]interface{})["preset"])
}

func TestAmGet(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "am.toml"), "[graph]\npreset = \"explorer\"\n")

	out, err := run(t, newAmCmd(), "get", "graph.preset")
	require.NoError(t, err)
	assert.Equal(t, "explorer\n", out)

	_, err = run(t, newAmCmd(), "get", "graph.nothing")
	require.Error(t, err)
}

func TestAmWhere(t *testing.T) {
	_, project := isolate(t)
	path := filepath.Join(project, "am.toml")
	writeFile(t, path, "[graph]\npreset = \"explorer\"\n")

	out, err := run(t, newAmCmd(), "where", "graph.preset")
	require.NoError(t, err)
	assert.Contains(t, out, "graph.preset = explorer")
	assert.Contains(t, out, "[project]")

	out, err = run(t, newAmCmd(), "where")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration cascade")
}

func TestAmShowFormats(t *testing.T) {
	isolate(t)

	for _, format := range []string{"toml", "json", "yaml"} {
		out, err := run(t, newAmCmd(), "show", "--format", format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := run(t, newVersionCmd(), "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"go_version\"")
}
