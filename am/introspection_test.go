package am

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/errors"
)

func TestGetConfigIntrospection(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "am.toml"), `
[graph]
preset = "explorer"
`)
	t.Setenv("COSMOGRAPH_SERVER_LOG_THEME", "gruvbox")

	in, err := GetConfigIntrospection()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, "am.toml"), in.ConfigFile)

	byKey := map[string]SettingInfo{}
	for _, s := range in.Settings {
		byKey[s.Key] = s
	}

	assert.Equal(t, SourceProject, byKey["graph.preset"].Source)
	assert.Equal(t, "explorer", byKey["graph.preset"].Value)
	assert.Equal(t, SourceEnvironment, byKey["server.log_theme"].Source)
	assert.Equal(t, "COSMOGRAPH_SERVER_LOG_THEME", byKey["server.log_theme"].SourcePath)
	assert.Equal(t, SourceDefault, byKey["server.port"].Source)
}

func TestWhere(t *testing.T) {
	isolate(t)

	info, err := Where("server.port")
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, info.Source)

	_, err = Where("graph.nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
