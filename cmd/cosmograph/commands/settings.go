package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
)

// settingsFlags select a preset and assemble the settings merged over it.
// Precedence, lowest first: [graph.props] from am.toml, --props file, --set.
type settingsFlags struct {
	preset    string
	propsFile string
	sets      []string
	noConfig  bool
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Preset: standard, explorer (default from graph.preset)")
	cmd.Flags().StringVar(&f.propsFile, "props", "", "JSON or YAML file of caller props")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Set a prop, e.g. --set simulation_gravity=0.2 (repeatable)")
	cmd.Flags().BoolVar(&f.noConfig, "no-config", false, "Ignore [graph.props] and graph.preset from am.toml")
}

// resolve returns the chosen preset and the merged settings map. Each layer is
// canonicalized before it is merged so that --set linkArrows=false overrides
// link_arrows from am.toml.
func (f *settingsFlags) resolve() (cosmo.Preset, map[string]interface{}, error) {
	settings := make(map[string]interface{})
	presetName := f.preset

	if !f.noConfig {
		cfg, err := am.Load()
		if err != nil {
			return cosmo.Preset{}, nil, errors.Wrap(err, "failed to load config")
		}
		mergeSettings(settings, cfg.Graph.Props)
		if presetName == "" {
			presetName = cfg.GetPreset()
		}
	}

	if f.propsFile != "" {
		fromFile, err := readPropsFile(f.propsFile)
		if err != nil {
			return cosmo.Preset{}, nil, err
		}
		mergeSettings(settings, fromFile)
	}

	for _, kv := range f.sets {
		key, value, err := parseSet(kv)
		if err != nil {
			return cosmo.Preset{}, nil, err
		}
		mergeSettings(settings, map[string]interface{}{key: value})
	}

	preset, err := cosmo.Lookup(presetName)
	if err != nil {
		return cosmo.Preset{}, nil, err
	}
	return preset, settings, nil
}

func mergeSettings(dst, layer map[string]interface{}) {
	for k, v := range cosmo.CanonicalSettings(layer) {
		dst[k] = v
	}
}

// readPropsFile decodes a props file by extension (.json, .yaml, .yml)
func readPropsFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read props file %s", path)
	}

	props := make(map[string]interface{})
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &props)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &props)
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported props file extension %q", filepath.Ext(path)),
			"use .json, .yaml or .yml",
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode props file %s", path)
	}
	return props, nil
}

// parseSet splits key=value. The value is read as YAML so numbers, booleans
// and [min, max] lists keep their types; an empty value is the empty string.
func parseSet(kv string) (string, interface{}, error) {
	key, raw, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, errors.WithHint(
			errors.Newf("invalid --set %q", kv),
			"expected key=value, e.g. --set background_color=#000000",
		)
	}
	return key, parseValue(raw), nil
}

// parseValue reads a command-line value as YAML, falling back to the raw string
func parseValue(raw string) interface{} {
	if raw == "" {
		return ""
	}
	var v interface{}
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	return v
}
