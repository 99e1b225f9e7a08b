package cosmo

import (
	"reflect"
	"strings"

	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
)

// Preset names
const (
	PresetStandard = "standard"
	PresetExplorer = "explorer"
)

// Handlers are the explorer preset's event hooks. The standard preset ignores them.
type Handlers struct {
	OnNodeClick func(node graph.Node)
	OnNodeHover func(node *graph.Node)
}

// Preset is a named baseline plus the caller surface that merges over it.
// Callers pick one preset as a whole; fields never mix across presets.
type Preset struct {
	Name        string
	Description string

	baseline  func() Config
	propsType reflect.Type
	build     func(settings map[string]interface{}, h Handlers) (Config, error)
}

var presets = []Preset{
	{
		Name:        PresetStandard,
		Description: "Full option surface on a light canvas, no centering forces",
		baseline:    Baseline,
		propsType:   reflect.TypeOf(Props{}),
		build: func(settings map[string]interface{}, _ Handlers) (Config, error) {
			p, err := DecodeProps(settings)
			if err != nil {
				return Config{}, err
			}
			return Build(p), nil
		},
	},
	{
		Name:        PresetExplorer,
		Description: "Dark canvas with curved links, gravity and node click/hover events",
		baseline:    ExplorerBaseline,
		propsType:   reflect.TypeOf(ExplorerProps{}),
		build: func(settings map[string]interface{}, h Handlers) (Config, error) {
			p, err := DecodeExplorerProps(settings)
			if err != nil {
				return Config{}, err
			}
			p.OnNodeClick = h.OnNodeClick
			p.OnNodeHover = h.OnNodeHover
			return BuildExplorer(p), nil
		},
	},
}

// Presets lists the registered presets in a stable order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the registered preset names.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by name. An empty name selects the standard preset.
func Lookup(name string) (Preset, error) {
	if name == "" {
		name = PresetStandard
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.WithHintf(
		errors.Wrapf(errors.ErrUnknownPreset, "%q", name),
		"valid presets: %s", strings.Join(PresetNames(), ", "),
	)
}

// Baseline returns a fresh copy of the preset's fallback record.
func (p Preset) Baseline() Config {
	return p.baseline()
}

// Build decodes settings into the preset's props and merges them over its baseline.
func (p Preset) Build(settings map[string]interface{}, h Handlers) (Config, error) {
	cfg, err := p.build(settings, h)
	if err != nil {
		return Config{}, errors.Wrapf(err, "preset %s", p.Name)
	}
	return cfg, nil
}

// Unknown returns the settings keys this preset does not recognise, sorted.
// Such keys are ignored by Build.
func (p Preset) Unknown(settings map[string]interface{}) ([]string, error) {
	out := reflect.New(p.propsType).Interface()
	return decodeSettings(settings, out)
}

// SettingNames lists the snake_case keys the preset accepts.
func (p Preset) SettingNames() []string {
	var names []string
	for i := 0; i < p.propsType.NumField(); i++ {
		tag := p.propsType.Field(i).Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		names = append(names, tag)
	}
	return names
}
