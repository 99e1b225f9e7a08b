package cosmo

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"github.com/kbreese-x/cosmograph/errors"
)

// DecodeProps decodes a settings map (TOML table, JSON object, flag values)
// into Props. Keys may be snake_case or camelCase. Unknown keys are ignored
// and nil values count as absent.
func DecodeProps(settings map[string]interface{}) (Props, error) {
	var p Props
	_, err := decodeSettings(settings, &p)
	return p, err
}

// DecodeExplorerProps is DecodeProps for the explorer surface.
// Handlers cannot be set from a settings map.
func DecodeExplorerProps(settings map[string]interface{}) (ExplorerProps, error) {
	var p ExplorerProps
	_, err := decodeSettings(settings, &p)
	return p, err
}

// optionKeys maps each normalized option name to its snake_case settings key.
var optionKeys = func() map[string]string {
	keys := make(map[string]string)
	t := reflect.TypeOf(Props{})
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("mapstructure"); tag != "" && tag != "-" {
			keys[normalizeOptionName(tag)] = tag
		}
	}
	return keys
}()

// CanonicalSettings rewrites every spelling of an option (linkArrows,
// link-arrows) to its snake_case key and drops nil values. When one map
// spells the same option twice the snake_case spelling wins, then the
// lexically first. Unknown keys are kept as given.
func CanonicalSettings(settings map[string]interface{}) map[string]interface{} {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]interface{}, len(settings))
	exact := make(map[string]bool, len(settings))
	for _, k := range keys {
		v := settings[k]
		if v == nil {
			continue
		}
		canon, ok := optionKeys[normalizeOptionName(k)]
		if !ok {
			out[k] = v
			continue
		}
		if _, seen := out[canon]; seen && (exact[canon] || k != canon) {
			continue
		}
		out[canon] = v
		exact[canon] = k == canon
	}
	return out
}

func decodeSettings(settings map[string]interface{}, out interface{}) (unused []string, err error) {
	settings = CanonicalSettings(settings)
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		Metadata:         &md,
		WeaklyTypedInput: true,
		MatchName:        matchOptionName,
		DecodeHook:       rangeHook,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create settings decoder")
	}
	if err := dec.Decode(settings); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to decode graph settings"), errors.ErrInvalidConfig)
	}
	sort.Strings(md.Unused)
	return md.Unused, nil
}

// matchOptionName treats link_arrows, linkArrows and link-arrows as one key.
func matchOptionName(mapKey, fieldName string) bool {
	return normalizeOptionName(mapKey) == normalizeOptionName(fieldName)
}

func normalizeOptionName(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ToLower(s)
}

var rangeType = reflect.TypeOf(Range{})

// rangeHook accepts "50,150" for a Range, as produced by env vars and --set,
// and rejects lists that do not hold exactly two values.
var rangeHook mapstructure.DecodeHookFuncType = func(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != rangeType {
		return data, nil
	}
	if k := from.Kind(); k == reflect.Slice || k == reflect.Array {
		if n := reflect.ValueOf(data).Len(); n != 2 {
			return nil, errors.Newf("range must have exactly two values, got %d", n)
		}
		return data, nil
	}
	if from.Kind() != reflect.String {
		return data, nil
	}
	parts := strings.Split(strings.Trim(data.(string), "[] "), ",")
	if len(parts) != 2 {
		return nil, errors.Newf("range %q must have exactly two values", data)
	}
	var r Range
	for i, p := range parts {
		f, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "range %q", data)
		}
		r[i] = f
	}
	return r, nil
}
