package cosmo

import (
	"reflect"
	"strings"
)

// OptionDiff is one option whose value differs between two records.
type OptionDiff struct {
	Name  string      `json:"name"`
	Left  interface{} `json:"left"`
	Right interface{} `json:"right"`
}

// DiffOptions lists options that differ between a and b, in declaration order.
func DiffOptions(a, b Options) []OptionDiff {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	t := va.Type()

	var diffs []OptionDiff
	for i := 0; i < t.NumField(); i++ {
		fa, fb := va.Field(i).Interface(), vb.Field(i).Interface()
		if reflect.DeepEqual(fa, fb) {
			continue
		}
		diffs = append(diffs, OptionDiff{Name: optionName(t.Field(i)), Left: fa, Right: fb})
	}
	return diffs
}

func optionName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
