package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kbreese-x/cosmograph/errors"
)

// writeFormatted encodes v as json, yaml or toml
func writeFormatted(w io.Writer, v interface{}, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(v)
	case "toml":
		data, err = toml.Marshal(v)
	default:
		return errors.Newf("unsupported format: %s (supported: json, yaml, toml)", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", format)
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}
