package graph

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kbreese-x/cosmograph/errors"
	grapherror "github.com/kbreese-x/cosmograph/graph/error"
)

// Format names a supported graph file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", grapherror.Newf(grapherror.CategoryLoad, grapherror.SubcategoryLoadFormat,
			"unsupported graph file extension %q", filepath.Ext(path)).With("file", path)
	}
}

// Load reads a graph value from a JSON or YAML file
func Load(path string) (*Graph, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, grapherror.New(grapherror.CategoryLoad, grapherror.SubcategoryLoadRead,
			errors.Wrapf(err, "failed to read graph file %s", path)).With("file", path)
	}

	g, err := Decode(data, format)
	if err != nil {
		if ge, ok := grapherror.As(err); ok {
			ge.With("file", path)
		}
		return nil, err
	}
	return g, nil
}

// Decode parses a graph value. Missing nodes/links decode as empty slices.
func Decode(data []byte, format Format) (*Graph, error) {
	g := Empty()

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, g)
	case FormatYAML:
		err = yaml.Unmarshal(data, g)
	default:
		return nil, grapherror.Newf(grapherror.CategoryLoad, grapherror.SubcategoryLoadFormat,
			"unsupported graph format %q", format)
	}
	if err != nil {
		return nil, grapherror.New(grapherror.CategoryLoad, grapherror.SubcategoryLoadDecode,
			errors.Wrapf(err, "failed to decode %s graph", format))
	}

	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Links == nil {
		g.Links = []Link{}
	}
	return g, nil
}
