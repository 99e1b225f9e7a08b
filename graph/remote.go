package graph

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/kbreese-x/cosmograph/errors"
	grapherror "github.com/kbreese-x/cosmograph/graph/error"
	"github.com/kbreese-x/cosmograph/internal/httpclient"
)

// maxRemoteGraph caps a downloaded graph body
const maxRemoteGraph = 32 << 20

// IsURL reports whether src names an http(s) graph source rather than a file
func IsURL(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LoadSource reads a graph from a file path or an http(s) URL.
// URLs are fetched with private addresses blocked.
func LoadSource(ctx context.Context, src string) (*Graph, error) {
	if !IsURL(src) {
		return Load(src)
	}
	return Fetch(ctx, httpclient.New(httpclient.DefaultTimeout), src)
}

// Fetch downloads a graph. The format comes from the URL path extension,
// falling back to the response Content-Type, then JSON.
func Fetch(ctx context.Context, client *httpclient.SaferClient, rawURL string) (*Graph, error) {
	fetchErr := func(err error) error {
		return grapherror.New(grapherror.CategoryLoad, grapherror.SubcategoryLoadFetch, err).
			With("url", rawURL)
	}

	resp, err := client.Get(ctx, rawURL)
	if err != nil {
		return nil, fetchErr(errors.Wrapf(err, "failed to fetch graph %s", rawURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fetchErr(errors.Newf("fetch graph %s: unexpected status %s", rawURL, resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteGraph+1))
	if err != nil {
		return nil, fetchErr(errors.Wrapf(err, "failed to read graph %s", rawURL))
	}
	if len(data) > maxRemoteGraph {
		return nil, fetchErr(errors.Newf("graph %s exceeds %d bytes", rawURL, maxRemoteGraph))
	}

	g, err := Decode(data, remoteFormat(rawURL, resp.Header.Get("Content-Type")))
	if err != nil {
		if ge, ok := grapherror.As(err); ok {
			ge.With("url", rawURL)
		}
		return nil, err
	}
	return g, nil
}

func remoteFormat(rawURL, contentType string) Format {
	if u, err := url.Parse(rawURL); err == nil {
		if f, err := FormatForPath(path.Base(u.Path)); err == nil {
			return f
		}
	}
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML
	}
	return FormatJSON
}
