package graph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grapherror "github.com/kbreese-x/cosmograph/graph/error"
	"github.com/kbreese-x/cosmograph/internal/httpclient"
	"github.com/kbreese-x/cosmograph/internal/util"
)

func testClient() *httpclient.SaferClient {
	return httpclient.NewWithOptions(time.Second, httpclient.Options{BlockPrivateIP: util.Ptr(false)})
}

func graphServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/g.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("nodes:\n  - id: a\n  - id: b\nlinks:\n  - source: a\n    target: b\n"))
	})
	mux.HandleFunc("/graph", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml; charset=utf-8")
		w.Write([]byte("nodes:\n  - id: only\n"))
	})
	mux.HandleFunc("/api/graph", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"nodes":[{"id":"x"}]}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/g.json"))
	assert.True(t, IsURL("HTTP://example.com/g.json"))
	assert.False(t, IsURL("testdata/small.yaml"))
	assert.False(t, IsURL("file:///tmp/g.json"))
}

func TestFetchPicksFormat(t *testing.T) {
	ts := graphServer(t)
	ctx := context.Background()

	g, err := Fetch(ctx, testClient(), ts.URL+"/g.yaml")
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 2)
	assert.Len(t, g.Links, 1)

	g, err = Fetch(ctx, testClient(), ts.URL+"/graph")
	require.NoError(t, err)
	assert.Equal(t, "only", g.Nodes[0].ID)
	assert.Empty(t, g.Links)

	g, err = Fetch(ctx, testClient(), ts.URL+"/api/graph")
	require.NoError(t, err)
	assert.Equal(t, "x", g.Nodes[0].ID)
}

func TestFetchErrors(t *testing.T) {
	ts := graphServer(t)

	_, err := Fetch(context.Background(), testClient(), ts.URL+"/missing.json")
	require.Error(t, err)
	assert.True(t, grapherror.Matches(err, grapherror.CategoryLoad, grapherror.SubcategoryLoadFetch))

	// The default client refuses loopback addresses
	_, err = LoadSource(context.Background(), ts.URL+"/g.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private IP")
}

func TestLoadSourceReadsFiles(t *testing.T) {
	g, err := LoadSource(context.Background(), "testdata/small.yaml")
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 2)
}
