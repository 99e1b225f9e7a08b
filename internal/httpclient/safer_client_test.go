package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbreese-x/cosmograph/internal/util"
)

func TestNewDefaults(t *testing.T) {
	c := New(5 * time.Second)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, 10, c.maxRedirects)
	assert.True(t, c.blockPrivateIP)
	assert.NotNil(t, c.Transport)
}

func TestValidateURL(t *testing.T) {
	c := New(time.Second)

	tests := []struct {
		name        string
		url         string
		errContains string
	}{
		{"https", "https://example.com/graph.yaml", ""},
		{"http", "http://example.com/graph.json", ""},
		{"file scheme", "file:///etc/passwd", "scheme"},
		{"ftp scheme", "ftp://example.com/g.json", "scheme"},
		{"localhost", "http://localhost/g.json", "localhost"},
		{"localhost subdomain", "http://api.localhost/g.json", "localhost"},
		{"loopback", "http://127.0.0.1:8080/g.json", "private IP"},
		{"rfc1918", "http://192.168.1.10/g.json", "private IP"},
		{"metadata", "http://169.254.169.254/latest", "private IP"},
		{"ipv6 loopback", "http://[::1]/g.json", "private IP"},
		{"userinfo", "http://example.com@127.0.0.1/", "userinfo"},
		{"no host", "http:///g.json", "hostname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ValidateURL(tt.url)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	private := []string{"10.1.2.3", "172.20.0.1", "127.0.0.1", "0.0.0.0", "224.0.0.1", "fd00::1", "fe80::1", "2001:db8::1"}
	public := []string{"8.8.8.8", "172.32.0.1", "2606:4700:4700::1111"}

	for _, s := range private {
		assert.True(t, isPrivateIP(net.ParseIP(s)), s)
	}
	for _, s := range public {
		assert.False(t, isPrivateIP(net.ParseIP(s)), s)
	}
}

func TestGetBlocksLoopbackServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	_, err := New(time.Second).Get(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private IP")

	resp, err := NewWithOptions(time.Second, Options{BlockPrivateIP: util.Ptr(false)}).Get(context.Background(), ts.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRedirectLimit(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, ts.URL+"/again", http.StatusFound)
	}))
	defer ts.Close()

	c := NewWithOptions(time.Second, Options{BlockPrivateIP: util.Ptr(false), MaxRedirects: util.Ptr(2)})
	_, err := c.Get(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 2 redirects")
}
