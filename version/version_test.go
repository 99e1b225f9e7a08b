package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	defer func(c, b, v string) { CommitHash, BuildTime, Version = c, b, v }(CommitHash, BuildTime, Version)

	CommitHash = "0123456789abcdef"
	BuildTime = "2026-10-18T09:00:00Z"
	Version = "v0.3.0"

	info := Get()
	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, "0123456", info.Short())
	assert.Contains(t, info.String(), "cosmograph v0.3.0 (commit 0123456")
}

func TestShortKeepsShortHashes(t *testing.T) {
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}
