package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	noInfo := func() (*debug.BuildInfo, bool) { return nil, false }
	withInfo := func(info *debug.BuildInfo) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) { return info, true }
	}

	t.Run("ldflags version wins", func(t *testing.T) {
		assert.Equal(t, "1.2.0", resolve("1.2.0", noInfo))
	})

	t.Run("no build info", func(t *testing.T) {
		assert.Equal(t, "dev", resolve("dev", noInfo))
	})

	t.Run("module version", func(t *testing.T) {
		info := &debug.BuildInfo{Main: debug.Module{Version: "v0.4.1"}}
		assert.Equal(t, "v0.4.1", resolve("dev", withInfo(info)))
	})

	t.Run("vcs revision", func(t *testing.T) {
		info := &debug.BuildInfo{
			Main: debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			},
		}
		assert.Equal(t, "dev-0123456", resolve("", withInfo(info)))
	})
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
