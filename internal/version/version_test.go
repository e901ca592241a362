package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShort tests that Short returns the bare version.
func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
	assert.NotContains(t, Short(), " ")
}

// TestFull tests the layout printed by --version.
func TestFull(t *testing.T) {
	t.Parallel()

	parts := strings.Split(Full(), ", ")
	require.Len(t, parts, 3)

	assert.Equal(t, "version: "+Version, parts[0])
	assert.Equal(t, "commit: "+Commit, parts[1])
	assert.Equal(t, "built at: "+BuildTime, parts[2])
}

// TestDefaults tests the values used when the build sets no ldflags.
func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.Regexp(t, `^\d+\.\d+\.\d+`, Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, BuildTime)
}
