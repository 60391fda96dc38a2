package buildinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	info := Get()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestString_Format(t *testing.T) {
	s := String()

	assert.True(t, strings.HasPrefix(s, Version))
	assert.Contains(t, s, Commit)
	assert.Contains(t, s, BuildTime)
}
