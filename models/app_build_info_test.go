package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "deadbeef")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: deadbeef\n", info.String())
}
