//go:build windows

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v, err := Version()
	require.NoError(t, err)
	// Go itself requires Windows 10 or later.
	assert.GreaterOrEqual(t, v.Major, uint32(10))
	assert.NotZero(t, v.Build)
	assert.Contains(t, v.String(), ".")
}

func TestBroadcastEnvironmentChange(t *testing.T) {
	if testing.Short() {
		t.Skip("broadcast touches every top-level window")
	}
	assert.NoError(t, BroadcastEnvironmentChange(DefaultBroadcastTimeout))
}
