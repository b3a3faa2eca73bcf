//go:build !windows

package sysinfo

import (
	"time"

	"github.com/joshuapare/wininterop/pkg/types"
)

func Version() (types.OSVersion, error) {
	return types.OSVersion{}, types.Unsupported("Version")
}

func BroadcastEnvironmentChange(timeout time.Duration) error {
	if _, err := checkTimeout(timeout); err != nil {
		return err
	}
	return types.Unsupported("BroadcastEnvironmentChange")
}
