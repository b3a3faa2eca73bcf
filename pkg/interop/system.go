package interop

import (
	"time"

	"github.com/joshuapare/wininterop/internal/sysinfo"
	"github.com/joshuapare/wininterop/pkg/types"
)

// DefaultBroadcastTimeout is used by BroadcastEnvironmentChange for a zero
// timeout.
const DefaultBroadcastTimeout = sysinfo.DefaultBroadcastTimeout

// Version returns the running Windows version.
func Version() (types.OSVersion, error) { return sysinfo.Version() }

// BroadcastEnvironmentChange asks running programs, Explorer in particular,
// to reload the environment after a registry write. A zero timeout uses
// DefaultBroadcastTimeout.
func BroadcastEnvironmentChange(timeout time.Duration) error {
	if timeout == 0 {
		timeout = DefaultBroadcastTimeout
	}
	return sysinfo.BroadcastEnvironmentChange(timeout)
}
