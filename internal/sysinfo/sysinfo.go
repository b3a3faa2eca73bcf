// Package sysinfo reports the running Windows version and announces
// environment changes to top-level windows.
package sysinfo

import (
	"time"

	"github.com/joshuapare/wininterop/pkg/types"
)

// DefaultBroadcastTimeout bounds how long each window may take to answer
// an environment change broadcast.
const DefaultBroadcastTimeout = 5 * time.Second

func checkTimeout(d time.Duration) (uint32, error) {
	if d < 0 {
		return 0, types.InvalidArgf("broadcast timeout %s is negative", d)
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)>>1) {
		return 0, types.InvalidArgf("broadcast timeout %s too large", d)
	}
	return uint32(ms), nil
}
