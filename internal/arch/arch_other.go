//go:build !windows

package arch

import "github.com/joshuapare/wininterop/pkg/types"

// IsWow64 is only meaningful on Windows.
func IsWow64(types.Handle) (bool, error) { return false, types.Unsupported("IsWow64") }

// IsWow64Current is only meaningful on Windows.
func IsWow64Current() (bool, error) { return false, types.Unsupported("IsWow64") }

// ProcessIsWow64 is only meaningful on Windows.
func ProcessIsWow64(types.ProcessID) (bool, error) { return false, types.Unsupported("IsWow64") }

// DetectMismatch is only meaningful on Windows.
func DetectMismatch() (types.ProcessID, error) { return 0, types.Unsupported("DetectMismatch") }
