//go:build !windows

package proc

import (
	"os"

	"github.com/joshuapare/wininterop/pkg/types"
)

// CurrentProcessID returns the caller's process id.
func CurrentProcessID() types.ProcessID {
	return types.ProcessID(os.Getpid())
}

// LocateCurrentAndParent is only implemented on Windows.
func LocateCurrentAndParent() (pid, parent types.ProcessID, err error) {
	return 0, 0, types.Unsupported("LocateCurrentAndParent")
}

// ModuleBase is only implemented on Windows.
func ModuleBase(pid types.ProcessID, module string) (uintptr, error) {
	return 0, types.Unsupported("ModuleBase")
}

// WaitAny validates its arguments, then reports that waiting on process
// handles is only implemented on Windows.
func WaitAny(handles []types.Handle) (index int, exitCode uint32, err error) {
	if err := checkWaitHandles(handles); err != nil {
		return -1, 0, err
	}
	return -1, 0, types.Unsupported("WaitAny")
}
