// Package proc locates the current process and its parent in the OS process
// table and owns the process-handle plumbing shared by the injector and the
// architecture probe.
package proc

import (
	"iter"

	"github.com/joshuapare/wininterop/pkg/types"
)

// Entry is one row of a process snapshot.
type Entry struct {
	PID       types.ProcessID
	ParentPID types.ProcessID
	ExeFile   string
}

// findParent scans entries from the first onward and returns the parent pid
// recorded for self. The scan stops at the first matching row.
func findParent(entries iter.Seq2[Entry, error], self types.ProcessID) (types.ProcessID, error) {
	for e, err := range entries {
		if err != nil {
			return 0, err
		}
		if e.PID == self {
			return e.ParentPID, nil
		}
	}
	return 0, types.ErrProcessNotListed
}

// checkWaitHandles validates the handle set handed to WaitAny before any OS call.
func checkWaitHandles(handles []types.Handle) error {
	if len(handles) == 0 {
		return types.InvalidArgf("wait: no handles")
	}
	if len(handles) > types.MaxWaitHandles {
		return types.InvalidArgf("wait: %d handles exceeds limit of %d", len(handles), types.MaxWaitHandles)
	}
	return nil
}
