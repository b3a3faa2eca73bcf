//go:build windows

package arch

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/internal/proc"
	"github.com/joshuapare/wininterop/pkg/types"
)

// isWow64Process resolves IsWow64Process once. A nil proc means the running
// Windows predates it, so no process can be under WoW64.
var isWow64Process = sync.OnceValue(func() *windows.LazyProc {
	p := windows.NewLazySystemDLL("kernel32.dll").NewProc("IsWow64Process")
	if err := p.Find(); err != nil {
		logger.L.Debug("IsWow64Process unavailable", "error", err)
		return nil
	}
	return p
})

// IsWow64 reports whether the process behind h runs under WoW64.
func IsWow64(h types.Handle) (bool, error) {
	p := isWow64Process()
	if p == nil {
		return false, nil
	}
	var flag int32
	r1, _, e1 := p.Call(uintptr(h), uintptr(unsafe.Pointer(&flag)))
	if r1 == 0 {
		return false, types.NewOSError("IsWow64Process", e1)
	}
	return flag != 0, nil
}

// IsWow64Current reports whether the calling process runs under WoW64.
func IsWow64Current() (bool, error) {
	return IsWow64(types.Handle(windows.CurrentProcess()))
}

// ProcessIsWow64 opens pid with query-only rights and reports whether it runs
// under WoW64.
func ProcessIsWow64(pid types.ProcessID) (bool, error) {
	p, err := proc.Open(pid, proc.AccessQuery)
	if err != nil {
		return false, err
	}
	defer p.Close()
	return IsWow64(types.Handle(p.Handle()))
}

// DetectMismatch returns the parent's pid when the parent and the current
// process run under different subsystems, and 0 otherwise. A parent that
// cannot be opened is assumed not to run under WoW64; any other failure is
// returned.
func DetectMismatch() (types.ProcessID, error) {
	_, parent, err := proc.LocateCurrentAndParent()
	if err != nil {
		return 0, err
	}
	self, err := IsWow64Current()
	if err != nil {
		return 0, err
	}

	parentWow64, err := queryParent(parent, openForQuery, IsWow64)
	if err != nil {
		return 0, err
	}
	return mismatch(parent, self, parentWow64), nil
}

func openForQuery(pid types.ProcessID) (types.Handle, func() error, error) {
	p, err := proc.Open(pid, proc.AccessQuery)
	if err != nil {
		return 0, nil, err
	}
	return types.Handle(p.Handle()), p.Close, nil
}
