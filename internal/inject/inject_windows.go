//go:build windows

package inject

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/wininterop/internal/arch"
	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/internal/proc"
	"github.com/joshuapare/wininterop/pkg/types"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procVirtualAllocEx     = modkernel32.NewProc("VirtualAllocEx")
	procVirtualFreeEx      = modkernel32.NewProc("VirtualFreeEx")
	procCreateRemoteThread = modkernel32.NewProc("CreateRemoteThread")
	procGetExitCodeThread  = modkernel32.NewProc("GetExitCodeThread")
)

type osSystem struct{}

// Resolve returns the address, inside pid, of the first candidate that is
// loaded there. The address is the target's module base plus the export's
// offset in our own copy of the module.
func (osSystem) Resolve(pid types.ProcessID, candidates []EntryPoint) (uintptr, error) {
	self, err := arch.IsWow64Current()
	if err != nil {
		return 0, err
	}
	target, err := arch.ProcessIsWow64(pid)
	if err != nil {
		return 0, err
	}
	if self != target {
		return 0, &types.Error{Kind: types.ErrKindOS, Msg: "ResolveEntryPoint: target runs under a different architecture subsystem"}
	}

	var errs []error
	for _, ep := range candidates {
		addr, err := resolveEntryPoint(pid, ep)
		if err == nil {
			logger.L.Debug("resolved entry point", "pid", pid, "entry", ep.String(), "addr", addr)
			return addr, nil
		}
		errs = append(errs, err)
	}
	return 0, &types.Error{Kind: types.ErrKindOS, Msg: "ResolveEntryPoint: no candidate mapped in target", Err: errors.Join(errs...)}
}

func resolveEntryPoint(pid types.ProcessID, ep EntryPoint) (uintptr, error) {
	remoteBase, err := proc.ModuleBase(pid, ep.Module)
	if err != nil {
		return 0, err
	}
	dll := windows.NewLazySystemDLL(ep.Module)
	fn := dll.NewProc(ep.Proc)
	if err := fn.Find(); err != nil {
		return 0, types.NewOSError("GetProcAddress("+ep.String()+")", err)
	}
	return remoteBase + (fn.Addr() - dll.Handle()), nil
}

func (osSystem) Open(pid types.ProcessID) (remoteProcess, error) {
	p, err := proc.Open(pid, proc.AccessInject)
	if err != nil {
		return nil, err
	}
	return osProcess{p}, nil
}

type osProcess struct {
	*proc.Process
}

func (p osProcess) Alloc(size int) (uintptr, error) {
	addr, _, e1 := procVirtualAllocEx.Call(
		uintptr(p.Handle()), 0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if addr == 0 {
		return 0, types.OutOfMemory("VirtualAllocEx", e1)
	}
	return addr, nil
}

func (p osProcess) Write(addr uintptr, data []byte) error {
	var written uintptr
	if err := windows.WriteProcessMemory(p.Handle(), addr, &data[0], uintptr(len(data)), &written); err != nil {
		return types.NewOSError("WriteProcessMemory", err)
	}
	if written != uintptr(len(data)) {
		return &types.Error{Kind: types.ErrKindOS, Msg: "WriteProcessMemory: short write"}
	}
	return nil
}

func (p osProcess) Free(addr uintptr) error {
	r1, _, e1 := procVirtualFreeEx.Call(uintptr(p.Handle()), addr, 0, windows.MEM_RELEASE)
	if r1 == 0 {
		return types.NewOSError("VirtualFreeEx", e1)
	}
	return nil
}

func (p osProcess) StartThread(entry, arg uintptr) (remoteThread, error) {
	h, _, e1 := procCreateRemoteThread.Call(uintptr(p.Handle()), 0, 0, entry, arg, 0, 0)
	if h == 0 {
		return nil, types.NewOSError("CreateRemoteThread", e1)
	}
	return osThread(h), nil
}

type osThread windows.Handle

func (t osThread) Wait() error {
	event, err := windows.WaitForSingleObject(windows.Handle(t), windows.INFINITE)
	if err != nil {
		return types.NewOSError("WaitForSingleObject", err)
	}
	if event != windows.WAIT_OBJECT_0 {
		return &types.Error{Kind: types.ErrKindOS, Msg: "WaitForSingleObject: unexpected wait status"}
	}
	return nil
}

func (t osThread) ExitCode() (uint32, error) {
	var code uint32
	r1, _, e1 := procGetExitCodeThread.Call(uintptr(t), uintptr(unsafe.Pointer(&code)))
	if r1 == 0 {
		return 0, types.NewOSError("GetExitCodeThread", e1)
	}
	return code, nil
}

func (t osThread) Close() error {
	if err := windows.CloseHandle(windows.Handle(t)); err != nil {
		return types.NewOSError("CloseHandle(thread)", err)
	}
	return nil
}
