//go:build windows

package proc

import (
	"errors"
	"iter"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/pkg/types"
)

// Access rights used by callers of Open.
const (
	// AccessQuery is enough to ask a process about itself (IsWow64Process).
	AccessQuery = windows.PROCESS_QUERY_LIMITED_INFORMATION

	// AccessInject covers everything needed to run a remote thread with a
	// payload written into the target.
	AccessInject = windows.PROCESS_QUERY_INFORMATION |
		windows.PROCESS_VM_OPERATION |
		windows.PROCESS_VM_WRITE |
		windows.PROCESS_VM_READ |
		windows.PROCESS_CREATE_THREAD
)

// CurrentProcessID returns the caller's process id.
func CurrentProcessID() types.ProcessID {
	return types.ProcessID(windows.GetCurrentProcessId())
}

// LocateCurrentAndParent returns the caller's pid and the pid of the process
// that created it, read from a full process snapshot.
func LocateCurrentAndParent() (pid, parent types.ProcessID, err error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, 0, types.NewOSError("CreateToolhelp32Snapshot", err)
	}
	defer windows.CloseHandle(snap)

	pid = CurrentProcessID()
	parent, err = findParent(processEntries(snap), pid)
	if err != nil {
		return 0, 0, err
	}
	logger.L.Debug("located parent process", "pid", pid, "parent", parent)
	return pid, parent, nil
}

// processEntries walks a TH32CS_SNAPPROCESS snapshot.
func processEntries(snap windows.Handle) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		var pe windows.ProcessEntry32
		pe.Size = uint32(unsafe.Sizeof(pe))

		op := "Process32First"
		err := windows.Process32First(snap, &pe)
		for err == nil {
			e := Entry{
				PID:       types.ProcessID(pe.ProcessID),
				ParentPID: types.ProcessID(pe.ParentProcessID),
				ExeFile:   windows.UTF16ToString(pe.ExeFile[:]),
			}
			if !yield(e, nil) {
				return
			}
			op = "Process32Next"
			err = windows.Process32Next(snap, &pe)
		}
		if !errors.Is(err, windows.ERROR_NO_MORE_FILES) {
			yield(Entry{}, types.NewOSError(op, err))
		}
	}
}

// ModuleBase returns the load address of module inside process pid. The
// module name is matched case-insensitively against the base file name.
func ModuleBase(pid types.ProcessID, module string) (uintptr, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, uint32(pid))
	if err != nil {
		return 0, types.NewOSError("CreateToolhelp32Snapshot(modules)", err)
	}
	defer windows.CloseHandle(snap)

	var me windows.ModuleEntry32
	me.Size = uint32(unsafe.Sizeof(me))
	for err = windows.Module32First(snap, &me); err == nil; err = windows.Module32Next(snap, &me) {
		if strings.EqualFold(windows.UTF16ToString(me.Module[:]), module) {
			return me.ModBaseAddr, nil
		}
	}
	if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return 0, types.NotFoundf("module %s not loaded in process %d", module, pid)
	}
	return 0, types.NewOSError("Module32Next", err)
}

// Process is an owned handle to another process. Close it exactly once; extra
// calls are no-ops.
type Process struct {
	h   windows.Handle
	pid types.ProcessID
}

// Open opens pid with the given access rights.
func Open(pid types.ProcessID, access uint32) (*Process, error) {
	h, err := windows.OpenProcess(access, false, uint32(pid))
	if err != nil {
		return nil, types.NewOSError("OpenProcess", err)
	}
	logger.L.Debug("opened process", "pid", pid, "access", access)
	return &Process{h: h, pid: pid}, nil
}

// Handle returns the raw OS handle. It stays owned by p.
func (p *Process) Handle() windows.Handle { return p.h }

// PID returns the process id p was opened with.
func (p *Process) PID() types.ProcessID { return p.pid }

// Close releases the handle.
func (p *Process) Close() error {
	if p == nil || p.h == 0 {
		return nil
	}
	h := p.h
	p.h = 0
	if err := windows.CloseHandle(h); err != nil {
		return types.NewOSError("CloseHandle", err)
	}
	return nil
}

// WaitAny blocks, with no timeout, until one of handles is signalled. It
// returns that handle's index and exit code and closes that handle only; the
// rest stay open and remain the caller's responsibility.
func WaitAny(handles []types.Handle) (index int, exitCode uint32, err error) {
	if err := checkWaitHandles(handles); err != nil {
		return -1, 0, err
	}

	hs := make([]windows.Handle, len(handles))
	for i, h := range handles {
		hs[i] = windows.Handle(h)
	}

	event, err := windows.WaitForMultipleObjects(hs, false, windows.INFINITE)
	if err != nil {
		return -1, 0, types.NewOSError("WaitForMultipleObjects", err)
	}
	index = int(event - windows.WAIT_OBJECT_0)
	if index < 0 || index >= len(hs) {
		return -1, 0, &types.Error{Kind: types.ErrKindOS, Msg: "WaitForMultipleObjects: unexpected wait status"}
	}

	defer windows.CloseHandle(hs[index])
	if err := windows.GetExitCodeProcess(hs[index], &exitCode); err != nil {
		return index, 0, types.NewOSError("GetExitCodeProcess", err)
	}
	logger.L.Debug("process handle signalled", "index", index, "exit_code", exitCode)
	return index, exitCode, nil
}
