// Package inject sets an environment variable inside another process, in
// practice the caller's parent, by starting a thread in that process whose
// entry point is a C runtime function taking a single "KEY=VALUE" argument.
//
// Locating that function in the target is best-effort: it must already be
// loaded there, and its address is derived from the target's own module base
// so differing load addresses are tolerated. When no candidate is mapped the
// call fails before anything is written into the target.
package inject

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/wininterop/internal/codepage"
	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/pkg/types"
)

// EntryPoint names an exported function that applies one environment edit
// from a single NUL-terminated UTF-16 "KEY=VALUE" argument, returning 0 on
// success and -1 when it refuses the edit.
type EntryPoint struct {
	Module string
	Proc   string
}

func (e EntryPoint) String() string { return e.Module + "!" + e.Proc }

// DefaultEntryPoints are tried in order.
var DefaultEntryPoints = []EntryPoint{
	{Module: "msvcrt.dll", Proc: "_wputenv"},
	{Module: "ucrtbase.dll", Proc: "_wputenv"},
}

// Options configures an Injector.
type Options struct {
	// EntryPoints overrides DefaultEntryPoints when non-empty.
	EntryPoints []EntryPoint
}

// declinedStatus is the thread exit code of an entry point returning -1.
const declinedStatus = 0xFFFFFFFF

// remoteProcess is an opened target process.
type remoteProcess interface {
	Alloc(size int) (uintptr, error)
	Write(addr uintptr, data []byte) error
	Free(addr uintptr) error
	StartThread(entry, arg uintptr) (remoteThread, error)
	Close() error
}

// remoteThread is a thread started inside a remoteProcess.
type remoteThread interface {
	Wait() error
	ExitCode() (uint32, error)
	Close() error
}

// system is the OS boundary of the injector.
type system interface {
	Resolve(pid types.ProcessID, candidates []EntryPoint) (uintptr, error)
	Open(pid types.ProcessID) (remoteProcess, error)
}

// Injector applies environment edits to other processes.
type Injector struct {
	entryPoints []EntryPoint
	sys         system
}

// New returns an Injector using the host OS.
func New(opts Options) *Injector {
	return newInjector(opts, osSystem{})
}

func newInjector(opts Options, sys system) *Injector {
	eps := opts.EntryPoints
	if len(eps) == 0 {
		eps = DefaultEntryPoints
	}
	return &Injector{entryPoints: eps, sys: sys}
}

// Validate reports whether edit could be sent to another process, without
// touching the OS.
func Validate(edit types.EnvEdit) error {
	_, err := encodePayload(edit)
	return err
}

// SetEnv sets edit.Key to edit.Value in process pid. An empty value removes
// the variable.
//
// The remote thread is waited for without a timeout: an unresponsive target
// blocks the caller indefinitely.
func (inj *Injector) SetEnv(pid types.ProcessID, edit types.EnvEdit) (types.Outcome, error) {
	payload, err := encodePayload(edit)
	if err != nil {
		return 0, err
	}

	entry, err := inj.sys.Resolve(pid, inj.entryPoints)
	if err != nil {
		return 0, err
	}

	p, err := inj.sys.Open(pid)
	if err != nil {
		return 0, err
	}
	defer release("close process", pid, p.Close)

	addr, err := p.Alloc(len(payload))
	if err != nil {
		return 0, err
	}
	running := false
	defer func() {
		// Freeing the block under a live thread would fault the target.
		if running {
			logger.L.Warn("remote thread still running, leaving block allocated", "pid", pid, "addr", addr)
			return
		}
		release("free remote block", pid, func() error { return p.Free(addr) })
	}()

	if err := p.Write(addr, payload); err != nil {
		return 0, err
	}

	th, err := p.StartThread(entry, addr)
	if err != nil {
		return 0, err
	}
	defer release("close remote thread", pid, th.Close)
	running = true

	if err := th.Wait(); err != nil {
		return 0, err
	}
	running = false

	status, err := th.ExitCode()
	if err != nil {
		return 0, err
	}
	logger.L.Debug("remote thread finished", "pid", pid, "status", status)
	return mapStatus(status)
}

// encodePayload validates edit and renders the block written into the
// target: UTF-16LE "KEY=VALUE" followed by a NUL unit.
func encodePayload(edit types.EnvEdit) ([]byte, error) {
	if len(edit.Key) > types.MaxEnvFieldLen {
		return nil, types.InvalidArgf("environment key is %d bytes, limit is %d", len(edit.Key), types.MaxEnvFieldLen)
	}
	if len(edit.Value) > types.MaxEnvFieldLen {
		return nil, types.InvalidArgf("environment value is %d bytes, limit is %d", len(edit.Value), types.MaxEnvFieldLen)
	}
	if len(edit.Key) == 0 {
		return nil, types.InvalidArgf("environment key is empty")
	}
	if bytes.IndexByte(edit.Key, 0) >= 0 || bytes.IndexByte(edit.Value, 0) >= 0 {
		return nil, types.InvalidArgf("environment key and value must not contain NUL")
	}

	assignment := make([]byte, 0, len(edit.Key)+1+len(edit.Value))
	assignment = append(assignment, edit.Key...)
	assignment = append(assignment, '=')
	assignment = append(assignment, edit.Value...)

	w, err := codepage.EncodeUTF16LE(assignment)
	if err != nil {
		return nil, err
	}
	return append(w, 0, 0), nil
}

func mapStatus(status uint32) (types.Outcome, error) {
	switch status {
	case 0:
		return types.OutcomeSet, nil
	case declinedStatus:
		return types.OutcomeDeclined, nil
	default:
		return 0, &types.Error{Kind: types.ErrKindOS, Msg: fmt.Sprintf("remote thread exited with status 0x%08X", status)}
	}
}

// release runs a cleanup step. Its failure is logged and never replaces the
// result of the edit, which has already happened or failed by then.
func release(what string, pid types.ProcessID, fn func() error) {
	if err := fn(); err != nil {
		logger.L.Warn(what+" failed", "pid", pid, "error", err)
	}
}
