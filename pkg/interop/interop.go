package interop

import (
	"github.com/joshuapare/wininterop/internal/arch"
	"github.com/joshuapare/wininterop/internal/inject"
	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/internal/proc"
	"github.com/joshuapare/wininterop/pkg/types"
)

type envSetter interface {
	SetEnv(pid types.ProcessID, edit types.EnvEdit) (types.Outcome, error)
}

// Client performs environment injection with a fixed configuration.
// A Client is safe for concurrent use.
type Client struct {
	inj    envSetter
	locate func() (pid, parent types.ProcessID, err error)
}

// New returns a Client configured by opts.
func New(opts Options) *Client {
	return &Client{
		inj:    inject.New(opts.Inject),
		locate: proc.LocateCurrentAndParent,
	}
}

var defaultClient = New(Options{})

// SetEnv sets key to value in process pid. An empty value removes the
// variable. Keys and values are limited to types.MaxEnvFieldLen bytes.
//
// OutcomeDeclined means the target's C runtime refused the edit; it is not
// an error. The call blocks until the target has applied the edit, without
// a timeout.
func (c *Client) SetEnv(pid types.ProcessID, key, value []byte) (types.Outcome, error) {
	return c.inj.SetEnv(pid, types.EnvEdit{Key: key, Value: value})
}

// SetParentEnv sets key to value in the caller's parent process.
func (c *Client) SetParentEnv(key, value []byte) (types.Outcome, error) {
	edit := types.EnvEdit{Key: key, Value: value}
	if err := inject.Validate(edit); err != nil {
		return 0, err
	}
	_, parent, err := c.locate()
	if err != nil {
		return 0, err
	}
	logger.L.Debug("setting parent environment", "parent", parent, "key", string(key))
	return c.inj.SetEnv(parent, edit)
}

// SetEnv calls SetEnv on the default Client.
func SetEnv(pid types.ProcessID, key, value []byte) (types.Outcome, error) {
	return defaultClient.SetEnv(pid, key, value)
}

// SetParentEnv calls SetParentEnv on the default Client.
func SetParentEnv(key, value []byte) (types.Outcome, error) {
	return defaultClient.SetParentEnv(key, value)
}

// CurrentProcessID returns the caller's process id.
func CurrentProcessID() types.ProcessID { return proc.CurrentProcessID() }

// LocateCurrentAndParent returns the caller's pid and its parent's pid from a
// fresh process snapshot.
func LocateCurrentAndParent() (pid, parent types.ProcessID, err error) {
	return proc.LocateCurrentAndParent()
}

// WaitAny blocks until one of handles signals, then returns its index and
// exit code. Only the signalled handle is closed; the rest stay with the
// caller.
func WaitAny(handles []types.Handle) (index int, exitCode uint32, err error) {
	return proc.WaitAny(handles)
}

// IsWow64 reports whether the process behind h runs as 32-bit code on a
// 64-bit system. It reports false when the OS has no such notion.
func IsWow64(h types.Handle) (bool, error) { return arch.IsWow64(h) }

// IsWow64Current is IsWow64 for the calling process.
func IsWow64Current() (bool, error) { return arch.IsWow64Current() }

// DetectMismatch returns the parent's pid when the caller and its parent run
// under different WoW64 modes, else 0.
func DetectMismatch() (types.ProcessID, error) { return arch.DetectMismatch() }
