//go:build !windows

package inject

import "github.com/joshuapare/wininterop/pkg/types"

type osSystem struct{}

func (osSystem) Resolve(types.ProcessID, []EntryPoint) (uintptr, error) {
	return 0, types.Unsupported("SetEnv")
}

func (osSystem) Open(types.ProcessID) (remoteProcess, error) {
	return nil, types.Unsupported("SetEnv")
}
