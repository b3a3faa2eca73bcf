// Package arch detects when the current process and its parent run under
// different architecture-compatibility subsystems (WoW64), which decides
// whether the parent can be edited directly or needs a helper of the other
// bitness.
package arch

import (
	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/pkg/types"
)

// mismatch compares the two subsystem flags.
func mismatch(parent types.ProcessID, self, parentWow64 bool) types.ProcessID {
	if self != parentWow64 {
		logger.L.Debug("architecture mismatch", "parent", parent, "self_wow64", self, "parent_wow64", parentWow64)
		return parent
	}
	return 0
}

// openFunc opens a process for querying and returns its handle and closer.
type openFunc func(types.ProcessID) (types.Handle, func() error, error)

// queryParent reports whether parent runs under WoW64. A parent that cannot
// be opened is assumed native; a query that fails on an opened parent is an
// error.
func queryParent(parent types.ProcessID, open openFunc, query func(types.Handle) (bool, error)) (bool, error) {
	h, closeFn, err := open(parent)
	if err != nil {
		logger.L.Warn("cannot open parent, assuming native", "parent", parent, "error", err)
		return false, nil
	}
	defer closeFn()
	return query(h)
}
