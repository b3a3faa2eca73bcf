// Package registry writes string values into the live Windows registry under
// one of four predefined roots. Keys are never created: writing below a
// missing path reports ErrNotFound.
package registry

import (
	"bytes"

	"github.com/joshuapare/wininterop/pkg/types"
)

// checkTarget rejects targets this package will not send to the OS.
func checkTarget(t types.RegistryTarget) error {
	if !t.Root.Valid() {
		return types.InvalidArgf("registry root %d out of range", int(t.Root))
	}
	if t.Type != types.REG_SZ {
		return &types.Error{Kind: types.ErrKindOS, Msg: "registry value type " + t.Type.String(), Err: types.ErrUnsupportedValueType}
	}
	if bytes.IndexByte(t.Data, 0) >= 0 {
		return types.InvalidArgf("string data must not contain NUL")
	}
	return nil
}

func checkRoot(root types.Root) error {
	if !root.Valid() {
		return types.InvalidArgf("registry root %d out of range", int(root))
	}
	return nil
}
