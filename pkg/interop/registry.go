package interop

import (
	"github.com/joshuapare/wininterop/internal/registry"
	"github.com/joshuapare/wininterop/pkg/types"
)

// WriteStringValue stores data as a REG_SZ value named name under
// root\path. The key must exist; a missing key yields ErrNotFound.
func WriteStringValue(root types.Root, path, name string, data []byte) error {
	return WriteValue(types.RegistryTarget{Root: root, Path: path, Name: name, Type: types.REG_SZ, Data: data})
}

// WriteValue is WriteStringValue with an explicit type. Only REG_SZ is
// supported; anything else fails with ErrUnsupportedValueType.
func WriteValue(target types.RegistryTarget) error {
	return registry.WriteStringValue(target)
}

// ReadStringValue returns the string value name under root\path.
func ReadStringValue(root types.Root, path, name string) (string, error) {
	return registry.ReadStringValue(root, path, name)
}
