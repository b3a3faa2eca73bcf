//go:build !windows

package registry

import "github.com/joshuapare/wininterop/pkg/types"

// WriteStringValue validates t; the registry only exists on Windows.
func WriteStringValue(t types.RegistryTarget) error {
	if err := checkTarget(t); err != nil {
		return err
	}
	return types.Unsupported("WriteStringValue")
}

// ReadStringValue validates root; the registry only exists on Windows.
func ReadStringValue(root types.Root, path, name string) (string, error) {
	if err := checkRoot(root); err != nil {
		return "", err
	}
	return "", types.Unsupported("ReadStringValue")
}
