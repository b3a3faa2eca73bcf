//go:build windows

package registry

import (
	"errors"

	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"

	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/pkg/types"
)

var roots = [...]winreg.Key{
	types.RootClassesRoot:  winreg.CLASSES_ROOT,
	types.RootCurrentUser:  winreg.CURRENT_USER,
	types.RootLocalMachine: winreg.LOCAL_MACHINE,
	types.RootUsers:        winreg.USERS,
}

func missing(err error) bool {
	return errors.Is(err, windows.ERROR_FILE_NOT_FOUND) || errors.Is(err, windows.ERROR_PATH_NOT_FOUND)
}

// WriteStringValue writes t.Data as a REG_SZ value. The terminating NUL is
// added here.
func WriteStringValue(t types.RegistryTarget) error {
	if err := checkTarget(t); err != nil {
		return err
	}

	k, err := winreg.OpenKey(roots[t.Root], t.Path, winreg.SET_VALUE)
	if err != nil {
		if missing(err) {
			return &types.Error{Kind: types.ErrKindNotFound, Msg: "RegOpenKeyEx " + t.Root.String() + `\` + t.Path, Err: err}
		}
		return types.NewOSError("RegOpenKeyEx", err)
	}
	defer k.Close()

	if err := k.SetStringValue(t.Name, string(t.Data)); err != nil {
		return types.NewOSError("RegSetValueEx", err)
	}
	logger.L.Debug("registry value written", "root", t.Root.String(), "path", t.Path, "name", t.Name)
	return nil
}

// ReadStringValue reads a REG_SZ or REG_EXPAND_SZ value without expanding it.
func ReadStringValue(root types.Root, path, name string) (string, error) {
	if err := checkRoot(root); err != nil {
		return "", err
	}

	k, err := winreg.OpenKey(roots[root], path, winreg.QUERY_VALUE)
	if err != nil {
		if missing(err) {
			return "", &types.Error{Kind: types.ErrKindNotFound, Msg: "RegOpenKeyEx " + root.String() + `\` + path, Err: err}
		}
		return "", types.NewOSError("RegOpenKeyEx", err)
	}
	defer k.Close()

	s, _, err := k.GetStringValue(name)
	switch {
	case err == nil:
		return s, nil
	case missing(err):
		return "", &types.Error{Kind: types.ErrKindNotFound, Msg: "RegQueryValueEx " + name, Err: err}
	case errors.Is(err, winreg.ErrUnexpectedType):
		return "", types.ErrUnsupportedValueType
	default:
		return "", types.NewOSError("RegQueryValueEx", err)
	}
}
