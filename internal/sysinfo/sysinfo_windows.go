//go:build windows

package sysinfo

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/pkg/types"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	hwndBroadcast   = 0xFFFF
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

// Version returns the kernel version. RtlGetVersion is not subject to the
// compatibility shims that make GetVersionEx lie to unmanifested programs.
func Version() (types.OSVersion, error) {
	vi := windows.RtlGetVersion()
	if vi == nil {
		return types.OSVersion{}, types.NewOSError("RtlGetVersion", nil)
	}
	return types.OSVersion{
		Major:       vi.MajorVersion,
		Minor:       vi.MinorVersion,
		Build:       vi.BuildNumber,
		ServicePack: windows.UTF16ToString(vi.CsdVersion[:]),
	}, nil
}

// BroadcastEnvironmentChange tells every top-level window that the
// "Environment" setting changed. Hung windows are skipped.
func BroadcastEnvironmentChange(timeout time.Duration) error {
	ms, err := checkTimeout(timeout)
	if err != nil {
		return err
	}
	if err := procSendMessageTimeoutW.Find(); err != nil {
		return types.NewOSError("SendMessageTimeoutW", err)
	}
	param, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return types.InvalidArgf("%v", err)
	}

	var result uintptr
	r1, _, e1 := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		uintptr(ms),
		uintptr(unsafe.Pointer(&result)),
	)
	if r1 == 0 {
		return types.NewOSError("SendMessageTimeoutW", e1)
	}
	logger.L.Debug("environment change broadcast", "timeout", timeout)
	return nil
}
