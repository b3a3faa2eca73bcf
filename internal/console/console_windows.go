//go:build windows

package console

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/wininterop/internal/codepage"
	"github.com/joshuapare/wininterop/internal/logger"
	"github.com/joshuapare/wininterop/pkg/types"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modgdi32    = windows.NewLazySystemDLL("gdi32.dll")

	procSetConsoleTextAttribute     = modkernel32.NewProc("SetConsoleTextAttribute")
	procGetConsoleOutputCP          = modkernel32.NewProc("GetConsoleOutputCP")
	procGetConsoleCP                = modkernel32.NewProc("GetConsoleCP")
	procSetConsoleOutputCP          = modkernel32.NewProc("SetConsoleOutputCP")
	procSetConsoleCP                = modkernel32.NewProc("SetConsoleCP")
	procGetCurrentConsoleFontEx     = modkernel32.NewProc("GetCurrentConsoleFontEx")
	procFillConsoleOutputCharacterW = modkernel32.NewProc("FillConsoleOutputCharacterW")
	procMultiByteToWideChar         = modkernel32.NewProc("MultiByteToWideChar")
	procWideCharToMultiByte         = modkernel32.NewProc("WideCharToMultiByte")

	procCreateCompatibleDC = modgdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = modgdi32.NewProc("DeleteDC")
	procCreateFontW        = modgdi32.NewProc("CreateFontW")
	procSelectObject       = modgdi32.NewProc("SelectObject")
	procDeleteObject       = modgdi32.NewProc("DeleteObject")
	procGetGlyphIndicesW   = modgdi32.NewProc("GetGlyphIndicesW")
)

const (
	ggiMarkNonexistingGlyphs = 0x0001
	gdiError                 = 0xFFFFFFFF
	hgdiError                = ^uintptr(0)
	defaultCharset           = 1
)

var stdHandleIDs = [...]uint32{
	types.StdInput:  windows.STD_INPUT_HANDLE,
	types.StdOutput: windows.STD_OUTPUT_HANDLE,
	types.StdError:  windows.STD_ERROR_HANDLE,
}

// StdHandle returns the handle bound to the given standard stream. It fails
// with ErrNotFound when nothing is bound.
func StdHandle(kind types.StdHandleKind) (types.Handle, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	h, err := windows.GetStdHandle(stdHandleIDs[kind])
	if err != nil || h == 0 || h == windows.InvalidHandle {
		return 0, &types.Error{Kind: types.ErrKindNotFound, Msg: "GetStdHandle(" + kind.String() + ")", Err: err}
	}
	return types.Handle(h), nil
}

// ScreenBufferInfo snapshots the screen buffer behind h. It fails with
// ErrNotFound when h is not a console.
func ScreenBufferInfo(h types.Handle) (types.ScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(h), &info); err != nil {
		return types.ScreenBufferInfo{}, &types.Error{Kind: types.ErrKindNotFound, Msg: "GetConsoleScreenBufferInfo", Err: err}
	}
	return types.ScreenBufferInfo{
		Size:       coord(info.Size),
		Cursor:     coord(info.CursorPosition),
		Attributes: info.Attributes,
		Window: types.Rect{
			Left:   info.Window.Left,
			Top:    info.Window.Top,
			Right:  info.Window.Right,
			Bottom: info.Window.Bottom,
		},
		MaxWindowSize: coord(info.MaximumWindowSize),
	}, nil
}

func coord(c windows.Coord) types.Coord { return types.Coord{X: c.X, Y: c.Y} }

// packCoord passes a COORD by value.
func packCoord(c types.Coord) uintptr {
	return uintptr(uint16(c.X)) | uintptr(uint16(c.Y))<<16
}

// SetTextAttribute sets the attributes used for subsequently written text.
func SetTextAttribute(h types.Handle, attrs uint16) error {
	r1, _, e1 := procSetConsoleTextAttribute.Call(uintptr(h), uintptr(attrs))
	if r1 == 0 {
		return types.NewOSError("SetConsoleTextAttribute", e1)
	}
	return nil
}

// OutputCodePage returns the console's output code page.
func OutputCodePage() (uint32, error) {
	r1, _, e1 := procGetConsoleOutputCP.Call()
	if r1 == 0 {
		return 0, types.NewOSError("GetConsoleOutputCP", e1)
	}
	return uint32(r1), nil
}

// InputCodePage returns the console's input code page.
func InputCodePage() (uint32, error) {
	r1, _, e1 := procGetConsoleCP.Call()
	if r1 == 0 {
		return 0, types.NewOSError("GetConsoleCP", e1)
	}
	return uint32(r1), nil
}

// SetOutputCodePage changes the console's output code page.
func SetOutputCodePage(cp uint32) error {
	r1, _, e1 := procSetConsoleOutputCP.Call(uintptr(cp))
	if r1 == 0 {
		return types.NewOSError("SetConsoleOutputCP", e1)
	}
	return nil
}

// SetInputCodePage changes the console's input code page.
func SetInputCodePage(cp uint32) error {
	r1, _, e1 := procSetConsoleCP.Call(uintptr(cp))
	if r1 == 0 {
		return types.NewOSError("SetConsoleCP", e1)
	}
	return nil
}

// Write writes UTF-16LE text to the console behind h and returns the number
// of UTF-16 units the OS reports as written. A short count is returned as is
// and is not retried.
func Write(h types.Handle, wide []byte) (int, error) {
	units, err := codepage.Units(wide)
	if err != nil {
		return 0, err
	}
	if len(units) == 0 {
		return 0, nil
	}
	var written uint32
	if err := windows.WriteConsole(windows.Handle(h), &units[0], uint32(len(units)), &written, nil); err != nil {
		return int(written), types.NewOSError("WriteConsoleW", err)
	}
	if int(written) != len(units) {
		logger.L.Debug("short console write", "requested", len(units), "written", written)
	}
	return int(written), nil
}

// Mode returns the console mode of h.
func Mode(h types.Handle) (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return 0, types.NewOSError("GetConsoleMode", err)
	}
	return mode, nil
}

// SetMode replaces the console mode of h.
func SetMode(h types.Handle, mode uint32) error {
	if err := windows.SetConsoleMode(windows.Handle(h), mode); err != nil {
		return types.NewOSError("SetConsoleMode", err)
	}
	return nil
}

// FillOutputCharacter writes ch into n consecutive cells starting at at and
// returns how many cells were written.
func FillOutputCharacter(h types.Handle, ch uint16, n uint32, at types.Coord) (uint32, error) {
	var written uint32
	r1, _, e1 := procFillConsoleOutputCharacterW.Call(
		uintptr(h), uintptr(ch), uintptr(n), packCoord(at), uintptr(unsafe.Pointer(&written)))
	if r1 == 0 {
		return 0, types.NewOSError("FillConsoleOutputCharacterW", e1)
	}
	return written, nil
}

// consoleFontInfoEx is CONSOLE_FONT_INFOEX.
type consoleFontInfoEx struct {
	cbSize     uint32
	nFont      uint32
	dwFontSize windows.Coord
	fontFamily uint32
	fontWeight uint32
	faceName   [types.MaxFaceNameLen + 1]uint16
}

// CurrentFont describes the font used by the console behind h, for the
// current or the maximized window. It fails with ErrNotFound when the OS
// cannot report it.
func CurrentFont(h types.Handle, maximumWindow bool) (types.FontDescriptor, error) {
	if err := procGetCurrentConsoleFontEx.Find(); err != nil {
		return types.FontDescriptor{}, &types.Error{Kind: types.ErrKindNotFound, Msg: "GetCurrentConsoleFontEx", Err: err}
	}
	var info consoleFontInfoEx
	info.cbSize = uint32(unsafe.Sizeof(info))
	var bMax uintptr
	if maximumWindow {
		bMax = 1
	}
	r1, _, e1 := procGetCurrentConsoleFontEx.Call(uintptr(h), bMax, uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return types.FontDescriptor{}, &types.Error{Kind: types.ErrKindNotFound, Msg: "GetCurrentConsoleFontEx", Err: e1}
	}
	return types.FontDescriptor{
		Index:    info.nFont,
		CellSize: coord(info.dwFontSize),
		Family:   info.fontFamily,
		Weight:   info.fontWeight,
		FaceName: windows.UTF16ToString(info.faceName[:]),
	}, nil
}

// WideToMultibyte converts UTF-16LE text to code page cp. The first call
// sizes the output, the second fills it.
func WideToMultibyte(cp, flags uint32, wide []byte) ([]byte, error) {
	units, err := codepage.Units(wide)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return []byte{}, nil
	}
	r1, _, e1 := procWideCharToMultiByte.Call(
		uintptr(cp), uintptr(flags), uintptr(unsafe.Pointer(&units[0])), uintptr(len(units)), 0, 0, 0, 0)
	n := int32(r1)
	if n <= 0 {
		return nil, types.NewOSError("WideCharToMultiByte(size)", e1)
	}
	out := make([]byte, n)
	r1, _, e1 = procWideCharToMultiByte.Call(
		uintptr(cp), uintptr(flags), uintptr(unsafe.Pointer(&units[0])), uintptr(len(units)),
		uintptr(unsafe.Pointer(&out[0])), uintptr(n), 0, 0)
	if int32(r1) <= 0 {
		return nil, types.NewOSError("WideCharToMultiByte", e1)
	}
	return out[:int32(r1)], nil
}

// MultibyteToWide converts text in code page cp to UTF-16LE, sizing the
// output with a first call like WideToMultibyte.
func MultibyteToWide(cp, flags uint32, mb []byte) ([]byte, error) {
	if len(mb) == 0 {
		return []byte{}, nil
	}
	r1, _, e1 := procMultiByteToWideChar.Call(
		uintptr(cp), uintptr(flags), uintptr(unsafe.Pointer(&mb[0])), uintptr(len(mb)), 0, 0)
	n := int32(r1)
	if n <= 0 {
		return nil, types.NewOSError("MultiByteToWideChar(size)", e1)
	}
	units := make([]uint16, n)
	r1, _, e1 = procMultiByteToWideChar.Call(
		uintptr(cp), uintptr(flags), uintptr(unsafe.Pointer(&mb[0])), uintptr(len(mb)),
		uintptr(unsafe.Pointer(&units[0])), uintptr(n))
	if int32(r1) <= 0 {
		return nil, types.NewOSError("MultiByteToWideChar", e1)
	}
	return codepage.Bytes(units[:int32(r1)]), nil
}

// CheckGlyphs reports, per code point, whether the named font has a glyph for
// it. A scratch device context and font are created for the query and always
// released.
func CheckGlyphs(q types.GlyphQuery) ([]bool, error) {
	face, units, err := checkGlyphQuery(q)
	if err != nil {
		return nil, err
	}

	dc, _, e1 := procCreateCompatibleDC.Call(0)
	if dc == 0 {
		return nil, types.NewOSError("CreateCompatibleDC", e1)
	}
	defer procDeleteDC.Call(dc)

	font, _, e1 := procCreateFontW.Call(
		0, 0, 0, 0, 0, // height, width, escapement, orientation, weight
		0, 0, 0, // italic, underline, strikeout
		defaultCharset,
		0, 0, 0, 0, // out precision, clip precision, quality, pitch and family
		uintptr(unsafe.Pointer(&face[0])))
	if font == 0 {
		return nil, types.NewOSError("CreateFontW", e1)
	}
	defer procDeleteObject.Call(font)

	old, _, e1 := procSelectObject.Call(dc, font)
	if old == 0 || old == hgdiError {
		return nil, types.NewOSError("SelectObject", e1)
	}
	defer procSelectObject.Call(dc, old)

	indices := make([]uint16, len(units))
	r1, _, e1 := procGetGlyphIndicesW.Call(
		dc,
		uintptr(unsafe.Pointer(&units[0])),
		uintptr(len(units)),
		uintptr(unsafe.Pointer(&indices[0])),
		ggiMarkNonexistingGlyphs)
	if uint32(r1) == gdiError {
		return nil, types.NewOSError("GetGlyphIndicesW", e1)
	}
	return glyphPresence(indices), nil
}
