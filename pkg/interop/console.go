package interop

import (
	"github.com/joshuapare/wininterop/internal/console"
	"github.com/joshuapare/wininterop/pkg/types"
)

// Console handles are borrowed from the process and must not be closed.

// StdHandle returns the handle bound to kind. It fails with ErrNotFound when
// nothing is bound.
func StdHandle(kind types.StdHandleKind) (types.Handle, error) {
	return console.StdHandle(kind)
}

// ScreenBufferInfo snapshots the geometry and attributes of a console screen
// buffer. It fails with ErrNotFound when h is not a console.
func ScreenBufferInfo(h types.Handle) (types.ScreenBufferInfo, error) {
	return console.ScreenBufferInfo(h)
}

func SetTextAttribute(h types.Handle, attrs uint16) error {
	return console.SetTextAttribute(h, attrs)
}

func OutputCodePage() (uint32, error) { return console.OutputCodePage() }
func InputCodePage() (uint32, error) { return console.InputCodePage() }
func SetOutputCodePage(cp uint32) error { return console.SetOutputCodePage(cp) }
func SetInputCodePage(cp uint32) error { return console.SetInputCodePage(cp) }

// WriteConsole writes UTF-16LE text to h and returns the number of code units
// the OS reports written. A short count is not retried.
func WriteConsole(h types.Handle, wide []byte) (int, error) {
	return console.Write(h, wide)
}

// WriteConsoleString is WriteConsole for UTF-8 text.
func WriteConsoleString(h types.Handle, s string) (int, error) {
	return console.WriteString(h, s)
}

func ConsoleMode(h types.Handle) (uint32, error) { return console.Mode(h) }
func SetConsoleMode(h types.Handle, mode uint32) error { return console.SetMode(h, mode) }

// FillOutputCharacter writes ch to n cells starting at at.
func FillOutputCharacter(h types.Handle, ch uint16, n uint32, at types.Coord) (uint32, error) {
	return console.FillOutputCharacter(h, ch, n, at)
}

// CurrentFont describes the font of the console behind h.
func CurrentFont(h types.Handle, maximumWindow bool) (types.FontDescriptor, error) {
	return console.CurrentFont(h, maximumWindow)
}

// ConvertWideToMultibyte converts UTF-16LE bytes to code page cp.
func ConvertWideToMultibyte(cp, flags uint32, wide []byte) ([]byte, error) {
	return console.WideToMultibyte(cp, flags, wide)
}

// ConvertMultibyteToWide converts bytes in code page cp to UTF-16LE.
func ConvertMultibyteToWide(cp, flags uint32, mb []byte) ([]byte, error) {
	return console.MultibyteToWide(cp, flags, mb)
}

// CheckGlyphs reports, per code point, whether fontName has a glyph for it.
func CheckGlyphs(fontName string, codePoints []rune) ([]bool, error) {
	return console.CheckGlyphs(types.GlyphQuery{FontName: fontName, CodePoints: codePoints})
}
