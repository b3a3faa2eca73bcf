//go:build !windows

package console

import (
	"github.com/joshuapare/wininterop/internal/codepage"
	"github.com/joshuapare/wininterop/pkg/types"
)

// StdHandle validates kind; consoles are only reachable on Windows.
func StdHandle(kind types.StdHandleKind) (types.Handle, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	return 0, types.Unsupported("StdHandle")
}

func ScreenBufferInfo(types.Handle) (types.ScreenBufferInfo, error) {
	return types.ScreenBufferInfo{}, types.Unsupported("ScreenBufferInfo")
}

func SetTextAttribute(types.Handle, uint16) error { return types.Unsupported("SetTextAttribute") }

func OutputCodePage() (uint32, error) { return 0, types.Unsupported("OutputCodePage") }

func InputCodePage() (uint32, error) { return 0, types.Unsupported("InputCodePage") }

func SetOutputCodePage(uint32) error { return types.Unsupported("SetOutputCodePage") }

func SetInputCodePage(uint32) error { return types.Unsupported("SetInputCodePage") }

func Write(_ types.Handle, wide []byte) (int, error) {
	if err := checkWide(wide); err != nil {
		return 0, err
	}
	return 0, types.Unsupported("Write")
}

func Mode(types.Handle) (uint32, error) { return 0, types.Unsupported("Mode") }

func SetMode(types.Handle, uint32) error { return types.Unsupported("SetMode") }

func FillOutputCharacter(types.Handle, uint16, uint32, types.Coord) (uint32, error) {
	return 0, types.Unsupported("FillOutputCharacter")
}

func CurrentFont(types.Handle, bool) (types.FontDescriptor, error) {
	return types.FontDescriptor{}, types.Unsupported("CurrentFont")
}

// WideToMultibyte converts through golang.org/x/text for the code pages
// codepage knows.
func WideToMultibyte(cp, flags uint32, wide []byte) ([]byte, error) {
	return codepage.FromWide(cp, flags, wide)
}

// MultibyteToWide converts through golang.org/x/text for the code pages
// codepage knows.
func MultibyteToWide(cp, flags uint32, mb []byte) ([]byte, error) {
	return codepage.ToWide(cp, flags, mb)
}

// CheckGlyphs validates the query; glyph coverage needs GDI.
func CheckGlyphs(q types.GlyphQuery) ([]bool, error) {
	if _, _, err := checkGlyphQuery(q); err != nil {
		return nil, err
	}
	return nil, types.Unsupported("CheckGlyphs")
}
