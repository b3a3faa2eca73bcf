// Package console reads and changes console state: standard handles, screen
// buffer geometry, text attributes, code pages, the current font and glyph
// coverage, and converts between wide and multibyte text.
//
// Console handles are borrowed from the process and never closed here.
package console

import (
	"unicode/utf16"

	"github.com/joshuapare/wininterop/internal/codepage"
	"github.com/joshuapare/wininterop/pkg/types"
)

// Text attribute bits (FOREGROUND_* / BACKGROUND_*).
const (
	ForegroundBlue      = 0x0001
	ForegroundGreen     = 0x0002
	ForegroundRed       = 0x0004
	ForegroundIntensity = 0x0008
	BackgroundBlue      = 0x0010
	BackgroundGreen     = 0x0020
	BackgroundRed       = 0x0040
	BackgroundIntensity = 0x0080
)

// Console mode bits used by callers enabling ANSI sequences.
const (
	EnableProcessedOutput           = 0x0001
	EnableVirtualTerminalProcessing = 0x0004
)

func checkKind(kind types.StdHandleKind) error {
	if !kind.Valid() {
		return types.InvalidArgf("standard handle kind %d out of range", int(kind))
	}
	return nil
}

func checkWide(wide []byte) error {
	if len(wide)%2 != 0 {
		return types.InvalidArgf("wide string has odd byte length %d", len(wide))
	}
	return nil
}

// checkGlyphQuery validates a glyph query and returns the face name and code
// points as UTF-16 units.
func checkGlyphQuery(q types.GlyphQuery) (face []uint16, units []uint16, err error) {
	if len(q.CodePoints) == 0 {
		return nil, nil, types.InvalidArgf("glyph query needs at least one code point")
	}
	face = utf16.Encode([]rune(q.FontName))
	if len(face) > types.MaxFaceNameLen {
		return nil, nil, types.InvalidArgf("font name %q longer than %d UTF-16 units", q.FontName, types.MaxFaceNameLen)
	}
	for _, r := range face {
		if r == 0 {
			return nil, nil, types.InvalidArgf("font name contains NUL")
		}
	}
	units = make([]uint16, len(q.CodePoints))
	for i, cp := range q.CodePoints {
		if cp < 0 || cp > 0xFFFF || utf16.IsSurrogate(cp) {
			return nil, nil, types.InvalidArgf("code point U+%04X at index %d is outside the Basic Multilingual Plane", cp, i)
		}
		units[i] = uint16(cp)
	}
	return append(face, 0), units, nil
}

// glyphPresence maps glyph indices to coverage.
func glyphPresence(indices []uint16) []bool {
	out := make([]bool, len(indices))
	for i, g := range indices {
		out[i] = g != types.MissingGlyph
	}
	return out
}

// WriteString encodes s as UTF-16LE and writes it to h. The count is in
// UTF-16 code units.
func WriteString(h types.Handle, s string) (int, error) {
	wide, err := codepage.EncodeUTF16LE([]byte(s))
	if err != nil {
		return 0, err
	}
	return Write(h, wide)
}
