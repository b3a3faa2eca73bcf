//go:build windows

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wininterop/internal/codepage"
	"github.com/joshuapare/wininterop/pkg/types"
)

// stdout returns a console handle or skips when tests run without a console
// (CI runners redirect output to pipes).
func stdout(t *testing.T) types.Handle {
	t.Helper()
	h, err := StdHandle(types.StdOutput)
	if err != nil {
		t.Skipf("no stdout handle: %v", err)
	}
	if _, err := ScreenBufferInfo(h); err != nil {
		t.Skipf("stdout is not a console: %v", err)
	}
	return h
}

func TestScreenBufferInfo_Console(t *testing.T) {
	h := stdout(t)
	info, err := ScreenBufferInfo(h)
	require.NoError(t, err)
	assert.Positive(t, info.Size.X)
	assert.LessOrEqual(t, info.Window.Left, info.Window.Right)
}

func TestScreenBufferInfo_NotAConsole(t *testing.T) {
	_, err := ScreenBufferInfo(types.Handle(0))
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSetTextAttribute_RestoresOriginal(t *testing.T) {
	h := stdout(t)
	info, err := ScreenBufferInfo(h)
	require.NoError(t, err)
	t.Cleanup(func() { _ = SetTextAttribute(h, info.Attributes) })

	require.NoError(t, SetTextAttribute(h, ForegroundGreen|ForegroundIntensity))
	now, err := ScreenBufferInfo(h)
	require.NoError(t, err)
	assert.Equal(t, uint16(ForegroundGreen|ForegroundIntensity), now.Attributes)
}

func TestCodePages_SetAndRestore(t *testing.T) {
	stdout(t)
	orig, err := OutputCodePage()
	require.NoError(t, err)
	t.Cleanup(func() { _ = SetOutputCodePage(orig) })

	require.NoError(t, SetOutputCodePage(codepage.UTF8))
	got, err := OutputCodePage()
	require.NoError(t, err)
	assert.Equal(t, uint32(codepage.UTF8), got)

	in, err := InputCodePage()
	require.NoError(t, err)
	require.NoError(t, SetInputCodePage(in))
}

func TestWrite_ReportsUnits(t *testing.T) {
	h := stdout(t)
	wide, err := codepage.EncodeUTF16LE([]byte("wininterop\r\n"))
	require.NoError(t, err)
	n, err := Write(h, wide)
	require.NoError(t, err)
	assert.Equal(t, len(wide)/2, n)
}

func TestCurrentFont(t *testing.T) {
	h := stdout(t)
	font, err := CurrentFont(h, false)
	if err != nil {
		assert.ErrorIs(t, err, types.ErrNotFound)
		return
	}
	assert.NotEmpty(t, font.FaceName)
}

func TestWideToMultibyte_OSMatchesPortable(t *testing.T) {
	wide, err := codepage.EncodeUTF16LE([]byte("café €"))
	require.NoError(t, err)

	native, err := WideToMultibyte(codepage.Windows1252, 0, wide)
	require.NoError(t, err)
	portable, err := codepage.FromWide(codepage.Windows1252, 0, wide)
	require.NoError(t, err)
	assert.Equal(t, portable, native)
}

func TestWideToMultibyte_UTF8SizesOutputAndRoundTrips(t *testing.T) {
	// Three UTF-16 units become eight UTF-8 bytes, so the first pass must
	// size the buffer rather than reuse the input length.
	wide, err := codepage.EncodeUTF16LE([]byte("Жü✓"))
	require.NoError(t, err)

	mb, err := WideToMultibyte(codepage.UTF8, 0, wide)
	require.NoError(t, err)
	assert.Equal(t, "Жü✓", string(mb))

	back, err := MultibyteToWide(codepage.UTF8, 0, mb)
	require.NoError(t, err)
	assert.Equal(t, wide, back)
}

func TestWideToMultibyte_UnknownCodePage(t *testing.T) {
	wide, err := codepage.EncodeUTF16LE([]byte("x"))
	require.NoError(t, err)

	_, err = WideToMultibyte(12345, 0, wide)
	assert.ErrorIs(t, err, types.ErrOS)
	assert.Contains(t, err.Error(), "WideCharToMultiByte")
}

func TestCheckGlyphs_Arial(t *testing.T) {
	got, err := CheckGlyphs(types.GlyphQuery{FontName: "Arial", CodePoints: []rune{'A', 'z', 0xE000}})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0])
	assert.True(t, got[1])
	assert.False(t, got[2], "Arial has no private-use glyphs")
}
