package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/joshuapare/wininterop/pkg/types"
)

func TestEncodeUTF16LE(t *testing.T) {
	got, err := EncodeUTF16LE([]byte("A=é"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 0, '=', 0, 0xE9, 0}, got)

	empty, err := EncodeUTF16LE(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEncodeUTF16LE_SurrogatePair(t *testing.T) {
	got, err := EncodeUTF16LE([]byte("😀"))
	require.NoError(t, err)
	units, err := Units(got)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xD83D, 0xDE00}, units)
}

func TestDecodeUTF16LE_OddLength(t *testing.T) {
	_, err := DecodeUTF16LE([]byte{'A', 0, 'B'})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestFromWide_Windows1252(t *testing.T) {
	w, err := EncodeUTF16LE([]byte("café €"))
	require.NoError(t, err)

	got, err := FromWide(Windows1252, 0, w)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, ' ', 0x80}, got)
}

func TestFromWide_UnrepresentableReplacedOrRejected(t *testing.T) {
	w, err := EncodeUTF16LE([]byte("Ж"))
	require.NoError(t, err)

	got, err := FromWide(Windows1252, 0, w)
	require.NoError(t, err)
	assert.Len(t, got, 1, "lenient conversion substitutes a single byte")

	_, err = FromWide(Windows1252, ErrInvalidChars, w)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	cyr, err := FromWide(OEMCyrillic, ErrInvalidChars, w)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x86}, cyr)
}

func TestFromWide_UnknownCodePage(t *testing.T) {
	_, err := FromWide(12345, 0, []byte{'a', 0})
	assert.ErrorIs(t, err, types.ErrUnsupported)
}

func TestToWide_StrictUTF8(t *testing.T) {
	_, err := ToWide(UTF8, ErrInvalidChars, []byte{0xFF, 'a'})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	w, err := ToWide(UTF8, 0, []byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'o', 0, 'k', 0}, w)
}

func TestUnitsBytesInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := rapid.SliceOf(rapid.Uint16()).Draw(t, "units")
		back, err := Units(Bytes(u))
		if err != nil {
			t.Fatal(err)
		}
		if len(u) == 0 && len(back) == 0 {
			return
		}
		if !assert.ObjectsAreEqual(u, back) {
			t.Fatalf("Units(Bytes(%v)) = %v", u, back)
		}
	})
}

// Wide -> UTF-8 -> wide must reproduce the original bytes exactly.
func TestRoundTrip_UTF8IsLossless(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		w, err := EncodeUTF16LE([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		mb, err := FromWide(UTF8, ErrInvalidChars, w)
		if err != nil {
			t.Fatal(err)
		}
		if string(mb) != s {
			t.Fatalf("multibyte = %q, want %q", mb, s)
		}
		back, err := ToWide(UTF8, ErrInvalidChars, mb)
		if err != nil {
			t.Fatal(err)
		}
		if string(back) != string(w) {
			t.Fatalf("round trip changed bytes: %x != %x", back, w)
		}
	})
}

func TestRoundTrip_Windows1252Subset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.SliceOf(rapid.RuneFrom([]rune("abcXYZ019 éèüß€£©"))).Draw(t, "runes")
		w, err := EncodeUTF16LE([]byte(string(r)))
		if err != nil {
			t.Fatal(err)
		}
		mb, err := FromWide(Windows1252, ErrInvalidChars, w)
		if err != nil {
			t.Fatal(err)
		}
		if len(mb) != len(r) {
			t.Fatalf("single-byte code page produced %d bytes for %d runes", len(mb), len(r))
		}
		back, err := ToWide(Windows1252, 0, mb)
		if err != nil {
			t.Fatal(err)
		}
		if string(back) != string(w) {
			t.Fatalf("round trip changed bytes: %x != %x", back, w)
		}
	})
}
