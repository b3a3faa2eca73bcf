// Package codepage maps Windows code page identifiers onto golang.org/x/text
// encodings and converts between UTF-16LE ("wide") byte strings and
// multibyte ones.
//
// The console layer uses the OS converters on Windows; this package backs
// them everywhere else and supplies the UTF-16LE framing used for payloads
// written into other processes.
package codepage

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/wininterop/pkg/types"
)

// Well-known code page identifiers.
const (
	OEMUnitedStates = 437
	OEMLatin1       = 850
	OEMCyrillic     = 866
	UTF16LE         = 1200
	Windows1250     = 1250
	Windows1251     = 1251
	Windows1252     = 1252
	UTF8            = 65001
)

// ErrInvalidChars mirrors WC_ERR_INVALID_CHARS / MB_ERR_INVALID_CHARS: fail
// instead of substituting when a character cannot be converted.
const ErrInvalidChars = 0x00000080

var wide = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

var byID = map[uint32]encoding.Encoding{
	OEMUnitedStates: charmap.CodePage437,
	OEMLatin1:       charmap.CodePage850,
	OEMCyrillic:     charmap.CodePage866,
	UTF16LE:         wide,
	Windows1250:     charmap.Windows1250,
	Windows1251:     charmap.Windows1251,
	Windows1252:     charmap.Windows1252,
	UTF8:            unicode.UTF8,
}

// Lookup returns the encoding for a Windows code page identifier.
func Lookup(cp uint32) (encoding.Encoding, bool) {
	e, ok := byID[cp]
	return e, ok
}

// EncodeUTF16LE converts UTF-8 text into UTF-16LE bytes without a terminator.
// Invalid UTF-8 sequences become U+FFFD.
func EncodeUTF16LE(s []byte) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}
	out, err := wide.NewEncoder().Bytes(s)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindInvalidArgument, Msg: "encode UTF-16LE", Err: err}
	}
	return out, nil
}

// DecodeUTF16LE converts UTF-16LE bytes into UTF-8.
func DecodeUTF16LE(b []byte) ([]byte, error) {
	if err := checkWide(b); err != nil {
		return nil, err
	}
	out, err := wide.NewDecoder().Bytes(b)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindInvalidArgument, Msg: "decode UTF-16LE", Err: err}
	}
	return out, nil
}

// FromWide converts UTF-16LE bytes into code page cp. Unless flags carries
// ErrInvalidChars, characters the code page cannot represent are replaced.
func FromWide(cp, flags uint32, w []byte) ([]byte, error) {
	if err := checkWide(w); err != nil {
		return nil, err
	}
	enc, ok := Lookup(cp)
	if !ok {
		return nil, types.Unsupported("code page " + strconv.FormatUint(uint64(cp), 10))
	}
	encoder := enc.NewEncoder()
	if flags&ErrInvalidChars == 0 {
		encoder = encoding.ReplaceUnsupported(encoder)
	}
	out, _, err := transform.Bytes(transform.Chain(wide.NewDecoder(), encoder), w)
	if err != nil {
		return nil, convError(err)
	}
	return out, nil
}

// ToWide converts bytes in code page cp into UTF-16LE.
func ToWide(cp, flags uint32, mb []byte) ([]byte, error) {
	enc, ok := Lookup(cp)
	if !ok {
		return nil, types.Unsupported("code page " + strconv.FormatUint(uint64(cp), 10))
	}
	if cp == UTF8 && flags&ErrInvalidChars != 0 && !utf8.Valid(mb) {
		return nil, types.InvalidArgf("invalid UTF-8 input")
	}
	out, _, err := transform.Bytes(transform.Chain(enc.NewDecoder(), wide.NewEncoder()), mb)
	if err != nil {
		return nil, convError(err)
	}
	return out, nil
}

// Units reinterprets UTF-16LE bytes as code units.
func Units(b []byte) ([]uint16, error) {
	if err := checkWide(b); err != nil {
		return nil, err
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return u, nil
}

// Bytes is the inverse of Units.
func Bytes(u []uint16) []byte {
	b := make([]byte, 2*len(u))
	for i, v := range u {
		b[2*i] = byte(v)
		b[2*i+1] = byte(v >> 8)
	}
	return b
}

func checkWide(b []byte) error {
	if len(b)%2 != 0 {
		return types.InvalidArgf("wide string has odd byte length %d", len(b))
	}
	return nil
}

func convError(err error) error {
	if errors.Is(err, transform.ErrShortDst) || errors.Is(err, transform.ErrShortSrc) {
		return &types.Error{Kind: types.ErrKindOS, Msg: "code page conversion", Err: err}
	}
	return &types.Error{Kind: types.ErrKindInvalidArgument, Msg: "code page conversion", Err: err}
}
