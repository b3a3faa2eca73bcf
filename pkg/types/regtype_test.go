package types

import (
	"testing"
)

func TestRegType_String(t *testing.T) {
	tests := []struct {
		name     string
		regType  RegType
		expected string
	}{
		{name: "REG_NONE", regType: REG_NONE, expected: "REG_NONE"},
		{name: "REG_SZ", regType: REG_SZ, expected: "REG_SZ"},
		{name: "REG_EXPAND_SZ", regType: REG_EXPAND_SZ, expected: "REG_EXPAND_SZ"},
		{name: "REG_BINARY", regType: REG_BINARY, expected: "REG_BINARY"},
		{name: "REG_DWORD", regType: REG_DWORD, expected: "REG_DWORD"},
		{name: "REG_MULTI_SZ", regType: REG_MULTI_SZ, expected: "REG_MULTI_SZ"},
		{name: "REG_QWORD", regType: REG_QWORD, expected: "REG_QWORD"},
		// Unknown types print as signed int32
		{name: "Unknown type 100", regType: RegType(100), expected: "UNKNOWN_TYPE_100"},
		{name: "Invalid type -1 (0xFFFFFFFF)", regType: RegType(0xFFFFFFFF), expected: "UNKNOWN_TYPE_-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.regType.String()
			if result != tt.expected {
				t.Errorf("RegType(%d).String() = %q, expected %q", uint32(tt.regType), result, tt.expected)
			}
		})
	}
}

func TestRoot_ParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		want Root
	}{
		{"HKCR", RootClassesRoot},
		{"HKEY_CLASSES_ROOT", RootClassesRoot},
		{"HKCU", RootCurrentUser},
		{"HKEY_LOCAL_MACHINE", RootLocalMachine},
		{"HKU", RootUsers},
	}
	for _, tt := range tests {
		got, err := ParseRoot(tt.in)
		if err != nil {
			t.Fatalf("ParseRoot(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRoot(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !got.Valid() {
			t.Fatalf("%v should be valid", got)
		}
	}

	if _, err := ParseRoot("HKEY_CURRENT_CONFIG"); !IsKind(err, ErrKindInvalidArgument) {
		t.Fatalf("HKEY_CURRENT_CONFIG: got %v, want invalid argument", err)
	}
	if Root(4).Valid() || Root(-1).Valid() {
		t.Fatal("out-of-range roots must not be valid")
	}
	if got := Root(9).String(); got != "Root(9)" {
		t.Fatalf("Root(9).String() = %q", got)
	}
}
