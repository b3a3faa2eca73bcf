package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/joshuapare/wininterop/pkg/types"
)

func TestRegCommands_RootParsing(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantErr string
	}{
		{
			name:    "set unknown root",
			run:     func() error { return runRegSet([]string{"HKXX", "Software", "n", "v"}) },
			wantErr: "unknown registry root",
		},
		{
			name:    "get unknown root",
			run:     func() error { return runRegGet([]string{"HKEY_NOPE", "Software", "n"}) },
			wantErr: "unknown registry root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			_, err := captureOutput(t, tt.run)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Errorf("error = %v, want invalid argument kind", err)
			}
		})
	}
}

func TestRegSet_NulInValue(t *testing.T) {
	resetFlags(t)
	_, err := captureOutput(t, func() error {
		return runRegSet([]string{"HKCU", "Software", "n", "a\x00b"})
	})
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("runRegSet() error = %v, want invalid argument", err)
	}
}
