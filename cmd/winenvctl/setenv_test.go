package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/wininterop/pkg/interop"
	"github.com/joshuapare/wininterop/pkg/types"
)

func TestParseEntryPoints(t *testing.T) {
	tests := []struct {
		name    string
		specs   []string
		want    []interop.EntryPoint
		wantErr bool
	}{
		{
			name:  "none",
			specs: nil,
			want:  []interop.EntryPoint{},
		},
		{
			name:  "two candidates",
			specs: []string{"msvcrt.dll!_wputenv", "ucrtbase.dll!_wputenv"},
			want: []interop.EntryPoint{
				{Module: "msvcrt.dll", Proc: "_wputenv"},
				{Module: "ucrtbase.dll", Proc: "_wputenv"},
			},
		},
		{name: "missing separator", specs: []string{"msvcrt.dll"}, wantErr: true},
		{name: "empty module", specs: []string{"!_wputenv"}, wantErr: true},
		{name: "empty function", specs: []string{"msvcrt.dll!"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEntryPoints(tt.specs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEntryPoints() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entry points, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSetenvCommand_OversizedKey(t *testing.T) {
	resetFlags(t)
	setenvPID = 4 // never reached: validation runs first

	key := strings.Repeat("K", types.MaxEnvFieldLen+1)
	_, err := captureOutput(t, func() error { return runSetenv([]string{key, "v"}) })
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("runSetenv() error = %v, want invalid argument", err)
	}
}

func TestSetenvCommand_BadEntry(t *testing.T) {
	resetFlags(t)
	setenvEntries = []string{"nobang"}

	_, err := captureOutput(t, func() error { return runSetenv([]string{"K", "V"}) })
	if err == nil || !strings.Contains(err.Error(), "module!function") {
		t.Fatalf("runSetenv() error = %v, want entry point error", err)
	}
}

func TestLogFileFlag(t *testing.T) {
	resetFlags(t)
	logFile = filepath.Join(t.TempDir(), "winenvctl.log")
	setenvPID = 4

	if err := startLogging(rootCmd, nil); err != nil {
		t.Fatalf("startLogging() error = %v", err)
	}
	_ = runSetenv([]string{"", "v"})
	if err := stopLogging(rootCmd, nil); err != nil {
		t.Fatalf("stopLogging() error = %v", err)
	}

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

type fakeSetter struct {
	pids []types.ProcessID
}

func (f *fakeSetter) SetEnv(pid types.ProcessID, key, value []byte) (types.Outcome, error) {
	f.pids = append(f.pids, pid)
	return types.OutcomeSet, nil
}

func TestSetenvCommand_TargetsTheParentItReports(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	setter := &fakeSetter{}
	origSetter, origLocate := newEnvSetter, locateParent
	t.Cleanup(func() { newEnvSetter, locateParent = origSetter, origLocate })
	newEnvSetter = func(interop.Options) envSetter { return setter }

	// A second lookup would see a different parent.
	parents := []types.ProcessID{4242, 5353}
	locates := 0
	locateParent = func() (types.ProcessID, types.ProcessID, error) {
		p := parents[locates]
		locates++
		return 100, p, nil
	}

	output, err := captureOutput(t, func() error { return runSetenv([]string{"OPAMSWITCH", "default"}) })
	if err != nil {
		t.Fatalf("runSetenv() error = %v", err)
	}
	if locates != 1 {
		t.Errorf("parent located %d times, want 1", locates)
	}
	if len(setter.pids) != 1 || setter.pids[0] != 4242 {
		t.Errorf("SetEnv targets = %v, want [4242]", setter.pids)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"pid": 4242`, `"outcome": "set"`})
}
