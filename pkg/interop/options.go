package interop

import (
	"github.com/joshuapare/wininterop/internal/inject"
	"github.com/joshuapare/wininterop/internal/logger"
)

// Options controls a Client.
type Options struct {
	// Inject configures environment injection. The zero value tries
	// msvcrt.dll!_wputenv, then ucrtbase.dll!_wputenv.
	Inject InjectOptions
}

// InjectOptions controls which C runtime function carries the edit into the
// target process.
type InjectOptions = inject.Options

// EntryPoint names an exported function in a module loaded by the target.
type EntryPoint = inject.EntryPoint

// LogOptions controls EnableLogging.
type LogOptions = logger.Options

// EnableLogging routes the module's structured log output as configured.
// Passing LogOptions{} disables it again.
func EnableLogging(opts LogOptions) error {
	return logger.Init(opts)
}
