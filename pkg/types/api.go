package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOS              ErrKind = iota // an OS call failed; Msg names the call
	ErrKindNotFound                       // handle/resource/registry path absent
	ErrKindInvalidArgument                // caller precondition violated, detected before any OS call
	ErrKindOutOfMemory                    // local or remote allocation failed
	ErrKindUnsupported                    // platform or value type we don't support
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindOS:
		return "os"
	case ErrKindNotFound:
		return "not found"
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindOutOfMemory:
		return "out of memory"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause (usually a syscall.Errno)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match an error against the generic sentinel of its kind,
// so a tagged OS failure still satisfies errors.Is(err, ErrOS).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	if e == t {
		return true
	}
	return kindSentinel[t.Kind] == t && e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrOS matches any failed OS call.
	ErrOS = &Error{Kind: ErrKindOS, Msg: "os call failed"}
	// ErrNotFound indicates a missing handle, resource or registry path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrInvalidArgument indicates the caller violated a precondition.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid argument"}
	// ErrOutOfMemory indicates a local or remote allocation failed.
	ErrOutOfMemory = &Error{Kind: ErrKindOutOfMemory, Msg: "out of memory"}
	// ErrUnsupported indicates the operation is unavailable on this platform.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported on this platform"}

	// ErrUnsupportedValueType indicates a registry write asked for a type other than REG_SZ.
	ErrUnsupportedValueType = &Error{Kind: ErrKindOS, Msg: "unsupported registry value type"}
	// ErrProcessNotListed indicates the process snapshot did not contain the caller.
	ErrProcessNotListed = &Error{Kind: ErrKindOS, Msg: "process enumeration: current process not in snapshot"}
)

var kindSentinel = map[ErrKind]*Error{
	ErrKindOS:              ErrOS,
	ErrKindNotFound:        ErrNotFound,
	ErrKindInvalidArgument: ErrInvalidArgument,
	ErrKindOutOfMemory:     ErrOutOfMemory,
	ErrKindUnsupported:     ErrUnsupported,
}

// NewOSError tags err with the OS call that produced it.
func NewOSError(op string, err error) *Error {
	return &Error{Kind: ErrKindOS, Msg: op, Err: err}
}

// NotFoundf builds an ErrKindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: ErrKindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidArgf builds an ErrKindInvalidArgument error.
func InvalidArgf(format string, args ...any) *Error {
	return &Error{Kind: ErrKindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// OutOfMemory builds an ErrKindOutOfMemory error for the given allocation site.
func OutOfMemory(op string, err error) *Error {
	return &Error{Kind: ErrKindOutOfMemory, Msg: op, Err: err}
}

// Unsupported builds an ErrKindUnsupported error naming the operation.
func Unsupported(op string) *Error {
	return &Error{Kind: ErrKindUnsupported, Msg: op + ": unsupported on this platform"}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// Handle is an opaque OS handle token. It is created and consumed only by this
// module; callers compare it by identity and never persist it.
type Handle uintptr

// ProcessID is an OS process identifier. Zero means "none".
type ProcessID uint32

// Outcome is the non-error result of an environment injection.
type Outcome int

const (
	// OutcomeSet means the parent applied the edit.
	OutcomeSet Outcome = iota
	// OutcomeDeclined means the parent's runtime refused the edit without an
	// OS failure (for example a key containing '=').
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSet:
		return "set"
	case OutcomeDeclined:
		return "declined"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// EnvEdit is a single environment assignment destined for another process.
type EnvEdit struct {
	Key   []byte
	Value []byte
}

// StdHandleKind selects one of the standard console streams.
type StdHandleKind int

const (
	StdInput StdHandleKind = iota
	StdOutput
	StdError
	stdHandleCount
)

// Valid reports whether k is one of StdInput, StdOutput or StdError.
func (k StdHandleKind) Valid() bool { return k >= 0 && k < stdHandleCount }

func (k StdHandleKind) String() string {
	switch k {
	case StdInput:
		return "stdin"
	case StdOutput:
		return "stdout"
	case StdError:
		return "stderr"
	default:
		return fmt.Sprintf("StdHandleKind(%d)", int(k))
	}
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// Root selects a predefined registry root key.
type Root int

const (
	RootClassesRoot Root = iota
	RootCurrentUser
	RootLocalMachine
	RootUsers
	rootCount
)

// Valid reports whether r is within the closed set of supported roots.
func (r Root) Valid() bool { return r >= 0 && r < rootCount }

func (r Root) String() string {
	switch r {
	case RootClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case RootCurrentUser:
		return "HKEY_CURRENT_USER"
	case RootLocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case RootUsers:
		return "HKEY_USERS"
	default:
		return fmt.Sprintf("Root(%d)", int(r))
	}
}

// ParseRoot accepts the long (HKEY_CURRENT_USER) and short (HKCU) spellings.
func ParseRoot(s string) (Root, error) {
	switch s {
	case "HKEY_CLASSES_ROOT", "HKCR":
		return RootClassesRoot, nil
	case "HKEY_CURRENT_USER", "HKCU":
		return RootCurrentUser, nil
	case "HKEY_LOCAL_MACHINE", "HKLM":
		return RootLocalMachine, nil
	case "HKEY_USERS", "HKU":
		return RootUsers, nil
	}
	return 0, InvalidArgf("unknown registry root %q", s)
}

// RegType enumerates Windows registry value types commonly encountered.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}

// RegistryTarget describes one value write.
type RegistryTarget struct {
	Root Root
	Path string // subkey path below Root, backslash separated
	Name string // value name; empty selects the key's default value
	Type RegType
	Data []byte
}

// -----------------------------------------------------------------------------
// System
// -----------------------------------------------------------------------------

// OSVersion is the running kernel's version as reported by RtlGetVersion.
type OSVersion struct {
	Major       uint32
	Minor       uint32
	Build       uint32
	ServicePack string
}

func (v OSVersion) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	if v.ServicePack != "" {
		s += " " + v.ServicePack
	}
	return s
}
