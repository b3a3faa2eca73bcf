// Package types holds the data model shared by every wininterop package:
// the typed error taxonomy, opaque handle tokens, registry selectors, and
// console snapshots.
//
// Errors carry a stable ErrKind so callers can branch on intent:
//   - ErrKindNotFound: feature unavailable, continue without it.
//   - ErrKindInvalidArgument: the caller broke a precondition; no OS call was made.
//   - ErrKindOS: an OS call failed; Msg names the call.
//   - ErrKindOutOfMemory: a local or remote allocation failed.
//   - ErrKindUnsupported: the platform (or value type) is not supported.
//
// This package has no dependencies beyond the standard library.
package types
