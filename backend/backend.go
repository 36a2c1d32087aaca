// Package backend defines the storage abstraction used by keystow.
//
// Implementations MUST be byte-for-byte transparent: Read must return exactly
// the same []byte that was previously passed to Write for a name (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g., compression), they MUST be fully
// reversed so that the bytes returned by Read are identical to the bytes
// provided to Write.
//
// A backend owns a single namespace (a directory, an in-memory map). Entry
// names are opaque to the backend; keystow forms them from the encoded key
// plus the store extension.
package backend

import (
	"context"
)

// Backend is a minimal named byte store scoped to one namespace.
// Implementations must be safe for concurrent use.
type Backend interface {
	// EnsureNamespace creates the namespace if absent. Idempotent.
	EnsureNamespace(ctx context.Context) error

	// NamespaceExists reports whether the namespace currently exists.
	NamespaceExists(ctx context.Context) (bool, error)

	// Write stores data under name with overwrite semantics. File-backed
	// implementations must guarantee a concurrent Read never observes a
	// partially written entry.
	Write(ctx context.Context, name string, data []byte) error

	// Read returns (data, true, nil) on hit; (nil, false, nil) on miss.
	Read(ctx context.Context, name string) ([]byte, bool, error)

	// Exists reports whether an entry is stored under name.
	Exists(ctx context.Context, name string) (bool, error)

	// Delete removes an entry. Returns true iff something was deleted;
	// deleting an absent entry is not an error.
	Delete(ctx context.Context, name string) (bool, error)

	// List returns the names of all entries ending in ext, non-recursive.
	// Backends that cannot enumerate return an empty result (see Enumerable).
	List(ctx context.Context, ext string) ([]string, error)

	// Persistent reports whether entries are expected to survive beyond the
	// process lifetime.
	Persistent() bool

	// Close releases resources. It must not delete stored data.
	Close(ctx context.Context) error
}

// Enumerable is implemented by backends whose enumeration support is
// conditional. A backend that does not implement Enumerable is assumed to
// enumerate fully. When CanEnumerate reports false, List returns nothing and
// bulk clear degrades to a no-op; callers relying on enumeration should
// check before choosing such a backend.
type Enumerable interface {
	CanEnumerate() bool
}
