package keystow

import (
	"context"

	be "github.com/keystow/keystow/backend"
	ser "github.com/keystow/keystow/serializer"
)

// Store is the uniform persistence contract every backend exposes.
// K is the caller's key type, V the stored value type. Key encoding is
// handled by keycodec, serialization by a pluggable Serializer[V].
type Store[K comparable, V any] interface {
	// Store persists value under key. A nil value is a tombstone: it behaves
	// exactly like Remove and never writes an entry.
	Store(ctx context.Context, key K, value *V) error

	// Retrieve returns (value, true, nil) when an entry exists and decodes;
	// (zero, false, nil) when the key is absent or the stored payload is empty.
	Retrieve(ctx context.Context, key K) (V, bool, error)

	// RetrieveOrCreate is Retrieve falling back to a zero V on a miss.
	// The default is never persisted.
	RetrieveOrCreate(ctx context.Context, key K) (V, error)

	// Exists reports whether an entry is stored for key.
	Exists(ctx context.Context, key K) (bool, error)

	// Remove deletes the entry for key. Returns true iff one existed.
	Remove(ctx context.Context, key K) (bool, error)

	// ListKeys enumerates stored keys as a point-in-time snapshot. Tokens
	// that fail to decode back to K are silently dropped. Empty when the
	// namespace does not exist or the backend cannot enumerate.
	ListKeys(ctx context.Context) ([]K, error)

	// Clear deletes every entry in the namespace; the namespace itself
	// survives. No-op when the namespace is absent.
	Clear(ctx context.Context) error

	// Persistent reports whether stored entries are expected to survive
	// beyond the process lifetime.
	Persistent() bool

	// Close releases backend resources. It never deletes stored data;
	// destructive teardown (e.g. tempdir cleanup) is a separate, explicit
	// operation on the backend itself.
	Close(ctx context.Context) error
}

// Options tune a store. Only Backend and Serializer are required.
type Options[K comparable, V any] struct {
	// Required
	Backend    be.Backend
	Serializer ser.Serializer[V]

	Extension string // entry filename suffix; "" => ".json"
	Logger    Logger // nil => NopLogger
	Hooks     Hooks  // nil => NopHooks
}

func New[K comparable, V any](opts Options[K, V]) (Store[K, V], error) {
	return newStore[K, V](opts)
}
