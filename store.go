package keystow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	be "github.com/keystow/keystow/backend"
	"github.com/keystow/keystow/keycodec"
	ser "github.com/keystow/keystow/serializer"
)

// store is the one generic implementation behind every backend. Backends only
// provide the byte-level capability set; key encoding, serialization,
// tombstones and error wrapping live here so the backends cannot drift apart.
type store[K comparable, V any] struct {
	backend be.Backend
	codec   ser.Serializer[V]
	ext     string
	log     Logger
	hooks   Hooks
}

func newStore[K comparable, V any](opts Options[K, V]) (*store[K, V], error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("keystow: backend is required")
	}
	if opts.Serializer == nil {
		return nil, fmt.Errorf("keystow: serializer is required")
	}

	s := &store[K, V]{
		backend: opts.Backend,
		codec:   opts.Serializer,
		ext:     coalesce(opts.Extension, ".json"),
		log:     opts.Logger,
		hooks:   opts.Hooks,
	}
	if s.log == nil {
		s.log = NopLogger{}
	}
	if s.hooks == nil {
		s.hooks = NopHooks{}
	}
	return s, nil
}

func (s *store[K, V]) Persistent() bool { return s.backend.Persistent() }

func (s *store[K, V]) Close(ctx context.Context) error {
	return s.backend.Close(ctx)
}

func (s *store[K, V]) Store(ctx context.Context, key K, value *V) error {
	if value == nil {
		// tombstone: storing nothing removes the entry
		_, err := s.Remove(ctx, key)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := s.codec.Encode(*value)
	if err != nil {
		return wrapErr("store", keyString(key), err)
	}
	if err := s.backend.EnsureNamespace(ctx); err != nil {
		return wrapErr("store", keyString(key), err)
	}
	name := s.entryName(key)
	if err := s.backend.Write(ctx, name, payload); err != nil {
		return wrapErr("store", keyString(key), err)
	}
	s.hooks.EntryWritten(name, len(payload))
	return nil
}

func (s *store[K, V]) Retrieve(ctx context.Context, key K) (V, bool, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	raw, ok, err := s.backend.Read(ctx, s.entryName(key))
	if err != nil {
		return zero, false, wrapErr("retrieve", keyString(key), err)
	}
	if !ok || len(raw) == 0 {
		return zero, false, nil
	}
	v, err := s.codec.Decode(raw)
	if err != nil {
		return zero, false, wrapErr("retrieve", keyString(key), err)
	}
	return v, true, nil
}

func (s *store[K, V]) RetrieveOrCreate(ctx context.Context, key K) (V, error) {
	v, ok, err := s.Retrieve(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}
	if !ok {
		// fresh default; intentionally not persisted
		var zero V
		return zero, nil
	}
	return v, nil
}

func (s *store[K, V]) Exists(ctx context.Context, key K) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := s.backend.Exists(ctx, s.entryName(key))
	if err != nil {
		return false, wrapErr("exists", keyString(key), err)
	}
	return ok, nil
}

func (s *store[K, V]) Remove(ctx context.Context, key K) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	name := s.entryName(key)
	existed, err := s.backend.Delete(ctx, name)
	if err != nil {
		return false, wrapErr("remove", keyString(key), err)
	}
	s.hooks.EntryRemoved(name, existed)
	return existed, nil
}

func (s *store[K, V]) ListKeys(ctx context.Context) ([]K, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ok, err := s.backend.NamespaceExists(ctx)
	if err != nil {
		return nil, wrapErr("listkeys", "", err)
	}
	if !ok {
		return nil, nil
	}
	names, err := s.backend.List(ctx, s.ext)
	if err != nil {
		return nil, wrapErr("listkeys", "", err)
	}

	keys := make([]K, 0, len(names))
	for _, name := range names {
		token := strings.TrimSuffix(name, s.ext)
		k, ok := keycodec.Decode[K](token)
		if !ok {
			// undecodable tokens are dropped, not reported
			s.hooks.TokenSkipped(token)
			s.log.Debug("listkeys skipped undecodable token", Fields{"token": token})
			continue
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *store[K, V]) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ok, err := s.backend.NamespaceExists(ctx)
	if err != nil {
		return wrapErr("clear", "", err)
	}
	if !ok {
		return nil
	}
	names, err := s.backend.List(ctx, s.ext)
	if err != nil {
		return wrapErr("clear", "", err)
	}

	removed := 0
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		existed, err := s.backend.Delete(ctx, name)
		if err != nil {
			return wrapErr("clear", strings.TrimSuffix(name, s.ext), err)
		}
		if existed {
			removed++
		}
	}
	s.hooks.NamespaceCleared(removed)
	return nil
}

// entryName is the backend-level name for key: encoded token plus extension.
func (s *store[K, V]) entryName(key K) string {
	return keycodec.Encode(key) + s.ext
}

func keyString[K comparable](key K) string { return fmt.Sprint(key) }

// wrapErr folds a failure into *Error. Context cancellation passes through
// untouched so callers can errors.Is against context.Canceled.
func wrapErr(op, key string, err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &Error{Op: op, Key: key, Err: err}
}
