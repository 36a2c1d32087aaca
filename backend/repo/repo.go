// Package repo adapts a minimal record repository (a database table, a
// settings service) into a backend. The capability deliberately lacks
// enumeration: many repository APIs can read and write by name but cannot
// list what they hold. The adapter therefore advertises CanEnumerate false,
// List returns nothing and a store-level clear degrades to a no-op.
package repo

import (
	"context"
	"errors"

	be "github.com/keystow/keystow/backend"
)

// Repository is the capability the adapter wraps. Read returns (nil, nil)
// when no record exists under name.
type Repository interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

type Backend struct {
	r Repository
}

var _ be.Backend = (*Backend)(nil)
var _ be.Enumerable = (*Backend)(nil)

func New(r Repository) (*Backend, error) {
	if r == nil {
		return nil, errors.New("repo: nil repository")
	}
	return &Backend{r: r}, nil
}

// EnsureNamespace is a no-op: the repository owns its own storage lifecycle.
func (b *Backend) EnsureNamespace(_ context.Context) error { return nil }

func (b *Backend) NamespaceExists(_ context.Context) (bool, error) { return true, nil }

func (b *Backend) Write(ctx context.Context, name string, data []byte) error {
	return b.r.Write(ctx, name, data)
}

func (b *Backend) Read(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := b.r.Read(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	return data, true, nil
}

// Exists suppresses repository errors and reports false: existence checks
// against repository backends are check-don't-raise.
func (b *Backend) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := b.r.Exists(ctx, name)
	if err != nil {
		return false, nil
	}
	return ok, nil
}

func (b *Backend) Delete(ctx context.Context, name string) (bool, error) {
	ok, err := b.r.Exists(ctx, name)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := b.r.Delete(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

// List always returns nothing; the underlying capability cannot enumerate.
func (b *Backend) List(_ context.Context, _ string) ([]string, error) { return nil, nil }

func (b *Backend) CanEnumerate() bool { return false }

func (b *Backend) Persistent() bool { return true }

func (b *Backend) Close(_ context.Context) error { return nil }
