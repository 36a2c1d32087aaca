// Package bigcache provides a bounded in-memory backend over
// allegro/bigcache. Retention is best-effort: entries age out after the
// configured LifeWindow and the cache sheds load under memory pressure, so
// this backend suits disposable state, not durable storage (Persistent
// reports false, same as the plain memory backend).
package bigcache

import (
	"context"
	"errors"
	"strings"
	"time"

	bc "github.com/allegro/bigcache/v3"

	be "github.com/keystow/keystow/backend"
)

type Backend struct {
	c *bc.BigCache
}

var _ be.Backend = (*Backend)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Backend, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Backend{c: c}, nil
}

// EnsureNamespace is a no-op: the cache is the namespace and exists from
// construction on.
func (b *Backend) EnsureNamespace(_ context.Context) error { return nil }

func (b *Backend) NamespaceExists(_ context.Context) (bool, error) { return true, nil }

func (b *Backend) Write(_ context.Context, name string, data []byte) error {
	return b.c.Set(name, data)
}

func (b *Backend) Read(_ context.Context, name string) ([]byte, bool, error) {
	data, err := b.c.Get(name)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *Backend) Exists(_ context.Context, name string) (bool, error) {
	_, err := b.c.Get(name)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (b *Backend) Delete(_ context.Context, name string) (bool, error) {
	err := b.c.Delete(name)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (b *Backend) List(_ context.Context, ext string) ([]string, error) {
	var names []string
	it := b.c.Iterator()
	for it.SetNext() {
		entry, err := it.Value()
		if err != nil {
			continue
		}
		if strings.HasSuffix(entry.Key(), ext) {
			names = append(names, entry.Key())
		}
	}
	return names, nil
}

func (b *Backend) Persistent() bool { return false }

func (b *Backend) Close(_ context.Context) error { return b.c.Close() }
