// Package memory provides an instance-scoped in-memory backend. Nothing
// survives the process; Persistent reports false.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Backend stores entries in a mutex-guarded map owned by this instance.
// Concurrent writers to the same name resolve last-write-wins. The map is
// the namespace: it comes into existence on the first EnsureNamespace call.
type Backend struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func New() *Backend { return &Backend{} }

func (b *Backend) EnsureNamespace(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.entries == nil {
		b.entries = make(map[string][]byte)
	}
	return nil
}

func (b *Backend) NamespaceExists(_ context.Context) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.entries != nil, nil
}

func (b *Backend) Write(_ context.Context, name string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.entries == nil {
		b.entries = make(map[string][]byte)
	}
	b.entries[name] = cp
	return nil
}

func (b *Backend) Read(_ context.Context, name string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.entries[name]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (b *Backend) Exists(_ context.Context, name string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.entries[name]
	return ok, nil
}

func (b *Backend) Delete(_ context.Context, name string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entries[name]; !ok {
		return false, nil
	}
	delete(b.entries, name)
	return true, nil
}

func (b *Backend) List(_ context.Context, ext string) ([]string, error) {
	b.mu.RLock()
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		if strings.HasSuffix(name, ext) {
			names = append(names, name)
		}
	}
	b.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (b *Backend) Persistent() bool { return false }

func (b *Backend) Close(_ context.Context) error { return nil }
