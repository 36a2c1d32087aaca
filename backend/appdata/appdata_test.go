package appdata

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNamespaceResolution(t *testing.T) {
	root := t.TempDir()
	orig := userDataDir
	userDataDir = func() (string, error) { return root, nil }
	defer func() { userDataDir = orig }()

	b, err := New(Config{App: "myapp", Subdir: "stores"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if want := filepath.Join(root, "myapp", "stores"); b.Dir() != want {
		t.Fatalf("Dir = %q, want %q", b.Dir(), want)
	}
	if !b.Persistent() {
		t.Fatalf("appdata backend must be persistent")
	}

	// namespace is lazy: nothing created until EnsureNamespace
	ctx := context.Background()
	if ok, _ := b.NamespaceExists(ctx); ok {
		t.Fatalf("namespace exists before first write")
	}
	if err := b.EnsureNamespace(ctx); err != nil {
		t.Fatalf("EnsureNamespace: %v", err)
	}
	if ok, _ := b.NamespaceExists(ctx); !ok {
		t.Fatalf("namespace missing after EnsureNamespace")
	}
}

func TestAppNameRequired(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty app name")
	}
}

func TestSubdirOptional(t *testing.T) {
	root := t.TempDir()
	orig := userDataDir
	userDataDir = func() (string, error) { return root, nil }
	defer func() { userDataDir = orig }()

	b, err := New(Config{App: "solo"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if want := filepath.Join(root, "solo"); b.Dir() != want {
		t.Fatalf("Dir = %q, want %q", b.Dir(), want)
	}
}
