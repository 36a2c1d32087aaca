// Package dirfs provides a directory-backed backend: one file per entry
// directly inside a caller-supplied base directory.
package dirfs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Backend persists entries as files under a base directory. The directory is
// created lazily by EnsureNamespace and never removed by the backend.
//
// Writes follow a write-temp/delete/rename sequence: content goes to
// <path>.tmp, a pre-existing <path> is deleted, then the temp file is renamed
// into place. A concurrent reader therefore never sees a torn file, but a
// crash between the delete and the rename leaves no file at <path>. A write
// aborted mid-flight may leave a stray .tmp behind; those are never cleaned
// up and are invisible to Read/List (wrong extension).
type Backend struct {
	dir string
}

func New(dir string) *Backend { return &Backend{dir: dir} }

// Dir returns the namespace directory.
func (b *Backend) Dir() string { return b.dir }

func (b *Backend) EnsureNamespace(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(b.dir, 0o755)
}

func (b *Backend) NamespaceExists(_ context.Context) (bool, error) {
	fi, err := os.Stat(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}

func (b *Backend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	final := filepath.Join(b.dir, name)
	tmp := final + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if _, err := os.Stat(final); err == nil {
		if err := os.Remove(final); err != nil {
			os.Remove(tmp)
			return err
		}
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (b *Backend) Read(ctx context.Context, name string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filepath.Join(b.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b *Backend) Exists(_ context.Context, name string) (bool, error) {
	fi, err := os.Stat(filepath.Join(b.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

func (b *Backend) Delete(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := os.Remove(filepath.Join(b.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (b *Backend) List(ctx context.Context, ext string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	des, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		if strings.HasSuffix(de.Name(), ext) {
			names = append(names, de.Name())
		}
	}
	return names, nil
}

func (b *Backend) Persistent() bool { return true }

func (b *Backend) Close(_ context.Context) error { return nil }
