package tempdir_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/keystow/keystow"
	"github.com/keystow/keystow/backend/tempdir"
	ser "github.com/keystow/keystow/serializer"
)

var hexSuffix = regexp.MustCompile(`^[0-9a-f]{8}$`)

func newTempBackend(t *testing.T, label string) *tempdir.Backend {
	t.Helper()
	b, err := tempdir.New(label)
	if err != nil {
		t.Fatalf("tempdir.New: %v", err)
	}
	t.Cleanup(b.Cleanup)
	return b
}

func TestDirectoryNaming(t *testing.T) {
	b := newTempBackend(t, "keystow-naming-test")

	dir := b.Dir()
	if filepath.Dir(dir) != filepath.Join(os.TempDir(), "keystow-naming-test") {
		t.Fatalf("unexpected parent: %q", dir)
	}
	if !hexSuffix.MatchString(filepath.Base(dir)) {
		t.Fatalf("suffix %q is not 8 hex chars", filepath.Base(dir))
	}
	// created eagerly at construction
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("namespace not created: %v", err)
	}
	if b.Persistent() {
		t.Fatalf("temp backend claims persistence")
	}
}

func TestDefaultLabel(t *testing.T) {
	b := newTempBackend(t, "")
	if filepath.Dir(b.Dir()) != filepath.Join(os.TempDir(), tempdir.DefaultLabel) {
		t.Fatalf("default label not applied: %q", b.Dir())
	}
}

func TestFreshNamespacePerBackend(t *testing.T) {
	a := newTempBackend(t, "keystow-fresh-test")
	b := newTempBackend(t, "keystow-fresh-test")
	if a.Dir() == b.Dir() {
		t.Fatalf("two backends share namespace %q", a.Dir())
	}
}

func TestCloseKeepsDataCleanupDeletes(t *testing.T) {
	ctx := context.Background()
	b := newTempBackend(t, "keystow-cleanup-test")
	st, err := keystow.New[string, int](keystow.Options[string, int]{
		Backend:    b,
		Serializer: ser.JSON[int]{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	v := 7
	if err := st.Store(ctx, "n", &v); err != nil {
		t.Fatalf("Store: %v", err)
	}

	// ordinary release never deletes
	if err := st.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(filepath.Join(b.Dir(), "n.json")); err != nil {
		t.Fatalf("Close deleted data: %v", err)
	}

	// explicit cleanup does, and it is safe to repeat
	b.Cleanup()
	if _, err := os.Stat(b.Dir()); !os.IsNotExist(err) {
		t.Fatalf("Cleanup left directory: %v", err)
	}
	b.Cleanup()

	// the removed store consistently reports nothing
	if ok, err := st.Exists(ctx, "n"); err != nil || ok {
		t.Fatalf("Exists after cleanup: ok=%v err=%v", ok, err)
	}
	keys, err := st.ListKeys(ctx)
	if err != nil || len(keys) != 0 {
		t.Fatalf("ListKeys after cleanup: keys=%v err=%v", keys, err)
	}
}
