// Package tempdir provides a throwaway directory backend under the OS temp
// root. Each constructed backend gets a fresh namespace; the directory is
// created eagerly so construction fails fast on permission problems.
package tempdir

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	be "github.com/keystow/keystow/backend"
	"github.com/keystow/keystow/backend/dirfs"
)

// DefaultLabel names the parent directory when the caller supplies none.
const DefaultLabel = "PersistenceProvider"

// Backend is a dirfs backend rooted at <tempRoot>/<label>/<8 hex chars>.
// Close never deletes anything; destructive teardown is only reachable
// through the explicit Cleanup call, so releasing a store can never wipe
// files another process may still want.
type Backend struct {
	*dirfs.Backend
}

// New creates the namespace directory immediately. label defaults to
// DefaultLabel; the 8-hex suffix comes from a fresh random UUID, so two
// backends with the same label never share a namespace.
func New(label string) (*Backend, error) {
	if label == "" {
		label = DefaultLabel
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	dir := filepath.Join(os.TempDir(), label, suffix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Backend{Backend: dirfs.New(dir)}, nil
}

// Persistent reports false: the OS may reap temp directories at any time.
func (b *Backend) Persistent() bool { return false }

// Cleanup recursively deletes the namespace directory. Best effort: the
// directory may already be gone or permissions may block deletion, and none
// of that is observable by the caller. After Cleanup the backend behaves as
// if the namespace were empty (Exists false, List empty).
func (b *Backend) Cleanup() {
	_ = os.RemoveAll(b.Dir())
}

var _ be.Backend = (*Backend)(nil)
