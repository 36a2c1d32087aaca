// Package appdata provides a backend rooted in the OS-specific per-user
// application data directory. Apart from namespace resolution it behaves
// exactly like dirfs.
package appdata

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/keystow/keystow/backend/dirfs"
)

// userDataDir is a seam for tests.
var userDataDir = os.UserConfigDir

type Config struct {
	// App names the application subdirectory under the user data root.
	App string
	// Subdir optionally nests the namespace one level deeper, letting one
	// application keep several independent stores.
	Subdir string
}

type Backend struct {
	*dirfs.Backend
}

// New resolves the user data root (os.UserConfigDir) and returns a backend
// rooted at <root>/<app>[/<subdir>]. The directory itself is created lazily
// on first write, like any dirfs namespace.
func New(cfg Config) (*Backend, error) {
	if cfg.App == "" {
		return nil, errors.New("appdata: app name is required")
	}
	root, err := userDataDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(root, cfg.App)
	if cfg.Subdir != "" {
		dir = filepath.Join(dir, cfg.Subdir)
	}
	return &Backend{Backend: dirfs.New(dir)}, nil
}
