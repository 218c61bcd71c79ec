package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/svscodes/LeetLink/internal/domain/ports"
)

// Store is a settings store that holds a resource until closed.
type Store interface {
	ports.SettingsStore
	Close() error
}

// DefaultPath returns ~/.leetlink/settings.db.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".leetlink", "settings.db")
	}
	return filepath.Join(home, ".leetlink", "settings.db")
}

// Open picks the backend from the file extension: .yaml and .yml use a
// FileStore, anything else a BoltStore. An empty path means DefaultPath.
func Open(path string) (Store, error) {
	if path == "" {
		path = DefaultPath()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return OpenFile(path), nil
	default:
		store, err := OpenBolt(path)
		if err != nil {
			return nil, fmt.Errorf("open settings %s: %w", path, err)
		}
		return store, nil
	}
}
