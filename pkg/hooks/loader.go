package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

// HookFileExtensions lists the supported hook file extensions.
var HookFileExtensions = map[string]bool{
	".tengo": true,
}

// LoadHooksFromDir loads all hook scripts from a directory. Files are
// matched by name: <hooks-dir>/<hook-type>.tengo. Unknown names and
// unsupported extensions are skipped.
func LoadHooksFromDir(manager HookManager, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if _, ok := HookFileExtensions[ext]; !ok {
			continue // Skip unsupported file types
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), ext))
		switch hookType {
		case PreDownload, PostDownload:
			// Valid hook type
		default:
			continue // Skip unknown hook types
		}

		hookPath := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(hookPath)
		if err != nil {
			return errors.Wrapf(err, "error reading hook file %s", hookPath)
		}

		if err := manager.AddHook(Hook{
			Type:    hookType,
			Content: string(content),
		}); err != nil {
			return errors.Wrapf(err, "error adding hook %s", hookType)
		}
	}

	return nil
}
