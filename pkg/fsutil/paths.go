// Package fsutil provides filesystem helpers shared across mfdl: permission
// constants, directory creation and filename sanitization.
package fsutil

import (
	"os"
	"strings"
	"unicode"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

// SanitizeFilename maps an untrusted remote filename to a safe local path
// component. Letters and digits (Unicode-wide), '-', '_', '.' and space are
// kept; every other rune is replaced with '-'. The mapping is total,
// deterministic, preserves the rune length of the input and is idempotent.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isSafeFilenameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func isSafeFilenameRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return r == '-' || r == '_' || r == '.' || r == ' '
}

// EnsureDir creates dir and any missing ancestors with the default directory
// mode. Paths beneath dir must not be written before this succeeds.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.ErrInvalidPath
	}
	if err := os.MkdirAll(dir, DirModeDefault); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}
	return nil
}
