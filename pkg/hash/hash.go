// Package hash computes content digests of local files and decides whether
// a file on disk already matches expected remote content. The digest check
// is a best-effort optimization: any read error means "not up to date" and
// is never treated as fatal.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

// chunkSize bounds the memory used while hashing, independent of file size.
const chunkSize = 1024

// File returns the hex-encoded SHA-256 digest of the file at path, reading
// it in fixed-size chunks.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s for hashing", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", errors.Wrapf(err, "failed to hash %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Matches reports whether path exists, is a regular file and its digest
// equals wantHex (case-insensitive). Errors of any kind yield false.
func Matches(path, wantHex string) bool {
	if wantHex == "" {
		return false
	}
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		return false
	}
	got, err := File(path)
	if err != nil {
		return false
	}
	return got == strings.ToLower(strings.TrimSpace(wantHex))
}
