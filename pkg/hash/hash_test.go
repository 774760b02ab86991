package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.bin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func digestOf(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func TestFile(t *testing.T) {
	path := writeFile(t, "test content")

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, digestOf("test content"), got)
}

func TestFile_LargerThanChunk(t *testing.T) {
	// Content spanning several hashing chunks must produce the same digest
	// as a one-shot hash.
	content := strings.Repeat("0123456789abcdef", 1024)
	path := writeFile(t, content)

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, digestOf(content), got)
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestMatches(t *testing.T) {
	path := writeFile(t, "test content")
	want := digestOf("test content")

	tests := []struct {
		name     string
		path     string
		hash     string
		expected bool
	}{
		{
			name:     "digest matches",
			path:     path,
			hash:     want,
			expected: true,
		},
		{
			name:     "digest matches uppercase hex",
			path:     path,
			hash:     strings.ToUpper(want),
			expected: true,
		},
		{
			name:     "digest differs",
			path:     path,
			hash:     digestOf("other content"),
			expected: false,
		},
		{
			name:     "non-existent path",
			path:     filepath.Join(t.TempDir(), "missing"),
			hash:     want,
			expected: false,
		},
		{
			name:     "empty expected hash",
			path:     path,
			hash:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.path, tt.hash))
		})
	}
}

func TestMatches_Directory(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Matches(dir, digestOf("anything")))
}
