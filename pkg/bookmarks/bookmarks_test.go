package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractLinks(t *testing.T) {
	content := `<DL><p>
		<DT><A HREF="https://www.mediafire.com/file/abc123/report.pdf/file">report</A>
		<DT><A HREF="https://example.com/unrelated">other</A>
		plain text with http://www.mediafire.com/folder/k9q2w8e7 inline
	</p></DL>`

	tests := []struct {
		name       string
		hostFilter string
		expected   []string
	}{
		{
			name:       "no filter returns every url",
			hostFilter: "",
			expected: []string{
				"https://www.mediafire.com/file/abc123/report.pdf/file",
				"https://example.com/unrelated",
				"http://www.mediafire.com/folder/k9q2w8e7",
			},
		},
		{
			name:       "host filter keeps matching urls in order",
			hostFilter: "mediafire.com",
			expected: []string{
				"https://www.mediafire.com/file/abc123/report.pdf/file",
				"http://www.mediafire.com/folder/k9q2w8e7",
			},
		},
		{
			name:       "filter matching nothing",
			hostFilter: "nosuchhost.invalid",
			expected:   nil,
		},
	}

	path := writeFile(t, content)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links, err := ExtractLinks(path, tt.hostFilter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, links)
		})
	}
}

func TestExtractLinks_MultiplePerLine(t *testing.T) {
	path := writeFile(t, `see https://a.example/one and https://b.example/two here`)

	links, err := ExtractLinks(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/one", "https://b.example/two"}, links)
}

func TestExtractLinks_EmptyFile(t *testing.T) {
	path := writeFile(t, "")

	links, err := ExtractLinks(path, "")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestExtractLinks_MissingFile(t *testing.T) {
	_, err := ExtractLinks(filepath.Join(t.TempDir(), "nope.html"), "")
	require.Error(t, err)
}
