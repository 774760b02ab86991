package mediafire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

func TestResolveShareLink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Ref
		wantErr  bool
	}{
		{
			name:     "file link",
			input:    "https://www.mediafire.com/file/abc123XYZ/report.pdf/file",
			expected: Ref{Kind: RefFile, Key: "abc123XYZ"},
		},
		{
			name:     "folder link",
			input:    "https://www.mediafire.com/folder/k9q2w8e7/shared-stuff",
			expected: Ref{Kind: RefFolder, Key: "k9q2w8e7"},
		},
		{
			name:     "bare host without scheme",
			input:    "mediafire.com/file/deadbeef",
			expected: Ref{Kind: RefFile, Key: "deadbeef"},
		},
		{
			name:     "link embedded in surrounding text",
			input:    "grab it at https://mediafire.com/folder/f00f00 today",
			expected: Ref{Kind: RefFolder, Key: "f00f00"},
		},
		{
			name:    "unrelated host",
			input:   "https://example.com/file/abc123",
			wantErr: true,
		},
		{
			name:    "unsupported kind",
			input:   "https://www.mediafire.com/view/abc123",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ResolveShareLink(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidShareLink)
				assert.Equal(t, Ref{}, ref)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}
}
