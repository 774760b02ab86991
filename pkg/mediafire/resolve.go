package mediafire

import (
	"regexp"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

var shareLinkPattern = regexp.MustCompile(`mediafire\.com/(folder|file)/([a-zA-Z0-9]+)`)

// ResolveShareLink parses a user-facing share link into a Ref. Links that
// match neither the file nor the folder pattern yield ErrInvalidShareLink.
func ResolveShareLink(rawURL string) (Ref, error) {
	m := shareLinkPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return Ref{}, errors.Wrapf(errors.ErrInvalidShareLink, "%s", rawURL)
	}
	return Ref{Kind: RefKind(m[1]), Key: m[2]}, nil
}
