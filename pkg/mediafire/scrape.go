package mediafire

import (
	"context"
	"regexp"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

// The landing page carries the direct transfer URL inside the download_link
// block as an anchor with class "input popsok".
var (
	downloadBlockPattern  = regexp.MustCompile(`(?s)class="download_link".*`)
	downloadAnchorPattern = regexp.MustCompile(`(?s)class="input popsok"[^>]*href="([^"]+)"`)
)

// ResolveDirectURL fetches the intermediate landing page referenced by file
// metadata and extracts the final direct-transfer URL. This indirection may
// legitimately fail; the caller treats that as the failure of this unit of
// work only.
func (c *Client) ResolveDirectURL(ctx context.Context, landingURL string) (string, error) {
	html, err := c.get(ctx, landingURL)
	if err != nil {
		return "", errors.Wrap(errors.ErrResolutionFailed, err.Error())
	}

	block := downloadBlockPattern.Find(html)
	if block == nil {
		return "", errors.Wrapf(errors.ErrResolutionFailed, "no download link block on %s", landingURL)
	}
	m := downloadAnchorPattern.FindSubmatch(block)
	if m == nil {
		return "", errors.Wrapf(errors.ErrResolutionFailed, "no download anchor on %s", landingURL)
	}
	return string(m[1]), nil
}
