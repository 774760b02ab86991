// Package mediafire is the thin adapter around MediaFire's web and API
// surface: share link parsing, file and folder metadata, paginated folder
// listings and landing-page resolution of direct download URLs. Everything
// here is swappable; the download engine only consumes the returned types.
package mediafire

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/glorpus-work/mfdl/internal/logger"
	"github.com/glorpus-work/mfdl/pkg/errors"
)

// DefaultBaseURL is the production MediaFire endpoint.
const DefaultBaseURL = "https://www.mediafire.com"

// SupportedAPIVersion is the folder API version this client requests. A
// backend reporting a newer current version is logged, not rejected.
const SupportedAPIVersion = "1.5"

// Client talks to the MediaFire API and landing pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a MediaFire client with the given timeout and user agent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = "mfdl/1.0"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    DefaultBaseURL,
		userAgent:  userAgent,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// FileInfo fetches the remote metadata of a single file by quick key.
func (c *Client) FileInfo(ctx context.Context, key string) (FileInfo, error) {
	endpoint := fmt.Sprintf("%s/api/file/get_info.php?quick_key=%s&response_format=json",
		c.baseURL, url.QueryEscape(key))

	var parsed fileInfoResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return FileInfo{}, errors.Wrapf(err, "failed to fetch file info for %s", key)
	}
	c.checkAPIVersion(parsed.Response.CurrentAPIVersion)
	return parsed.Response.FileInfo.toFileInfo(), nil
}

// FolderFilePage fetches one page of the file listing of a folder.
// Chunk numbering starts at 1.
func (c *Client) FolderFilePage(ctx context.Context, key string, chunk int) (FolderPage, error) {
	return c.folderContent(ctx, key, "files", chunk)
}

// FolderSubfolderPage fetches one page of the subfolder listing of a folder.
func (c *Client) FolderSubfolderPage(ctx context.Context, key string, chunk int) (FolderPage, error) {
	return c.folderContent(ctx, key, "folders", chunk)
}

func (c *Client) folderContent(ctx context.Context, key, contentType string, chunk int) (FolderPage, error) {
	endpoint := c.folderURL("get_content", contentType, key, chunk)

	var parsed folderContentResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return FolderPage{}, errors.Wrapf(err, "failed to fetch folder %s listing for %s", contentType, key)
	}
	c.checkAPIVersion(parsed.Response.CurrentAPIVersion)

	content := parsed.Response.FolderContent
	page := FolderPage{MoreChunks: content.MoreChunks == "yes"}
	for _, f := range content.Files {
		page.Files = append(page.Files, f.toFileInfo())
	}
	for _, sub := range content.Folders {
		page.Folders = append(page.Folders, FolderRef{Key: sub.FolderKey, Name: sub.Name})
	}
	return page, nil
}

// FolderInfo resolves a folder's display name via a metadata-only call.
func (c *Client) FolderInfo(ctx context.Context, key string) (string, error) {
	endpoint := c.folderURL("get_info", "folders", key, 1)

	var parsed folderInfoResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return "", errors.Wrapf(err, "failed to fetch folder info for %s", key)
	}
	c.checkAPIVersion(parsed.Response.CurrentAPIVersion)
	return parsed.Response.FolderInfo.Name, nil
}

func (c *Client) folderURL(operation, contentType, key string, chunk int) string {
	return fmt.Sprintf("%s/api/1.4/folder/%s.php?r=utga&content_type=%s"+
		"&filter=all&order_by=name&order_direction=asc&chunk=%s"+
		"&version=%s&folder_key=%s&response_format=json",
		c.baseURL, operation, contentType, strconv.Itoa(chunk),
		SupportedAPIVersion, url.QueryEscape(key))
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target interface{}) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.Wrap(err, "failed to decode API response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, errors.ErrDownloadFailed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

// checkAPIVersion warns when the backend reports a newer API version than
// this client was written against.
func (c *Client) checkAPIVersion(current string) {
	if current == "" {
		return
	}
	got, err := goversion.NewVersion(current)
	if err != nil {
		return
	}
	supported, err := goversion.NewVersion(SupportedAPIVersion)
	if err != nil {
		return
	}
	if got.GreaterThan(supported) {
		logger.Warnf("MediaFire reports API version %s, newer than supported %s", current, SupportedAPIVersion)
	}
}
