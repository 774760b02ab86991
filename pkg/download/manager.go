// Package download contains the transfer engine and the bounded scheduler:
// streaming one remote resource to one local path, and running many such
// tasks under a global concurrency ceiling with per-unit failure isolation.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/glorpus-work/mfdl/pkg/errors"
	"github.com/glorpus-work/mfdl/pkg/fsutil"
)

// DefaultChunkSize bounds the memory used per transfer regardless of the
// size of the remote file.
const DefaultChunkSize = 512

// ProgressFactory creates a progress sink for one transfer. total is the
// declared Content-Length, 0 when the header is absent. A nil factory (or a
// nil returned writer) disables progress accounting.
type ProgressFactory func(filename string, total int64) io.Writer

// Manager streams remote resources to local files over HTTP.
type Manager struct {
	client    *http.Client
	userAgent string
	chunkSize int
	progress  ProgressFactory
}

// NewManager creates a transfer manager with the given timeout, user agent
// and chunk size. Zero chunkSize selects DefaultChunkSize.
func NewManager(timeout time.Duration, userAgent string, chunkSize int) *Manager {
	if userAgent == "" {
		userAgent = "mfdl/1.0"
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Manager{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		chunkSize: chunkSize,
	}
}

// SetProgress installs a progress sink factory used for subsequent fetches.
func (m *Manager) SetProgress(factory ProgressFactory) {
	m.progress = factory
}

// Fetch streams rawURL to destPath, creating the parent directory first.
// The response body is copied chunk by chunk, so memory stays bounded by the
// chunk size. The target file handle is closed on every exit path. A partial
// file written before a failure is left in place: a later run detects it via
// the digest check and redownloads.
func (m *Manager) Fetch(ctx context.Context, rawURL, destPath string) error {
	resp, err := m.doRequest(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := fsutil.EnsureDir(filepath.Dir(destPath)); err != nil {
		return err
	}

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", destPath)
	}
	defer func() { _ = out.Close() }()

	var dst io.Writer = out
	if m.progress != nil {
		// Content-Length is used for progress reporting only; its absence
		// must not abort the transfer.
		total, _ := strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
		if sink := m.progress(filepath.Base(destPath), total); sink != nil {
			dst = io.MultiWriter(out, sink)
		}
	}

	buf := make([]byte, m.chunkSize)
	if _, err := io.CopyBuffer(dst, resp.Body, buf); err != nil {
		return errors.Wrapf(err, "failed to write %s", destPath)
	}
	return nil
}

func (m *Manager) doRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "download failed")
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, errors.ErrDownloadFailed)
	}
	return resp, nil
}
