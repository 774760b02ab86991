//go:generate mockgen -destination=./mocks/orchestrator.go -package=mocks . Client,Transferer

package orchestrator

import (
	"context"

	"github.com/glorpus-work/mfdl/pkg/mediafire"
)

// Client is the subset of the MediaFire adapter consumed by the engine.
type Client interface {
	FileInfo(ctx context.Context, key string) (mediafire.FileInfo, error)
	FolderFilePage(ctx context.Context, key string, chunk int) (mediafire.FolderPage, error)
	FolderSubfolderPage(ctx context.Context, key string, chunk int) (mediafire.FolderPage, error)
	FolderInfo(ctx context.Context, key string) (string, error)
	ResolveDirectURL(ctx context.Context, landingURL string) (string, error)
}

// Transferer streams one remote resource to one local path.
type Transferer interface {
	Fetch(ctx context.Context, rawURL, destPath string) error
}

// Event represents a simple progress notification. File-level events
// (downloading, downloaded, skipped) carry the originating share link and
// the remote content hash so hook scripts see the full download context.
type Event struct {
	Phase     string // routing|listing|downloading|downloaded|skipped|done|error
	ID        string // share link, folder key or target path
	Msg       string
	ShareLink string
	Hash      string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}
