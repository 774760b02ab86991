// Package orchestrator routes share links to single-file or folder-tree
// downloads and drives them through the bounded scheduler. It is the unit of
// work the bulk API schedules: errors inside one link's route never cross
// that link's boundary.
package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/glorpus-work/mfdl/pkg/download"
	mfderrors "github.com/glorpus-work/mfdl/pkg/errors"
	"github.com/glorpus-work/mfdl/pkg/fsutil"
	"github.com/glorpus-work/mfdl/pkg/hash"
	"github.com/glorpus-work/mfdl/pkg/mediafire"
)

// DefaultMaxPages bounds folder listing pagination. A backend that keeps
// reporting more chunks beyond this fails the branch with
// ErrPaginationExhausted instead of looping forever.
const DefaultMaxPages = 100

// Orchestrator ties the MediaFire adapter, the transfer engine and the
// bounded scheduler together.
type Orchestrator struct {
	Client   Client
	Transfer Transferer
	Sched    *download.Scheduler
	MaxPages int
	Hooks    Hooks
}

// New constructs an Orchestrator from existing components. Helper for wiring.
func New(client Client, transfer Transferer, sched *download.Scheduler, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		Client:   client,
		Transfer: transfer,
		Sched:    sched,
		MaxPages: DefaultMaxPages,
		Hooks:    hooks,
	}
}

// DownloadOne routes a single share link into dir and returns one outcome
// per downloadable item: a single outcome for a file link, the flattened
// per-file outcomes for a folder link.
func (o *Orchestrator) DownloadOne(ctx context.Context, shareLink, dir string) ([]download.Outcome, error) {
	return o.Route(ctx, shareLink, dir)
}

// DownloadMany routes all share links into dir and returns one route-level
// outcome per link, order-correspondent with the input. Routing and listing
// run unbounded; the scheduler's single permit gate bounds the transfers
// underneath, regardless of which link they belong to. No retries: a failed
// link is final for this run; re-running relies on the digest skip check.
func (o *Orchestrator) DownloadMany(ctx context.Context, shareLinks []string, dir string) []download.Outcome {
	outcomes := make([]download.Outcome, len(shareLinks))
	var wg sync.WaitGroup
	for i, link := range shareLinks {
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()
			outcomes[i] = download.Run(ctx, download.Unit{
				ID: link,
				Run: func(ctx context.Context) (download.Status, error) {
					items, err := o.Route(ctx, link, dir)
					if err != nil {
						return download.StatusFailed, err
					}
					return summarize(items)
				},
			})
		}(i, link)
	}
	wg.Wait()
	return outcomes
}

// Route classifies shareLink and dispatches to the single-file or
// folder-tree download.
func (o *Orchestrator) Route(ctx context.Context, shareLink, baseDir string) ([]download.Outcome, error) {
	o.emit(Event{Phase: "routing", ID: shareLink})

	ref, err := mediafire.ResolveShareLink(shareLink)
	if err != nil {
		return nil, err
	}

	switch ref.Kind {
	case mediafire.RefFile:
		outcome := o.routeFile(ctx, shareLink, ref.Key, baseDir)
		return []download.Outcome{outcome}, nil
	case mediafire.RefFolder:
		return o.routeFolder(ctx, shareLink, ref.Key, baseDir)
	}
	return nil, mfderrors.Wrapf(mfderrors.ErrInvalidShareLink, "unsupported link kind %q", ref.Kind)
}

// routeFile downloads one file link: metadata, direct URL resolution, digest
// skip check, then the transfer as a scheduled unit so it counts against the
// global permit gate like every folder transfer does.
func (o *Orchestrator) routeFile(ctx context.Context, shareLink, key, dir string) download.Outcome {
	fail := func(err error) download.Outcome {
		o.emit(Event{Phase: "error", ID: key, Msg: err.Error(), ShareLink: shareLink})
		return download.Outcome{ID: key, Status: download.StatusFailed, Err: err}
	}

	if err := fsutil.EnsureDir(dir); err != nil {
		return fail(err)
	}
	info, err := o.Client.FileInfo(ctx, key)
	if err != nil {
		return fail(err)
	}
	directURL, err := o.Client.ResolveDirectURL(ctx, info.NormalDownloadURL)
	if err != nil {
		return fail(err)
	}

	dest := filepath.Join(dir, fsutil.SanitizeFilename(info.Filename))
	if hash.Matches(dest, info.Hash) {
		o.emit(Event{Phase: "skipped", ID: dest, ShareLink: shareLink, Hash: info.Hash})
		return download.Outcome{ID: dest, Status: download.StatusSkipped}
	}

	out := o.Sched.RunAll(ctx, []download.Unit{{
		ID: dest,
		Run: func(ctx context.Context) (download.Status, error) {
			o.emit(Event{Phase: "downloading", ID: dest, ShareLink: shareLink, Hash: info.Hash})
			if err := o.Transfer.Fetch(ctx, directURL, dest); err != nil {
				return download.StatusFailed, err
			}
			o.emit(Event{Phase: "downloaded", ID: dest, ShareLink: shareLink, Hash: info.Hash})
			return download.StatusCompleted, nil
		},
	}})[0]
	if out.Status == download.StatusFailed {
		return fail(out.Err)
	}
	return out
}

// transferUnit resolves a file's direct URL and streams it to dest. It is
// the Run body of every file unit queued by the folder walker.
func (o *Orchestrator) transferUnit(ctx context.Context, shareLink string, info mediafire.FileInfo, dest string) (download.Status, error) {
	directURL, err := o.Client.ResolveDirectURL(ctx, info.NormalDownloadURL)
	if err != nil {
		return download.StatusFailed, err
	}
	o.emit(Event{Phase: "downloading", ID: dest, ShareLink: shareLink, Hash: info.Hash})
	if err := o.Transfer.Fetch(ctx, directURL, dest); err != nil {
		return download.StatusFailed, err
	}
	o.emit(Event{Phase: "downloaded", ID: dest, ShareLink: shareLink, Hash: info.Hash})
	return download.StatusCompleted, nil
}

// summarize folds per-item outcomes into one route-level outcome: Failed if
// any item failed, Skipped if every item (at least one) was skipped,
// Completed otherwise.
func summarize(items []download.Outcome) (download.Status, error) {
	var errs []error
	skipped := 0
	for _, item := range items {
		switch item.Status {
		case download.StatusFailed:
			errs = append(errs, item.Err)
		case download.StatusSkipped:
			skipped++
		case download.StatusCompleted:
		}
	}
	if len(errs) > 0 {
		return download.StatusFailed, errors.Join(errs...)
	}
	if len(items) > 0 && skipped == len(items) {
		return download.StatusSkipped, nil
	}
	return download.StatusCompleted, nil
}

func (o *Orchestrator) emit(e Event) {
	if o.Hooks.OnEvent != nil {
		o.Hooks.OnEvent(e)
	}
}

func (o *Orchestrator) maxPages() int {
	if o.MaxPages > 0 {
		return o.MaxPages
	}
	return DefaultMaxPages
}
