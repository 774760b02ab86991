package orchestrator

import (
	"context"
	"path/filepath"

	"github.com/glorpus-work/mfdl/pkg/download"
	"github.com/glorpus-work/mfdl/pkg/errors"
	"github.com/glorpus-work/mfdl/pkg/fsutil"
	"github.com/glorpus-work/mfdl/pkg/hash"
	"github.com/glorpus-work/mfdl/pkg/mediafire"
)

// folderJob is one pending folder expansion: a remote folder key and the
// local directory its content materializes into.
type folderJob struct {
	key string
	dir string
}

// routeFolder expands a folder link into per-file outcomes. Traversal is an
// explicit work queue instead of recursion, so deep or wide trees neither
// grow the call stack nor stack concurrent batches: one file batch runs at a
// time per route, bounded by the shared scheduler cap.
func (o *Orchestrator) routeFolder(ctx context.Context, shareLink, key, baseDir string) ([]download.Outcome, error) {
	if err := fsutil.EnsureDir(baseDir); err != nil {
		return nil, err
	}

	// Only the root folder resolves its display name via a metadata call;
	// queued subfolders already carry their name from the parent listing.
	name, err := o.Client.FolderInfo(ctx, key)
	if err != nil {
		return nil, err
	}

	var outcomes []download.Outcome
	queue := []folderJob{{key: key, dir: filepath.Join(baseDir, fsutil.SanitizeFilename(name))}}

	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		branch, subfolders, err := o.expandFolder(ctx, shareLink, job)
		if err != nil {
			// A listing failure aborts only this branch. Siblings already
			// queued or scheduled are unaffected; the cause is surfaced as
			// this branch's outcome instead of being swallowed.
			o.emit(Event{Phase: "error", ID: job.key, Msg: err.Error(), ShareLink: shareLink})
			outcomes = append(outcomes, download.Outcome{ID: job.key, Status: download.StatusFailed, Err: err})
			continue
		}
		outcomes = append(outcomes, branch...)

		for _, sub := range subfolders {
			queue = append(queue, folderJob{
				key: sub.Key,
				dir: filepath.Join(job.dir, fsutil.SanitizeFilename(sub.Name)),
			})
		}
	}
	return outcomes, nil
}

// expandFolder materializes one folder level: creates the directory, pages
// through the file listing, skips up-to-date files without fetching their
// bodies, downloads the rest as one bounded batch, and returns the subfolder
// listing for the caller's queue. Outcomes are ordered per item, not per
// page.
func (o *Orchestrator) expandFolder(ctx context.Context, shareLink string, job folderJob) ([]download.Outcome, []mediafire.FolderRef, error) {
	if err := fsutil.EnsureDir(job.dir); err != nil {
		return nil, nil, err
	}

	o.emit(Event{Phase: "listing", ID: job.key, ShareLink: shareLink})
	files, err := o.listFiles(ctx, job.key)
	if err != nil {
		return nil, nil, err
	}

	outcomes := make([]download.Outcome, len(files))
	var units []download.Unit
	var slots []int

	for i, f := range files {
		dest := filepath.Join(job.dir, fsutil.SanitizeFilename(f.Filename))
		if hash.Matches(dest, f.Hash) {
			o.emit(Event{Phase: "skipped", ID: dest, ShareLink: shareLink, Hash: f.Hash})
			outcomes[i] = download.Outcome{ID: dest, Status: download.StatusSkipped}
			continue
		}
		units = append(units, download.Unit{
			ID: dest,
			Run: func(ctx context.Context) (download.Status, error) {
				return o.transferUnit(ctx, shareLink, f, dest)
			},
		})
		slots = append(slots, i)
	}

	// One scheduler batch per folder level, drawing from the shared gate.
	for j, out := range o.Sched.RunAll(ctx, units) {
		outcomes[slots[j]] = out
	}

	subfolders, err := o.listSubfolders(ctx, job.key)
	if err != nil {
		return outcomes, nil, err
	}
	return outcomes, subfolders, nil
}

// listFiles concatenates all pages of a folder's file listing in fetch
// order, failing with ErrPaginationExhausted past the page ceiling.
func (o *Orchestrator) listFiles(ctx context.Context, key string) ([]mediafire.FileInfo, error) {
	var files []mediafire.FileInfo
	for chunk := 1; ; chunk++ {
		if chunk > o.maxPages() {
			return nil, errors.Wrapf(errors.ErrPaginationExhausted, "folder %s file listing after %d pages", key, o.maxPages())
		}
		page, err := o.Client.FolderFilePage(ctx, key, chunk)
		if err != nil {
			return nil, err
		}
		files = append(files, page.Files...)
		if !page.MoreChunks {
			return files, nil
		}
	}
}

// listSubfolders concatenates all pages of a folder's subfolder listing.
func (o *Orchestrator) listSubfolders(ctx context.Context, key string) ([]mediafire.FolderRef, error) {
	var subfolders []mediafire.FolderRef
	for chunk := 1; ; chunk++ {
		if chunk > o.maxPages() {
			return nil, errors.Wrapf(errors.ErrPaginationExhausted, "folder %s subfolder listing after %d pages", key, o.maxPages())
		}
		page, err := o.Client.FolderSubfolderPage(ctx, key, chunk)
		if err != nil {
			return nil, err
		}
		subfolders = append(subfolders, page.Folders...)
		if !page.MoreChunks {
			return subfolders, nil
		}
	}
}
