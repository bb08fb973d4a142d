package diffconv

import (
	"context"
	"path"

	"golang.org/x/sync/errgroup"
)

// resolveImages fetches both sides of an image comparison. Which reads
// happen is gated by the change's status: a new file has no previous side,
// a deleted file has no current side, and a conflicted working-tree file
// has neither because there is no single version to pick. The previous
// side follows the prior path when the file was renamed.
//
// The two reads are independent and run concurrently. A failed read - the
// blob is missing, the parent revision does not exist, the file is gone -
// resolves that side to nil rather than failing the comparison; only
// cancellation aborts the whole resolution.
func (c *Converter) resolveImages(ctx context.Context, change FileChange, rev string) (prev, cur *Image, err error) {
	if change.Origin == OriginWorkingTree && change.Status == StatusConflicted {
		return nil, nil, nil
	}

	currentRead, previousRead := c.reads(change, rev)

	g, ctx := errgroup.WithContext(ctx)
	if currentRead != nil {
		g.Go(func() error {
			cur = resolveSide(ctx, currentRead, change.Path)
			return ctx.Err()
		})
	}
	if previousRead != nil {
		g.Go(func() error {
			prev = resolveSide(ctx, previousRead, previousPath(change))
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return prev, cur, nil
}

type readFunc func(ctx context.Context) ([]byte, error)

// reads returns the read operation for each side, nil when the status
// rules that side out. The previous side of a working-tree change is read
// from HEAD; for a committed change it comes from the commit's first
// parent, which for a root commit simply fails and leaves the side absent.
func (c *Converter) reads(change FileChange, rev string) (current, previous readFunc) {
	prior := previousPath(change)
	switch change.Origin {
	case OriginWorkingTree:
		if change.Status != StatusDeleted {
			current = func(ctx context.Context) ([]byte, error) {
				return c.Reader.ReadWorkingTree(ctx, change.Path)
			}
		}
		if change.Status != StatusNew {
			previous = func(ctx context.Context) ([]byte, error) {
				return c.Reader.ReadBlob(ctx, "HEAD", prior)
			}
		}
	case OriginCommit:
		if change.Status != StatusDeleted {
			current = func(ctx context.Context) ([]byte, error) {
				return c.Reader.ReadBlob(ctx, rev, change.Path)
			}
		}
		if change.Status != StatusNew {
			previous = func(ctx context.Context) ([]byte, error) {
				return c.Reader.ReadBlob(ctx, rev+"^", prior)
			}
		}
	}
	return current, previous
}

// resolveSide runs one read and wraps the content into an Image tagged by
// the path's extension. Read failures yield nil.
func resolveSide(ctx context.Context, read readFunc, p string) *Image {
	content, err := read(ctx)
	if err != nil {
		return nil
	}
	img := NewImage(content, MediaTypeFor(path.Ext(p)))
	return &img
}

// previousPath returns the path the previous side lives at: the prior path
// for renames, the current path otherwise.
func previousPath(change FileChange) string {
	if change.PriorPath != "" {
		return change.PriorPath
	}
	return change.Path
}
