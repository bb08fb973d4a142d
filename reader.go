package diffconv

import "context"

// ContentReader reads file content from a repository, either a blob stored
// at a revision or the current working-tree state. Implementations are
// bound to a repository at construction.
type ContentReader interface {
	// ReadBlob returns the content of path as stored at rev. rev is any
	// revision reference git resolves to a single commit, including
	// parent suffixes like "HEAD^".
	ReadBlob(ctx context.Context, rev, path string) ([]byte, error)

	// ReadWorkingTree returns the current on-disk content of path.
	ReadWorkingTree(ctx context.Context, path string) ([]byte, error)
}
