// Package mock provides test doubles for diffconv interfaces. Calling a
// method whose Fn field is nil panics, so tests that expect an operation
// never to happen can leave it unset.
package mock

import (
	"context"

	"github.com/fwojciec/diffconv"
)

// Compile-time interface verification.
var (
	_ diffconv.ContentReader = (*ContentReader)(nil)
	_ diffconv.Parser        = (*Parser)(nil)
	_ diffconv.Repository    = (*Repository)(nil)
)

// ContentReader is a mock implementation of diffconv.ContentReader.
type ContentReader struct {
	ReadBlobFn        func(ctx context.Context, rev, path string) ([]byte, error)
	ReadWorkingTreeFn func(ctx context.Context, path string) ([]byte, error)
}

// ReadBlob invokes ReadBlobFn.
func (r *ContentReader) ReadBlob(ctx context.Context, rev, path string) ([]byte, error) {
	return r.ReadBlobFn(ctx, rev, path)
}

// ReadWorkingTree invokes ReadWorkingTreeFn.
func (r *ContentReader) ReadWorkingTree(ctx context.Context, path string) ([]byte, error) {
	return r.ReadWorkingTreeFn(ctx, path)
}

// Parser is a mock implementation of diffconv.Parser.
type Parser struct {
	ParseFn func(raw string) (*diffconv.RawDiff, error)
}

// Parse invokes ParseFn.
func (p *Parser) Parse(raw string) (*diffconv.RawDiff, error) {
	return p.ParseFn(raw)
}

// Repository is a mock implementation of diffconv.Repository.
type Repository struct {
	ChangesFn func(ctx context.Context, rev string) ([]diffconv.FileChange, error)
	PatchFn   func(ctx context.Context, change diffconv.FileChange, rev string) (string, error)
}

// Changes invokes ChangesFn.
func (r *Repository) Changes(ctx context.Context, rev string) ([]diffconv.FileChange, error) {
	return r.ChangesFn(ctx, rev)
}

// Patch invokes PatchFn.
func (r *Repository) Patch(ctx context.Context, change diffconv.FileChange, rev string) (string, error) {
	return r.PatchFn(ctx, change, rev)
}
