package diffconv

import "context"

// Repository lists changes and produces raw patch text for them. It is the
// surface of the external diff tool; this package consumes its output and
// never constructs tool invocations itself.
type Repository interface {
	// Changes returns the files changed in the working tree when rev is
	// empty, or the files changed by the commit rev otherwise.
	Changes(ctx context.Context, rev string) ([]FileChange, error)

	// Patch returns the raw diff tool output for a single change,
	// suitable for passing to a Parser.
	Patch(ctx context.Context, change FileChange, rev string) (string, error)
}
