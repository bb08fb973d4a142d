package diffconv

// Parser parses raw diff tool output into a RawDiff.
type Parser interface {
	// Parse reads the raw, possibly NUL-delimited output of the diff tool
	// for a single file and returns the parsed result. Implementations
	// take the final NUL-separated segment, which holds the patch text.
	Parse(raw string) (*RawDiff, error)
}
