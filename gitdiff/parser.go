// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffconv"
)

// Compile-time interface verification.
var _ diffconv.Parser = (*Parser)(nil)

// Parser parses single-file unified diff output using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads raw diff tool output and returns the parsed result. Tool
// output for a single file can carry NUL-separated header segments before
// the patch text; the patch is always the final segment. An input with no
// patch at all (a mode-only change, say) parses to an empty, non-binary
// RawDiff.
func (p *Parser) Parse(raw string) (*diffconv.RawDiff, error) {
	segments := strings.Split(raw, "\x00")
	patch := segments[len(segments)-1]

	files, _, err := gitdiff.Parse(strings.NewReader(patch))
	if err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}
	if len(files) == 0 {
		return &diffconv.RawDiff{}, nil
	}

	f := files[0]
	diff := &diffconv.RawDiff{
		Binary: f.IsBinary,
		Hunks:  make([]diffconv.Hunk, 0, len(f.TextFragments)),
	}
	for _, frag := range f.TextFragments {
		diff.Hunks = append(diff.Hunks, convertFragment(frag))
	}
	return diff, nil
}

func convertFragment(frag *gitdiff.TextFragment) diffconv.Hunk {
	hunk := diffconv.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
	}
	for _, l := range frag.Lines {
		hunk.Lines = append(hunk.Lines, diffconv.Line{
			Type:    lineType(l.Op),
			Content: l.Line,
		})
	}
	return hunk
}

func lineType(op gitdiff.LineOp) diffconv.LineType {
	switch op {
	case gitdiff.OpAdd:
		return diffconv.LineAdded
	case gitdiff.OpDelete:
		return diffconv.LineDeleted
	default:
		return diffconv.LineContext
	}
}
