package diffconv

import (
	"context"
	"path"
	"strings"
)

// imageExts are the extensions a binary diff is resolved as an image
// comparison for. The match is byte-exact, like MediaTypeFor.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Converter turns a parsed raw diff plus change metadata into a Result.
type Converter struct {
	Reader ContentReader
}

// NewConverter creates a Converter resolving image content through reader.
func NewConverter(reader ContentReader) *Converter {
	return &Converter{Reader: reader}
}

// Convert picks the Result variant for one file change. rev is the commit
// the change belongs to; it is ignored for working-tree changes.
//
// The decision is total: binary diffs become images when the extension is a
// known image type and bare binary markers otherwise, a first patch line
// mentioning a subproject commit becomes a submodule marker, and everything
// else - including an empty diff - becomes text. The only error returned is
// the context's, when a conversion is abandoned mid-resolution.
func (c *Converter) Convert(ctx context.Context, change FileChange, diff *RawDiff, rev string) (*Result, error) {
	if diff.Binary {
		if !imageExts[path.Ext(change.Path)] {
			return &Result{Kind: KindBinary}, nil
		}
		prev, cur, err := c.resolveImages(ctx, change, rev)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindImage, Previous: prev, Current: cur}, nil
	}
	if isSubmodulePointer(diff) {
		return &Result{Kind: KindSubmodule}, nil
	}
	return &Result{Kind: KindText, Text: Normalize(diff), Diff: diff}, nil
}

// isSubmodulePointer reports whether the diff looks like a submodule
// pointer change. Git renders those as "Subproject commit <sha>" patch
// lines; this checks the first line of the first hunk for the marker. It
// is a heuristic on the tool's output format, not structured submodule
// metadata.
func isSubmodulePointer(diff *RawDiff) bool {
	if len(diff.Hunks) == 0 || len(diff.Hunks[0].Lines) == 0 {
		return false
	}
	return strings.Contains(diff.Hunks[0].Lines[0].Content, "Subproject")
}

// Normalize reassembles the diff's lines into a single display string,
// giving every line a terminator. A line keeps its own "\n" if it has one,
// a bare "\r" is completed to "\r\n", and a line with no terminator at all
// gets "\r\n" appended. Applied per line, not to the whole text, because a
// patch mixes terminator styles whenever the file itself does.
func Normalize(diff *RawDiff) string {
	var b strings.Builder
	for _, hunk := range diff.Hunks {
		for _, line := range hunk.Lines {
			b.WriteString(line.Content)
			switch {
			case strings.HasSuffix(line.Content, "\n"):
			case strings.HasSuffix(line.Content, "\r"):
				b.WriteString("\n")
			default:
				b.WriteString("\r\n")
			}
		}
	}
	return b.String()
}
