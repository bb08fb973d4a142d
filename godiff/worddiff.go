// Package godiff implements word-level diffing using sergi/go-diff.
package godiff

import (
	"github.com/fwojciec/diffconv"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ diffconv.WordDiffer = (*Differ)(nil)

// Differ computes intra-line changed segments between two strings.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{dmp: diffmatchpatch.New()}
}

// Diff returns segments for both the old and new strings, marking which
// portions changed between them. Semantic cleanup merges character-level
// noise into word-sized segments.
func (d *Differ) Diff(old, new string) (oldSegs, newSegs []diffconv.Segment) {
	diffs := d.dmp.DiffMain(old, new, false)
	diffs = d.dmp.DiffCleanupSemantic(diffs)

	for _, df := range diffs {
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			oldSegs = append(oldSegs, diffconv.Segment{Text: df.Text})
			newSegs = append(newSegs, diffconv.Segment{Text: df.Text})
		case diffmatchpatch.DiffDelete:
			oldSegs = append(oldSegs, diffconv.Segment{Text: df.Text, Changed: true})
		case diffmatchpatch.DiffInsert:
			newSegs = append(newSegs, diffconv.Segment{Text: df.Text, Changed: true})
		}
	}
	return oldSegs, newSegs
}
