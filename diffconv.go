// Package diffconv converts raw git diff output into typed, renderable
// diff values: text hunks, binary markers, image-comparison pairs, or
// submodule-pointer changes.
package diffconv

// Status represents the state of a changed file.
type Status int

// File statuses.
const (
	StatusModified Status = iota
	StatusNew
	StatusDeleted
	StatusRenamed
	StatusConflicted
)

func (s Status) String() string {
	switch s {
	case StatusModified:
		return "M"
	case StatusNew:
		return "A"
	case StatusDeleted:
		return "D"
	case StatusRenamed:
		return "R"
	case StatusConflicted:
		return "U"
	default:
		return " "
	}
}

// Origin distinguishes where a change lives: the working tree or a commit.
type Origin int

// Change origins.
const (
	OriginWorkingTree Origin = iota
	OriginCommit
)

// FileChange describes a single changed file. PriorPath is set only for
// renames; use the constructors to keep that invariant.
type FileChange struct {
	Path      string
	PriorPath string // set only when Status is StatusRenamed
	Status    Status
	Origin    Origin
}

// NewFileChange creates a FileChange for any non-rename status. A
// StatusRenamed passed here yields a rename with no prior path recorded;
// use NewRename for renames.
func NewFileChange(path string, status Status, origin Origin) FileChange {
	return FileChange{Path: path, Status: status, Origin: origin}
}

// NewRename creates a FileChange for a renamed file, recording the path the
// file had before the rename.
func NewRename(path, priorPath string, origin Origin) FileChange {
	return FileChange{
		Path:      path,
		PriorPath: priorPath,
		Status:    StatusRenamed,
		Origin:    origin,
	}
}

// LineType represents the type of a diff line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// Line represents a single line within a hunk. Content keeps whatever line
// terminator the patch carried, if any.
type Line struct {
	Type    LineType
	Content string
}

// Hunk represents a contiguous block of changes within a file.
type Hunk struct {
	OldStart int    // From @@ -X,...
	OldCount int    // From @@ -X,Y ...
	NewStart int    // From @@ ...,+X
	NewCount int    // From @@ ...,+X,Y
	Section  string // Optional function name after @@ ... @@
	Lines    []Line
}

// RawDiff is a parsed single-file patch: an ordered sequence of hunks plus
// a flag for binary content, which has no hunks to show.
type RawDiff struct {
	Binary bool
	Hunks  []Hunk
}

// LineAt returns the hunk and line at index i, counting across all hunks in
// order. The second return is false when i is out of range.
func (d *RawDiff) LineAt(i int) (*Hunk, *Line, bool) {
	if i < 0 {
		return nil, nil, false
	}
	for h := range d.Hunks {
		hunk := &d.Hunks[h]
		if i < len(hunk.Lines) {
			return hunk, &hunk.Lines[i], true
		}
		i -= len(hunk.Lines)
	}
	return nil, nil, false
}

// HunkForLine returns the hunk whose new-file line range covers line n.
// The second return is false when no hunk covers it.
func (d *RawDiff) HunkForLine(n int) (*Hunk, bool) {
	for h := range d.Hunks {
		hunk := &d.Hunks[h]
		if n >= hunk.NewStart && n < hunk.NewStart+hunk.NewCount {
			return hunk, true
		}
	}
	return nil, false
}

// Kind discriminates the variants of a Result.
type Kind int

// Result kinds.
const (
	KindText Kind = iota
	KindBinary
	KindImage
	KindSubmodule
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindImage:
		return "image"
	case KindSubmodule:
		return "submodule"
	default:
		return "unknown"
	}
}

// Result is the outcome of converting one file change. Exactly one variant
// is populated, selected by Kind:
//
//   - KindText: Text holds the normalized display string and Diff the hunks
//     and index lookups behind it.
//   - KindImage: Previous and Current hold the two sides of the comparison;
//     either or both may be nil when a side could not be resolved.
//   - KindBinary, KindSubmodule: markers with no payload.
type Result struct {
	Kind     Kind
	Text     string
	Diff     *RawDiff
	Previous *Image
	Current  *Image
}
