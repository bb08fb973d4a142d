package diffconv_test

import (
	"testing"

	"github.com/fwojciec/diffconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileChangeConstructors(t *testing.T) {
	t.Parallel()

	t.Run("prior path is recorded only for renames", func(t *testing.T) {
		t.Parallel()

		rename := diffconv.NewRename("new.txt", "old.txt", diffconv.OriginCommit)
		assert.Equal(t, diffconv.StatusRenamed, rename.Status)
		assert.Equal(t, "old.txt", rename.PriorPath)

		modified := diffconv.NewFileChange("a.txt", diffconv.StatusModified, diffconv.OriginWorkingTree)
		assert.Empty(t, modified.PriorPath)
	})
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", diffconv.StatusNew.String())
	assert.Equal(t, "M", diffconv.StatusModified.String())
	assert.Equal(t, "D", diffconv.StatusDeleted.String())
	assert.Equal(t, "R", diffconv.StatusRenamed.String())
	assert.Equal(t, "U", diffconv.StatusConflicted.String())
}

func TestRawDiff_LineAt(t *testing.T) {
	t.Parallel()

	diff := &diffconv.RawDiff{Hunks: []diffconv.Hunk{
		{Lines: []diffconv.Line{{Content: "one\n"}, {Content: "two\n"}}},
		{Lines: []diffconv.Line{{Content: "three\n"}}},
	}}

	t.Run("indexes lines across hunks", func(t *testing.T) {
		t.Parallel()

		hunk, line, ok := diff.LineAt(2)
		require.True(t, ok)
		assert.Equal(t, "three\n", line.Content)
		assert.Same(t, &diff.Hunks[1], hunk)
	})

	t.Run("reports out of range indexes", func(t *testing.T) {
		t.Parallel()

		_, _, ok := diff.LineAt(3)
		assert.False(t, ok)
		_, _, ok = diff.LineAt(-1)
		assert.False(t, ok)
	})
}

func TestRawDiff_HunkForLine(t *testing.T) {
	t.Parallel()

	diff := &diffconv.RawDiff{Hunks: []diffconv.Hunk{
		{NewStart: 1, NewCount: 3},
		{NewStart: 10, NewCount: 2},
	}}

	t.Run("finds the hunk covering a new-file line", func(t *testing.T) {
		t.Parallel()

		hunk, ok := diff.HunkForLine(11)
		require.True(t, ok)
		assert.Same(t, &diff.Hunks[1], hunk)
	})

	t.Run("misses lines between hunks", func(t *testing.T) {
		t.Parallel()

		_, ok := diff.HunkForLine(5)
		assert.False(t, ok)
	})
}
