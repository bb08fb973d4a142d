package gitcli_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/diffconv"
	"github.com/fwojciec/diffconv/gitcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with a single commit containing a.txt.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	git(t, dir, "init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first\n"), 0o644))
	git(t, dir, "add", "a.txt")
	git(t, dir, "commit", "-m", "initial")
	return dir
}

func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	base := []string{"-C", dir,
		"-c", "user.name=test",
		"-c", "user.email=test@example.com",
		"-c", "commit.gpgsign=false",
	}
	out, err := exec.Command("git", append(base, args...)...).CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return strings.TrimSpace(string(out))
}

func TestClient_ReadBlob(t *testing.T) {
	t.Parallel()
	dir := initRepo(t)
	client := gitcli.New(dir)

	t.Run("reads a committed blob", func(t *testing.T) {
		content, err := client.ReadBlob(context.Background(), "HEAD", "a.txt")
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(content))
	})

	t.Run("fails for a missing path", func(t *testing.T) {
		_, err := client.ReadBlob(context.Background(), "HEAD", "missing.txt")
		require.Error(t, err)
	})

	t.Run("fails for the parent of a root commit", func(t *testing.T) {
		_, err := client.ReadBlob(context.Background(), "HEAD^", "a.txt")
		require.Error(t, err)
	})
}

func TestClient_ReadWorkingTree(t *testing.T) {
	t.Parallel()
	dir := initRepo(t)
	client := gitcli.New(dir)

	t.Run("reads on-disk content", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("edited\n"), 0o644))
		content, err := client.ReadWorkingTree(context.Background(), "a.txt")
		require.NoError(t, err)
		assert.Equal(t, "edited\n", string(content))
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		_, err := client.ReadWorkingTree(context.Background(), "missing.txt")
		require.Error(t, err)
	})

	t.Run("honors a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.ReadWorkingTree(ctx, "a.txt")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Changes(t *testing.T) {
	t.Parallel()

	t.Run("lists working tree changes with statuses", func(t *testing.T) {
		t.Parallel()
		dir := initRepo(t)
		client := gitcli.New(dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("untracked\n"), 0o644))

		changes, err := client.Changes(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, changes, 2)

		byPath := map[string]diffconv.FileChange{}
		for _, c := range changes {
			byPath[c.Path] = c
			assert.Equal(t, diffconv.OriginWorkingTree, c.Origin)
		}
		assert.Equal(t, diffconv.StatusModified, byPath["a.txt"].Status)
		assert.Equal(t, diffconv.StatusNew, byPath["b.txt"].Status)
	})

	t.Run("decodes staged renames with the prior path", func(t *testing.T) {
		t.Parallel()
		dir := initRepo(t)
		client := gitcli.New(dir)

		git(t, dir, "mv", "a.txt", "renamed.txt")

		changes, err := client.Changes(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, diffconv.StatusRenamed, changes[0].Status)
		assert.Equal(t, "renamed.txt", changes[0].Path)
		assert.Equal(t, "a.txt", changes[0].PriorPath)
	})

	t.Run("lists files changed by a commit", func(t *testing.T) {
		t.Parallel()
		dir := initRepo(t)
		client := gitcli.New(dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second\n"), 0o644))
		git(t, dir, "add", "b.txt")
		git(t, dir, "commit", "-m", "add b")
		rev := git(t, dir, "rev-parse", "HEAD")

		changes, err := client.Changes(context.Background(), rev)
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, "b.txt", changes[0].Path)
		assert.Equal(t, diffconv.StatusNew, changes[0].Status)
		assert.Equal(t, diffconv.OriginCommit, changes[0].Origin)
	})
}

func TestClient_Patch(t *testing.T) {
	t.Parallel()

	t.Run("produces a patch for a modified file", func(t *testing.T) {
		t.Parallel()
		dir := initRepo(t)
		client := gitcli.New(dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed\n"), 0o644))
		change := diffconv.NewFileChange("a.txt", diffconv.StatusModified, diffconv.OriginWorkingTree)

		raw, err := client.Patch(context.Background(), change, "")
		require.NoError(t, err)
		assert.Contains(t, raw, "@@")
		assert.Contains(t, raw, "+changed")
	})

	t.Run("diffs an untracked file against nothing", func(t *testing.T) {
		t.Parallel()
		dir := initRepo(t)
		client := gitcli.New(dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("hello\n"), 0o644))
		change := diffconv.NewFileChange("b.txt", diffconv.StatusNew, diffconv.OriginWorkingTree)

		raw, err := client.Patch(context.Background(), change, "")
		require.NoError(t, err)
		assert.Contains(t, raw, "+hello")
	})

	t.Run("produces a patch for a commit", func(t *testing.T) {
		t.Parallel()
		dir := initRepo(t)
		client := gitcli.New(dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("second\n"), 0o644))
		git(t, dir, "add", "a.txt")
		git(t, dir, "commit", "-m", "edit a")
		rev := git(t, dir, "rev-parse", "HEAD")

		change := diffconv.NewFileChange("a.txt", diffconv.StatusModified, diffconv.OriginCommit)
		raw, err := client.Patch(context.Background(), change, rev)
		require.NoError(t, err)
		assert.Contains(t, raw, "-first")
		assert.Contains(t, raw, "+second")
	})
}
