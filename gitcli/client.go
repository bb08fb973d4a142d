// Package gitcli implements repository access by shelling out to git.
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffconv"
)

// Compile-time interface verification.
var (
	_ diffconv.ContentReader = (*Client)(nil)
	_ diffconv.Repository    = (*Client)(nil)
)

// Client reads repository content and change metadata using the git CLI.
type Client struct {
	repo string
}

// New creates a Client bound to the repository rooted at repo.
func New(repo string) *Client {
	return &Client{repo: repo}
}

// ReadBlob returns the content of path as stored at rev.
func (c *Client) ReadBlob(ctx context.Context, rev, path string) ([]byte, error) {
	return c.run(ctx, "show", rev+":"+path)
}

// ReadWorkingTree returns the current on-disk content of path.
func (c *Client) ReadWorkingTree(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(c.repo, path))
}

// Changes returns the files changed in the working tree when rev is empty,
// or the files changed by the commit rev otherwise.
func (c *Client) Changes(ctx context.Context, rev string) ([]diffconv.FileChange, error) {
	if rev == "" {
		return c.workingTreeChanges(ctx)
	}
	return c.commitChanges(ctx, rev)
}

func (c *Client) workingTreeChanges(ctx context.Context) ([]diffconv.FileChange, error) {
	out, err := c.run(ctx, "status", "--porcelain=v1", "-z")
	if err != nil {
		return nil, err
	}

	var changes []diffconv.FileChange
	tokens := splitNUL(out)
	for i := 0; i < len(tokens); i++ {
		entry := tokens[i]
		if len(entry) < 4 {
			continue
		}
		code, path := entry[:2], entry[3:]
		switch {
		case isConflict(code):
			changes = append(changes, diffconv.NewFileChange(path, diffconv.StatusConflicted, diffconv.OriginWorkingTree))
		case code[0] == 'R' || code[1] == 'R':
			// The rename's original path follows as its own entry.
			var prior string
			if i+1 < len(tokens) {
				i++
				prior = tokens[i]
			}
			changes = append(changes, diffconv.NewRename(path, prior, diffconv.OriginWorkingTree))
		case code == "??" || code[0] == 'A':
			changes = append(changes, diffconv.NewFileChange(path, diffconv.StatusNew, diffconv.OriginWorkingTree))
		case code[0] == 'D' || code[1] == 'D':
			changes = append(changes, diffconv.NewFileChange(path, diffconv.StatusDeleted, diffconv.OriginWorkingTree))
		default:
			changes = append(changes, diffconv.NewFileChange(path, diffconv.StatusModified, diffconv.OriginWorkingTree))
		}
	}
	return changes, nil
}

func (c *Client) commitChanges(ctx context.Context, rev string) ([]diffconv.FileChange, error) {
	out, err := c.run(ctx, "diff-tree", "--no-commit-id", "--name-status", "-M", "-r", "-z", rev)
	if err != nil {
		return nil, err
	}

	var changes []diffconv.FileChange
	tokens := splitNUL(out)
	for i := 0; i+1 < len(tokens); {
		status := tokens[i]
		switch status[0] {
		case 'R', 'C':
			if i+2 >= len(tokens) {
				return nil, fmt.Errorf("truncated rename entry in diff-tree output for %q", rev)
			}
			changes = append(changes, diffconv.NewRename(tokens[i+2], tokens[i+1], diffconv.OriginCommit))
			i += 3
		case 'A':
			changes = append(changes, diffconv.NewFileChange(tokens[i+1], diffconv.StatusNew, diffconv.OriginCommit))
			i += 2
		case 'D':
			changes = append(changes, diffconv.NewFileChange(tokens[i+1], diffconv.StatusDeleted, diffconv.OriginCommit))
			i += 2
		default:
			changes = append(changes, diffconv.NewFileChange(tokens[i+1], diffconv.StatusModified, diffconv.OriginCommit))
			i += 2
		}
	}
	return changes, nil
}

// Patch returns the raw diff output for a single change.
func (c *Client) Patch(ctx context.Context, change diffconv.FileChange, rev string) (string, error) {
	if change.Origin == diffconv.OriginCommit {
		out, err := c.run(ctx, append([]string{"diff", rev + "^", rev, "-M", "--"}, changePaths(change)...)...)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	out, err := c.run(ctx, append([]string{"diff", "HEAD", "-M", "--"}, changePaths(change)...)...)
	if err != nil {
		return "", err
	}
	if len(out) == 0 && change.Status == diffconv.StatusNew {
		// Untracked file: diff it against nothing. --no-index exits 1
		// when the contents differ, which is the expected outcome here.
		out, err = c.run(ctx, "diff", "--no-index", "--", os.DevNull, change.Path)
		if err != nil && exitCode(err) != 1 {
			return "", err
		}
	}
	return string(out), nil
}

func changePaths(change diffconv.FileChange) []string {
	if change.PriorPath != "" {
		return []string{change.PriorPath, change.Path}
	}
	return []string{change.Path}
}

func isConflict(code string) bool {
	switch code {
	case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
		return true
	}
	return false
}

func splitNUL(out []byte) []string {
	s := strings.TrimSuffix(string(out), "\x00")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}

// run executes git against the repository and returns its stdout. Failure
// messages include git's stderr, which carries the reason (missing object,
// unknown revision) the caller may want to report.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", c.repo}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
