package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/diffconv"
)

// ErrNoChanges is returned when the repository has nothing to show.
var ErrNoChanges = errors.New("no changes to show")

// maxFileLines caps how many patch lines are printed per file.
const maxFileLines = 24

// App converts and renders a repository's changes.
type App struct {
	Repo   diffconv.Repository
	Reader diffconv.ContentReader
	Parser diffconv.Parser
	Words  diffconv.WordDiffer // optional intra-line highlighting
	Tokens diffconv.Tokenizer  // optional syntax coloring for context lines
	Rev    string              // empty shows the working tree
	Out    io.Writer
}

// Run lists the changes, converts each one, and renders a summary.
func (a *App) Run(ctx context.Context) error {
	changes, err := a.Repo.Changes(ctx, a.Rev)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return ErrNoChanges
	}

	conv := diffconv.NewConverter(a.Reader)
	st := newStyles()
	for _, change := range changes {
		raw, err := a.Repo.Patch(ctx, change, a.Rev)
		if err != nil {
			return err
		}
		diff, err := a.Parser.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", change.Path, err)
		}
		result, err := conv.Convert(ctx, change, diff, a.Rev)
		if err != nil {
			return err
		}
		a.render(st, change, result)
	}
	return nil
}

func (a *App) render(st styles, change diffconv.FileChange, result *diffconv.Result) {
	header := change.Status.String() + " " + change.Path
	if change.PriorPath != "" {
		header += " (from " + change.PriorPath + ")"
	}
	fmt.Fprintln(a.Out, st.Header.Render(header))

	switch result.Kind {
	case diffconv.KindText:
		a.renderText(st, change.Path, result.Diff)
	case diffconv.KindImage:
		a.renderImageSide(st, "previous", result.Previous)
		a.renderImageSide(st, "current", result.Current)
	case diffconv.KindBinary:
		fmt.Fprintln(a.Out, st.Marker.Render("binary file differs"))
	case diffconv.KindSubmodule:
		fmt.Fprintln(a.Out, st.Marker.Render("submodule pointer changed"))
	}
	fmt.Fprintln(a.Out)
}

func (a *App) renderText(st styles, path string, diff *diffconv.RawDiff) {
	printed := 0
	for _, hunk := range diff.Hunks {
		if printed >= maxFileLines {
			break
		}
		fmt.Fprintln(a.Out, st.Hunk.Render(hunkHeader(hunk)))
		printed += a.renderLines(st, path, hunk.Lines, maxFileLines-printed)
	}
	if total := lineCount(diff); total > printed {
		fmt.Fprintln(a.Out, st.Muted.Render(fmt.Sprintf("... %d more lines", total-printed)))
	}
}

// renderLines prints up to limit lines and returns how many it printed.
// A deleted line directly followed by an added one renders as a pair with
// the changed words emphasized.
func (a *App) renderLines(st styles, path string, lines []diffconv.Line, limit int) int {
	printed := 0
	for i := 0; i < len(lines) && printed < limit; i++ {
		line := lines[i]
		switch line.Type {
		case diffconv.LineDeleted:
			if a.Words != nil && i+1 < len(lines) && lines[i+1].Type == diffconv.LineAdded {
				oldSegs, newSegs := a.Words.Diff(chomp(line.Content), chomp(lines[i+1].Content))
				fmt.Fprintln(a.Out, renderSegments("-", oldSegs, st.Removed, st.RemovedEmph))
				fmt.Fprintln(a.Out, renderSegments("+", newSegs, st.Added, st.AddedEmph))
				i++
				printed += 2
				continue
			}
			fmt.Fprintln(a.Out, st.Removed.Render("-"+chomp(line.Content)))
		case diffconv.LineAdded:
			fmt.Fprintln(a.Out, st.Added.Render("+"+chomp(line.Content)))
		default:
			fmt.Fprintln(a.Out, " "+a.renderContext(st, path, chomp(line.Content)))
		}
		printed++
	}
	return printed
}

// renderContext colors a context line by syntax when a tokenizer is
// available and knows the language, otherwise prints it dimmed.
func (a *App) renderContext(st styles, path, text string) string {
	if a.Tokens == nil {
		return st.Context.Render(text)
	}
	tokens := a.Tokens.Tokenize(path, text)
	if tokens == nil {
		return st.Context.Render(text)
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tokenStyle(tok.Style).Render(tok.Text))
	}
	return b.String()
}

func (a *App) renderImageSide(st styles, label string, img *diffconv.Image) {
	if img == nil {
		fmt.Fprintln(a.Out, st.Muted.Render(label+": not available"))
		return
	}
	detail := fmt.Sprintf("%s: %s, %d bytes base64", label, img.MediaType.MIME(), len(img.Data))
	fmt.Fprintln(a.Out, st.Marker.Render(detail))
}

func hunkHeader(h diffconv.Hunk) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
	if h.Section != "" {
		header += " " + h.Section
	}
	return header
}

func lineCount(diff *diffconv.RawDiff) int {
	n := 0
	for _, h := range diff.Hunks {
		n += len(h.Lines)
	}
	return n
}

func chomp(s string) string {
	return strings.TrimRight(s, "\r\n")
}
