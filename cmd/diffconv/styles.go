package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffconv"
)

// styles holds the lipgloss styles for rendered output.
type styles struct {
	Header      lipgloss.Style
	Hunk        lipgloss.Style
	Added       lipgloss.Style
	AddedEmph   lipgloss.Style
	Removed     lipgloss.Style
	RemovedEmph lipgloss.Style
	Context     lipgloss.Style
	Marker      lipgloss.Style
	Muted       lipgloss.Style
}

func newStyles() styles {
	return styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61afef")),
		Hunk:        lipgloss.NewStyle().Foreground(lipgloss.Color("#56b6c2")),
		Added:       lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379")),
		AddedEmph:   lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379")).Bold(true).Underline(true),
		Removed:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		RemovedEmph: lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")).Bold(true).Underline(true),
		Context:     lipgloss.NewStyle().Foreground(lipgloss.Color("#abb2bf")),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("#d19a66")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370")),
	}
}

// renderSegments styles one side of a word-diffed line pair, emphasizing
// the changed segments.
func renderSegments(prefix string, segs []diffconv.Segment, base, emph lipgloss.Style) string {
	out := base.Render(prefix)
	for _, seg := range segs {
		if seg.Changed {
			out += emph.Render(seg.Text)
			continue
		}
		out += base.Render(seg.Text)
	}
	return out
}

// tokenStyle converts a domain token style into a lipgloss style.
func tokenStyle(s diffconv.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}
