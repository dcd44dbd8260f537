// FILE: lixenwraith/daylog/console/console.go
// Package console renders a status line that successive updates overwrite in place,
// for progress output of long-running command line tasks.
package console

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// cursorUp moves the cursor to the start of the previous line
const cursorUp = "\x1b[1A\r"

// StatusLine owns the anchor row and the width of the last rendered line.
// Safe for concurrent use.
type StatusLine struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	anchored bool // The previous line was not advanced and will be redrawn
	width    int  // Visible width of the previous line
}

// New returns a status line writing to w. Colour support is detected from w.
func New(w io.Writer) *StatusLine {
	return &StatusLine{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Print draws msg in color over the previous non-advanced line, padding it
// with spaces so no text of a longer previous message remains.
// With advance, later prints start on the line below.
// An empty color leaves the terminal default.
func (s *StatusLine) Print(msg string, color lipgloss.Color, advance bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	if s.anchored {
		sb.WriteString(cursorUp)
	}

	style := s.renderer.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	sb.WriteString(style.Render(msg))

	w := lipgloss.Width(msg)
	if pad := s.width - w; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(s.out, sb.String()); err != nil {
		return err
	}

	if advance {
		s.anchored = false
		s.width = 0
	} else {
		s.anchored = true
		s.width = w
	}
	return nil
}

// Advance keeps the current line and moves the anchor below it
func (s *StatusLine) Advance() {
	s.mu.Lock()
	s.anchored = false
	s.width = 0
	s.mu.Unlock()
}
