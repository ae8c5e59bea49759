// Package widget provides the virtualized list, table and text viewport
// used by every view.
package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ScrollEvent is a scroll request handled by ScrollLines.
type ScrollEvent int

const (
	ScrollForward ScrollEvent = iota
	ScrollBackward
	ScrollPageForward
	ScrollPageBackward
	ScrollToTop
	ScrollToEnd
	ScrollRight
	ScrollLeft
)

// ScrollLinesOptions are the display toggles carried across content changes.
type ScrollLinesOptions struct {
	Number bool
	Wrap   bool
}

// DefaultScrollLinesOptions enables both line numbers and wrapping.
func DefaultScrollLinesOptions() ScrollLinesOptions {
	return ScrollLinesOptions{Number: true, Wrap: true}
}

// textPadding is the blank column on each side of the text pane.
const textPadding = 1

// ScrollLines is a scrollable text viewport over pre-rendered lines.
// Lines may contain ANSI styling; widths are measured without escape codes.
type ScrollLines struct {
	lines        []string
	maxLineWidth int
	maxDigits    int

	vOffset int
	hOffset int
	options ScrollLinesOptions

	// Size recorded by the last render, used for page movement
	width  int
	height int

	lineNumberStyle lipgloss.Style
}

// NewScrollLines builds a viewport over lines with offsets at zero.
func NewScrollLines(lines []string, options ScrollLinesOptions) *ScrollLines {
	maxLineWidth := 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > maxLineWidth {
			maxLineWidth = w
		}
	}
	return &ScrollLines{
		lines:        lines,
		maxLineWidth: maxLineWidth,
		maxDigits:    digits(len(lines)),
		options:      options,

		lineNumberStyle: lipgloss.NewStyle(),
	}
}

// WithLineNumberStyle sets the style of the gutter numbers.
func (s *ScrollLines) WithLineNumberStyle(style lipgloss.Style) *ScrollLines {
	s.lineNumberStyle = style
	return s
}

// Lines returns the content.
func (s *ScrollLines) Lines() []string { return s.lines }

// PlainText returns the content with styling removed, one line per row.
func (s *ScrollLines) PlainText() string {
	plain := make([]string, len(s.lines))
	for i, l := range s.lines {
		plain[i] = ansi.Strip(l)
	}
	return strings.Join(plain, "\n")
}

// Options returns the current toggles, to be carried into a replacement.
func (s *ScrollLines) Options() ScrollLinesOptions { return s.options }

// VOffset is the index of the first visible line.
func (s *ScrollLines) VOffset() int { return s.vOffset }

// HOffset is the first visible column when wrapping is off.
func (s *ScrollLines) HOffset() int { return s.hOffset }

// MaxWidth is the width needed to show the widest line without cutting it,
// including the gutter and padding.
func (s *ScrollLines) MaxWidth() int {
	return s.maxLineWidth + s.maxDigits + 1 + 2*textPadding
}

// SetSize records the viewport size. Render calls it.
func (s *ScrollLines) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// ToggleWrap flips wrapping and resets the horizontal offset.
func (s *ScrollLines) ToggleWrap() {
	s.options.Wrap = !s.options.Wrap
	s.hOffset = 0
}

// ToggleNumber flips the line number gutter.
func (s *ScrollLines) ToggleNumber() {
	s.options.Number = !s.options.Number
}

// Scroll applies a scroll event and clamps the offsets.
func (s *ScrollLines) Scroll(ev ScrollEvent) {
	n := len(s.lines)
	if n == 0 {
		s.vOffset, s.hOffset = 0, 0
		return
	}
	switch ev {
	case ScrollForward:
		if s.vOffset < n-1 {
			s.vOffset++
		}
	case ScrollBackward:
		if s.vOffset > 0 {
			s.vOffset--
		}
	case ScrollPageForward:
		s.pageForward()
	case ScrollPageBackward:
		s.pageBackward()
	case ScrollToTop:
		s.vOffset = 0
	case ScrollToEnd:
		s.vOffset = n - 1
	case ScrollRight:
		if s.hOffset < s.maxLineWidth-1 {
			s.hOffset++
		}
	case ScrollLeft:
		if s.hOffset > 0 {
			s.hOffset--
		}
	}
	s.vOffset = clamp(s.vOffset, 0, n-1)
}

// pageForward advances by the number of lines whose visual rows first fill
// the height. A boundary line that overflows the bottom stays visible.
func (s *ScrollLines) pageForward() {
	n := len(s.lines)
	if s.height == 0 {
		return
	}
	textWidth := s.textWidth()
	total, count := 0, 0
	for i := s.vOffset; i < n && i < s.vOffset+s.height; i++ {
		count++
		total += s.wrappedHeight(s.lines[i], textWidth)
		if total >= s.height {
			step := count
			if total > s.height {
				step--
			}
			s.vOffset += max(step, 1)
			return
		}
	}
	s.vOffset = n - 1
}

// pageBackward mirrors pageForward over the lines above the offset.
func (s *ScrollLines) pageBackward() {
	if s.height == 0 {
		return
	}
	textWidth := s.textWidth()
	total, count := 0, 0
	for i := s.vOffset - 1; i >= 0 && i >= s.vOffset-s.height; i-- {
		count++
		total += s.wrappedHeight(s.lines[i], textWidth)
		if total >= s.height {
			step := count
			if total > s.height {
				step--
			}
			s.vOffset -= max(step, 1)
			return
		}
	}
	s.vOffset = 0
}

func (s *ScrollLines) gutterWidth() int {
	if !s.options.Number {
		return 0
	}
	return s.maxDigits + 1
}

func (s *ScrollLines) textWidth() int {
	return s.width - s.gutterWidth() - 2*textPadding
}

func (s *ScrollLines) wrappedHeight(line string, textWidth int) int {
	if !s.options.Wrap || textWidth <= 0 {
		return 1
	}
	return len(wrapLine(line, textWidth))
}

func wrapLine(line string, width int) []string {
	return strings.Split(ansi.Wrap(line, width, ""), "\n")
}

// Render draws the visible part of the content into width x height cells.
func (s *ScrollLines) Render(width, height int) string {
	s.SetSize(width, height)
	if height <= 0 {
		return ""
	}

	textWidth := s.textWidth()
	gutterWidth := s.gutterWidth()
	blank := strings.Repeat(" ", s.width)

	rows := make([]string, 0, height)
	if textWidth > 0 {
		pad := strings.Repeat(" ", textPadding)
		for i := s.vOffset; i < len(s.lines) && len(rows) < height; i++ {
			var segments []string
			if s.options.Wrap {
				segments = wrapLine(s.lines[i], textWidth)
			} else {
				cut := ansi.TruncateLeft(s.lines[i], s.hOffset, "")
				segments = []string{ansi.Truncate(cut, textWidth, "")}
			}
			for j, seg := range segments {
				if len(rows) == height {
					break
				}
				var b strings.Builder
				if gutterWidth > 0 {
					if j == 0 {
						num := fmt.Sprintf("%*d ", s.maxDigits, i+1)
						b.WriteString(s.lineNumberStyle.Render(num))
					} else {
						b.WriteString(strings.Repeat(" ", gutterWidth))
					}
				}
				b.WriteString(pad)
				b.WriteString(padRight(seg, textWidth))
				b.WriteString(pad)
				rows = append(rows, b.String())
			}
		}
	}
	for len(rows) < height {
		rows = append(rows, blank)
	}
	return strings.Join(rows, "\n")
}

// digits is the number of decimal digits of n; 0 has one digit.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
