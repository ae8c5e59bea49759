package widget

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func plainRows(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestScrollLinesEmpty(t *testing.T) {
	s := NewScrollLines(nil, ScrollLinesOptions{Number: true, Wrap: true})

	out := s.Render(10, 3)
	assert.Equal(t, []string{"          ", "          ", "          "}, plainRows(out))

	for _, ev := range []ScrollEvent{ScrollForward, ScrollBackward, ScrollPageForward, ScrollPageBackward, ScrollToTop, ScrollToEnd, ScrollRight, ScrollLeft} {
		s.Scroll(ev)
		assert.Equal(t, 0, s.VOffset())
		assert.Equal(t, 0, s.HOffset())
	}
}

func TestScrollLinesZeroSize(t *testing.T) {
	s := NewScrollLines(numberedLines(5), DefaultScrollLinesOptions())
	assert.NotPanics(t, func() {
		assert.Equal(t, "", s.Render(0, 0))
		s.Scroll(ScrollPageForward)
		s.Scroll(ScrollPageBackward)
		s.Render(1, 1)
		s.Render(3, 2)
	})
}

func TestScrollLinesTopAndEnd(t *testing.T) {
	s := NewScrollLines(numberedLines(7), ScrollLinesOptions{})

	s.Scroll(ScrollToEnd)
	assert.Equal(t, 6, s.VOffset())

	s.Scroll(ScrollForward)
	assert.Equal(t, 6, s.VOffset(), "forward past the last line is a no-op")

	s.Scroll(ScrollToTop)
	assert.Equal(t, 0, s.VOffset())

	s.Scroll(ScrollBackward)
	assert.Equal(t, 0, s.VOffset())
}

func TestScrollLinesPageNoWrap(t *testing.T) {
	s := NewScrollLines(numberedLines(10), ScrollLinesOptions{})
	s.Render(20, 3)

	var got []int
	for i := 0; i < 4; i++ {
		s.Scroll(ScrollPageForward)
		got = append(got, s.VOffset())
	}
	assert.Equal(t, []int{3, 6, 9, 9}, got)

	s.Scroll(ScrollPageBackward)
	assert.Equal(t, 6, s.VOffset())
	s.Scroll(ScrollPageBackward)
	assert.Equal(t, 3, s.VOffset())
	s.Scroll(ScrollPageBackward)
	assert.Equal(t, 0, s.VOffset())
}

func TestScrollLinesPageForwardTerminates(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for h := 1; h <= 6; h++ {
			for _, wrap := range []bool{false, true} {
				lines := numberedLines(n)
				// every third line wraps when wrapping is on
				for i := 0; i < n; i += 3 {
					lines[i] = strings.Repeat("x", 25)
				}
				s := NewScrollLines(lines, ScrollLinesOptions{Wrap: wrap})
				s.Render(12, h)

				calls := 0
				prev := s.VOffset()
				for s.VOffset() != n-1 {
					s.Scroll(ScrollPageForward)
					calls++
					require.Greater(t, s.VOffset(), prev, "n=%d h=%d wrap=%v", n, h, wrap)
					prev = s.VOffset()
					require.LessOrEqual(t, calls, n, "n=%d h=%d wrap=%v", n, h, wrap)
				}
				if !wrap {
					assert.LessOrEqual(t, calls, (n+h-1)/h, "n=%d h=%d", n, h)
				}
			}
		}
	}
}

func TestScrollLinesPageForwardWrap(t *testing.T) {
	long := strings.Repeat("a", 15) // two rows at text width 10
	opts := ScrollLinesOptions{Wrap: true}

	t.Run("boundary line fully visible", func(t *testing.T) {
		s := NewScrollLines([]string{long, "b", "c", "d", "e", "f"}, opts)
		s.Render(12, 4)
		s.Scroll(ScrollPageForward)
		assert.Equal(t, 3, s.VOffset())
	})

	t.Run("boundary line cut by the bottom edge", func(t *testing.T) {
		s := NewScrollLines([]string{"a", "b", "c", long, "e", "f"}, opts)
		s.Render(12, 4)
		s.Scroll(ScrollPageForward)
		assert.Equal(t, 3, s.VOffset(), "the partially visible line becomes the top line")
	})

	t.Run("backward over a cut line", func(t *testing.T) {
		s := NewScrollLines([]string{"a", "b", long, "d", "e", "f"}, opts)
		s.Render(12, 3)
		s.Scroll(ScrollToEnd)
		s.Scroll(ScrollBackward)
		s.Scroll(ScrollBackward)
		require.Equal(t, 3, s.VOffset())
		// rows above: long(2) + b(1) = 3, exactly the height
		s.Scroll(ScrollPageBackward)
		assert.Equal(t, 1, s.VOffset())
	})
}

func TestScrollLinesRenderGutter(t *testing.T) {
	s := NewScrollLines([]string{"a", "b"}, ScrollLinesOptions{Number: true})

	rows := plainRows(s.Render(8, 3))

	assert.Equal(t, []string{
		"1  a    ",
		"2  b    ",
		"        ",
	}, rows)
}

func TestScrollLinesRenderWrapContinuation(t *testing.T) {
	s := NewScrollLines([]string{strings.Repeat("a", 10)}, ScrollLinesOptions{Number: true, Wrap: true})

	rows := plainRows(s.Render(8, 4))

	assert.Equal(t, []string{
		"1  aaaa ",
		"   aaaa ",
		"   aa   ",
		"        ",
	}, rows)
}

func TestScrollLinesHorizontal(t *testing.T) {
	s := NewScrollLines([]string{"abcdef", "xyz"}, ScrollLinesOptions{})

	s.Scroll(ScrollRight)
	s.Scroll(ScrollRight)
	assert.Equal(t, 2, s.HOffset())
	assert.Equal(t, []string{" cdef ", " z    "}, plainRows(s.Render(6, 2)))

	for i := 0; i < 10; i++ {
		s.Scroll(ScrollRight)
	}
	assert.Equal(t, 5, s.HOffset(), "stops at the last column of the widest line")

	s.ToggleWrap()
	assert.True(t, s.Options().Wrap)
	assert.Equal(t, 0, s.HOffset())

	s.Scroll(ScrollLeft)
	assert.Equal(t, 0, s.HOffset())
}

func TestScrollLinesToggleNumber(t *testing.T) {
	s := NewScrollLines(numberedLines(12), ScrollLinesOptions{})
	s.ToggleNumber()
	assert.Equal(t, ScrollLinesOptions{Number: true}, s.Options())
	assert.Equal(t, " 1  line 0 ", plainRows(s.Render(11, 1))[0])
	assert.Equal(t, len("line 10")+2+1+2, s.MaxWidth())
}

func TestScrollLinesPlainText(t *testing.T) {
	s := NewScrollLines([]string{"\x1b[31mred\x1b[0m", "plain"}, ScrollLinesOptions{})
	assert.Equal(t, "red\nplain", s.PlainText())
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 1, digits(0))
	assert.Equal(t, 1, digits(9))
	assert.Equal(t, 2, digits(10))
	assert.Equal(t, 3, digits(999))
}
