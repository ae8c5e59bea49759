// Package highlight provides JSON syntax highlighting for terminal output.
package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// JSON applies syntax highlighting to JSON using Chroma.
// Uses the given registered style and outputs 256-color ANSI codes.
// Returns the original string if highlighting fails.
func JSON(src, style string) string {
	if src == "" {
		return ""
	}
	if style == "" {
		style = "monokai"
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, src, "json", "terminal256", style); err != nil {
		return src
	}

	return buf.String()
}

// JSONLines highlights JSON and splits it into lines, one per source line.
func JSONLines(src, style string) []string {
	out := JSON(src, style)
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}
