package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.design/x/clipboard"
)

// Clipboard receives copied text.
type Clipboard interface {
	Write(text string) error
}

// copyCommands are tried in order when the native clipboard cannot be
// initialized, e.g. on a headless Linux box without cgo.
var copyCommands = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"clip"},
}

var errNoClipboard = errors.New("clipboard unavailable: no native clipboard and no copy command on PATH")

// ClipboardWriter writes to the native clipboard, or pipes the text into
// the first copy command found on PATH.
type ClipboardWriter struct {
	native  bool
	command []string
}

// NewClipboardWriter prefers the native clipboard.
func NewClipboardWriter() *ClipboardWriter {
	if err := clipboard.Init(); err == nil {
		return &ClipboardWriter{native: true}
	}
	return &ClipboardWriter{command: findCopyCommand(exec.LookPath)}
}

func findCopyCommand(lookPath func(string) (string, error)) []string {
	for _, c := range copyCommands {
		if _, err := lookPath(c[0]); err == nil {
			return c
		}
	}
	return nil
}

// IsAvailable reports whether Write can succeed.
func (cw *ClipboardWriter) IsAvailable() bool {
	return cw.native || cw.command != nil
}

// Write copies text to the system clipboard.
func (cw *ClipboardWriter) Write(text string) error {
	switch {
	case cw.native:
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	case cw.command == nil:
		return errNoClipboard
	}

	cmd := exec.Command(cw.command[0], cw.command[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w %s", cw.command[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
