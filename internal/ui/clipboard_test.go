package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCopyCommand(t *testing.T) {
	only := func(names ...string) func(string) (string, error) {
		return func(file string) (string, error) {
			for _, n := range names {
				if n == file {
					return "/usr/bin/" + file, nil
				}
			}
			return "", errors.New("not found")
		}
	}

	assert.Equal(t, []string{"xsel", "--clipboard", "--input"}, findCopyCommand(only("xsel")))
	assert.Equal(t, []string{"wl-copy"}, findCopyCommand(only("xclip", "wl-copy")))
	assert.Nil(t, findCopyCommand(only()))
}

func TestClipboardWriterUnavailable(t *testing.T) {
	cw := &ClipboardWriter{}
	assert.False(t, cw.IsAvailable())
	assert.ErrorIs(t, cw.Write("x"), errNoClipboard)

	assert.True(t, (&ClipboardWriter{command: []string{"pbcopy"}}).IsAvailable())
}
