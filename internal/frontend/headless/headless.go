// Package headless implements a frontend without a window. It replays
// scripted key events and keeps the last rendered screen for inspection.
package headless

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
)

// KeyEvent presses or releases a key at the start of the given frame.
type KeyEvent struct {
	Frame   int
	Key     keyboard.Key
	Pressed bool
}

// Frontend is a frontend that does not present anything to the user.
type Frontend struct {
	frames int
	events []KeyEvent
	screen display.Buffer
}

// New returns a headless frontend. It never requests to quit, the machine
// is stopped by its frame limit or by cancelling the context.
func New(events ...KeyEvent) *Frontend {
	return &Frontend{
		events: events,
	}
}

// ProcessEvents applies the key events scheduled for the current frame.
func (f *Frontend) ProcessEvents(keys *keyboard.Keyboard) bool {
	for _, event := range f.events {
		if event.Frame != f.frames {
			continue
		}
		if event.Pressed {
			keys.SetKeyPressed(event.Key)
		} else {
			keys.Release(event.Key)
		}
	}

	f.frames++
	return true
}

// Render stores the display contents.
func (f *Frontend) Render(buf display.Buffer) error {
	f.screen = buf
	return nil
}

// Frames returns the number of processed frames.
func (f *Frontend) Frames() int {
	return f.frames
}

// Screen returns the last rendered display contents.
func (f *Frontend) Screen() display.Buffer {
	return f.screen
}

// WriteScreen writes the last rendered display contents as text.
func (f *Frontend) WriteScreen(w io.Writer) error {
	return WriteScreen(w, f.screen)
}

// WriteScreen writes a display buffer as text, one line per display row.
func WriteScreen(w io.Writer, buf display.Buffer) error {
	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}
