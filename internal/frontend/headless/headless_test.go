package headless

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrogolib/assert"
)

func TestProcessEvents_NeverQuits(t *testing.T) {
	f := New()
	keys := keyboard.New()

	for i := 0; i < 100; i++ {
		assert.True(t, f.ProcessEvents(keys))
	}
	assert.Equal(t, 100, f.Frames())
}

func TestProcessEvents_KeyEvents(t *testing.T) {
	f := New(
		KeyEvent{Frame: 1, Key: 0x5, Pressed: true},
		KeyEvent{Frame: 3, Key: 0x5},
	)
	keys := keyboard.New()

	// pressed state after each frame
	expected := []bool{false, true, true, false}

	for _, pressed := range expected {
		assert.True(t, f.ProcessEvents(keys))
		assert.Equal(t, pressed, keys.IsKeyPressed(0x5), "key state mismatch")
	}
}

func TestWriteScreen(t *testing.T) {
	d := display.New()
	d.DrawByte(0xC0, 0, 0)

	f := New()
	assert.NoError(t, f.Render(d.Buffer()))
	screen := f.Screen()
	assert.True(t, screen.Pixel(1, 0))

	var buf bytes.Buffer
	assert.NoError(t, f.WriteScreen(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, display.Height)
	assert.Equal(t, "##"+strings.Repeat(".", display.Width-2), lines[0])
}
