package window

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrogolib/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestDefaultKeyMap(t *testing.T) {
	keyMap := DefaultKeyMap()
	assert.Equal(t, keyboard.KeyCount, len(keyMap))

	// every keypad key is reachable exactly once
	seen := map[keyboard.Key]bool{}
	for _, key := range keyMap {
		assert.False(t, seen[key])
		seen[key] = true
	}

	tests := []struct {
		scancode sdl.Scancode
		key      keyboard.Key
	}{
		{sdl.SCANCODE_1, 0x1},
		{sdl.SCANCODE_4, 0xC},
		{sdl.SCANCODE_Q, 0x4},
		{sdl.SCANCODE_F, 0xE},
		{sdl.SCANCODE_X, 0x0},
		{sdl.SCANCODE_V, 0xF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, keyMap[tt.scancode])
	}
}

func TestFillPixels(t *testing.T) {
	fg := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	bg := color.RGBA{R: 5, G: 6, B: 7, A: 8}

	d := display.New()
	d.DrawByte(0x80, 1, 0)
	buf := d.Buffer()

	pixels := make([]byte, display.Width*display.Height*pixelSize)
	fillPixels(pixels, &buf, fg, bg)

	assert.Equal(t, []byte{5, 6, 7, 8}, pixels[0:4])
	assert.Equal(t, []byte{1, 2, 3, 4}, pixels[4:8])
	assert.Equal(t, []byte{5, 6, 7, 8}, pixels[len(pixels)-4:])
}
