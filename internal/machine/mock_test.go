package machine

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
)

var errRender = errors.New("render failed")

// mockFrontend quits after the given number of frames.
type mockFrontend struct {
	frames    int
	processed int
	rendered  int
	press     *keyboard.Key
	renderErr error
	last      display.Buffer
}

func (f *mockFrontend) ProcessEvents(keys *keyboard.Keyboard) bool {
	if f.processed >= f.frames {
		return false
	}
	f.processed++
	if f.press != nil {
		keys.SetKeyPressed(*f.press)
	}
	return true
}

func (f *mockFrontend) Render(buf display.Buffer) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.rendered++
	f.last = buf
	return nil
}

// program converts instruction words to a big-endian program image.
func program(words ...uint16) []byte {
	image := make([]byte, 0, len(words)*2)
	for _, word := range words {
		image = append(image, byte(word>>8), byte(word))
	}
	return image
}
