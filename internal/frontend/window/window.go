// Package window implements the SDL frontend of the interpreter.
//
// All SDL calls are executed on the main thread through the mainthread
// package, so the program has to be started with mainthread.Run.
package window

import (
	"fmt"
	"image/color"

	"github.com/faiface/mainthread"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/veandco/go-sdl2/sdl"
)

// bytes per pixel of the RGBA32 texture
const pixelSize = 4

// Default display colors.
var (
	DefaultForeground = color.RGBA{R: 0xE0, G: 0xF8, B: 0xD0, A: 0xFF}
	DefaultBackground = color.RGBA{R: 0x08, G: 0x18, B: 0x20, A: 0xFF}
)

// Window renders the display into an SDL window and maps the host keyboard
// to the keypad.
type Window struct {
	Foreground color.RGBA
	Background color.RGBA

	keyMap   KeyMap
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

// New opens a window of the display size multiplied by scale.
func New(title string, scale int) (*Window, error) {
	w := &Window{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		keyMap:     DefaultKeyMap(),
		pixels:     make([]byte, display.Width*display.Height*pixelSize),
	}

	var err error
	mainthread.Call(func() {
		err = w.open(title, scale)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) open(title string, scale int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(display.Width*scale), int32(display.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}

	// the texture has the display size, the renderer stretches it to the window
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, display.Width, display.Height)
	if err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating texture: %w", err)
	}

	w.window = window
	w.renderer = renderer
	w.texture = texture
	return nil
}

// ProcessEvents maps pending SDL keyboard events to the keypad. It returns
// false when the window was closed or Escape was pressed.
func (w *Window) ProcessEvents(keys *keyboard.Keyboard) bool {
	running := true
	mainthread.Call(func() {
		running = w.pollEvents(keys)
	})
	return running
}

func (w *Window) pollEvents(keys *keyboard.Keyboard) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false
			}
			key, ok := w.keyMap[ev.Keysym.Scancode]
			if !ok {
				continue
			}
			if ev.Type == sdl.KEYDOWN {
				keys.SetKeyPressed(key)
			} else {
				keys.Release(key)
			}
		}
	}
	return true
}

// Render draws the display contents to the window.
func (w *Window) Render(buf display.Buffer) error {
	fillPixels(w.pixels, &buf, w.Foreground, w.Background)

	var err error
	mainthread.Call(func() {
		if err = w.texture.Update(nil, w.pixels, display.Width*pixelSize); err != nil {
			return
		}
		if err = w.renderer.Copy(w.texture, nil, nil); err != nil {
			return
		}
		w.renderer.Present()
	})
	if err != nil {
		return fmt.Errorf("updating window: %w", err)
	}
	return nil
}

// Close frees all SDL resources.
func (w *Window) Close() {
	mainthread.Call(func() {
		_ = w.texture.Destroy()
		_ = w.renderer.Destroy()
		_ = w.window.Destroy()
		sdl.Quit()
	})
}

// fillPixels converts the display buffer to RGBA32 texture data.
func fillPixels(pixels []byte, buf *display.Buffer, fg, bg color.RGBA) {
	for i, value := range buf {
		c := bg
		if value != 0 {
			c = fg
		}
		offset := i * pixelSize
		pixels[offset+0] = c.R
		pixels[offset+1] = c.G
		pixels[offset+2] = c.B
		pixels[offset+3] = c.A
	}
}
