// Package display implements the monochrome CHIP-8 screen.
package display

import "strings"

// Screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Buffer is a snapshot of the screen, one value per pixel in row major order.
// Every cell is either 0 or 1.
type Buffer [Width * Height]byte

// Pixel returns whether the pixel at the given coordinates is set.
func (b *Buffer) Pixel(x, y int) bool {
	return b[index(x, y)] != 0
}

// Display is the 64x32 pixel grid. It is mutated only by the clear and
// sprite draw instructions and read by the host renderer between steps.
type Display struct {
	pixels Buffer
}

// New returns a new cleared display.
func New() *Display {
	return &Display{}
}

// Clear resets every pixel.
func (d *Display) Clear() {
	d.pixels = Buffer{}
}

// DrawByte XORs the 8 bits of row into the screen starting at x, y, most
// significant bit first. Coordinates wrap around the screen edges.
// It returns true if any pixel was turned off.
func (d *Display) DrawByte(row byte, x, y int) bool {
	collision := false

	for bit := 0; bit < 8; bit++ {
		if row&(0x80>>bit) == 0 {
			continue
		}

		i := index(x+bit, y)
		if d.pixels[i] == 1 {
			collision = true
		}
		d.pixels[i] ^= 1
	}

	return collision
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates wrap around the screen edges.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels.Pixel(x, y)
}

// Buffer returns a copy of the current screen content.
func (d *Display) Buffer() Buffer {
	return d.pixels
}

// String renders the screen as text, '#' for set and '.' for unset pixels.
func (d *Display) String() string {
	return d.pixels.String()
}

// String renders the buffer as text, '#' for set and '.' for unset pixels.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b[y*Width+x] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index returns the buffer index of the wrapped coordinates.
func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}
