package memory

const (
	// FontStart is the address of the first font glyph.
	FontStart = 0x000

	// FontGlyphSize is the number of bytes per glyph, one byte per row.
	FontGlyphSize = 5

	// FontGlyphs is the number of glyphs in the font, one per hex digit.
	FontGlyphs = 16
)

// Font contains the sprites for the hexadecimal digits 0-F.
var Font = [FontGlyphs * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the glyph for the given hex digit.
// Values above 0xF are not masked and point past the font.
func GlyphAddress(digit byte) uint16 {
	return FontStart + uint16(digit)*FontGlyphSize
}
