package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected Fields
	}{
		{"all nibbles distinct", 0x1234, Fields{Op: 0x1, NNN: 0x234, NN: 0x34, N: 0x4, X: 0x2, Y: 0x3}},
		{"zero word", 0x0000, Fields{}},
		{"all bits set", 0xFFFF, Fields{Op: 0xF, NNN: 0xFFF, NN: 0xFF, N: 0xF, X: 0xF, Y: 0xF}},
		{"draw sprite", 0xDAB5, Fields{Op: 0xD, NNN: 0xAB5, NN: 0xB5, N: 0x5, X: 0xA, Y: 0xB}},
		{"clear screen", 0x00E0, Fields{Op: 0x0, NNN: 0x0E0, NN: 0xE0, N: 0x0, X: 0x0, Y: 0xE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word))
		})
	}
}

func TestWord(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Word(0x12, 0x34))
	assert.Equal(t, uint16(0x00EE), Word(0x00, 0xEE))
}
