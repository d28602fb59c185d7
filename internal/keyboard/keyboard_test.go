package keyboard

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyboard_NoKeyPressed(t *testing.T) {
	k := New()

	_, ok := k.KeyPressed()
	assert.False(t, ok)
	for key := Key(0); key < KeyCount; key++ {
		assert.False(t, k.IsKeyPressed(key))
	}
}

func TestKeyboard_SetKeyPressed(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		pressed bool
	}{
		{"first key", 0x0, true},
		{"middle key", 0x7, true},
		{"last key", 0xF, true},
		{"invalid key", 0x10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := New()
			k.SetKeyPressed(tt.key)

			key, ok := k.KeyPressed()
			assert.Equal(t, tt.pressed, ok)
			if tt.pressed {
				assert.Equal(t, tt.key, key)
			}
			assert.Equal(t, tt.pressed, k.IsKeyPressed(tt.key))
		})
	}
}

func TestKeyboard_SingleTrackedKey(t *testing.T) {
	k := New()
	k.SetKeyPressed(0x1)
	k.SetKeyPressed(0x2)

	assert.False(t, k.IsKeyPressed(0x1))
	assert.True(t, k.IsKeyPressed(0x2))
}

func TestKeyboard_Release(t *testing.T) {
	k := New()
	k.SetKeyPressed(0xA)

	k.Release(0xB)
	assert.True(t, k.IsKeyPressed(0xA))

	k.Release(0xA)
	assert.False(t, k.IsKeyPressed(0xA))
	_, ok := k.KeyPressed()
	assert.False(t, ok)

	k.SetKeyPressed(0x3)
	k.ReleaseKey()
	_, ok = k.KeyPressed()
	assert.False(t, ok)
}
