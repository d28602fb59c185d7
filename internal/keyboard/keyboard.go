// Package keyboard tracks the state of the 16 key CHIP-8 keypad.
//
// The host input layer is the only writer. Only a single key is tracked as
// pressed at a time, pressing a new key replaces the previous one.
package keyboard

// KeyCount is the number of logical keys.
const KeyCount = 16

// Key is a logical key code in the range 0x0-0xF.
type Key byte

// Keyboard holds the currently pressed key, if any.
type Keyboard struct {
	key     Key
	pressed bool
}

// New returns a keyboard with no key pressed.
func New() *Keyboard {
	return &Keyboard{}
}

// SetKeyPressed marks the given key as the currently pressed one.
// Invalid key codes are ignored.
func (k *Keyboard) SetKeyPressed(key Key) {
	if key >= KeyCount {
		return
	}
	k.key = key
	k.pressed = true
}

// ReleaseKey clears the pressed key.
func (k *Keyboard) ReleaseKey() {
	k.key = 0
	k.pressed = false
}

// Release clears the pressed key if it matches the given key.
func (k *Keyboard) Release(key Key) {
	if k.pressed && k.key == key {
		k.ReleaseKey()
	}
}

// IsKeyPressed returns whether the given key is currently pressed.
func (k *Keyboard) IsKeyPressed(key Key) bool {
	return k.pressed && k.key == key
}

// KeyPressed returns the currently pressed key and whether there is one.
func (k *Keyboard) KeyPressed() (Key, bool) {
	return k.key, k.pressed
}
