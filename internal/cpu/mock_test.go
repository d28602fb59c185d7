package cpu

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// mockKeys is a minimal keypad state for testing.
type mockKeys struct {
	key     keyboard.Key
	pressed bool
}

func (m *mockKeys) IsKeyPressed(key keyboard.Key) bool {
	return m.pressed && m.key == key
}

func (m *mockKeys) KeyPressed() (keyboard.Key, bool) {
	return m.key, m.pressed
}

// newTestCPU returns a CPU with the given instruction words loaded at the program start.
func newTestCPU(t *testing.T, words ...uint16) (*CPU, *memory.Memory, *display.Display) {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}

	mem := memory.New()
	assert.NoError(t, mem.LoadProgram(program))
	disp := display.New()

	c := New(log.NewTestLogger(t), mem, disp, WithRandom(func() byte { return 0xA5 }))
	return c, mem, disp
}

// steps executes the given number of instructions and fails on any error.
func steps(t *testing.T, c *CPU, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		assert.NoError(t, c.Step(nil))
	}
}
