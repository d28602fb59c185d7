package machine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()
	m := New(log.NewTestLogger(t), Options{
		ClockSpeed: 6000,
		Random:     func() byte { return 0x3C },
	})
	assert.NoError(t, m.Load(program(words...)))
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := New(log.NewTestLogger(t), Options{})
	assert.Equal(t, DefaultClockSpeed, m.opts.ClockSpeed)
	assert.Equal(t, uint16(memory.ProgramStart), m.CPU().PC)

	// font is present after power on
	b, err := m.Memory().ReadByte(memory.FontStart)
	assert.NoError(t, err)
	assert.Equal(t, memory.Font[0], b)
}

func TestLoad(t *testing.T) {
	m := newTestMachine(t, 0x6005)
	assert.NoError(t, m.Step())
	assert.Equal(t, byte(5), m.CPU().V[0])

	// loading again resets all state
	assert.NoError(t, m.Load(program(0x00E0)))
	assert.Equal(t, byte(0), m.CPU().V[0])
	assert.Equal(t, uint16(memory.ProgramStart), m.CPU().PC)

	err := m.Load(make([]byte, memory.MaxProgramSize+1))
	assert.True(t, errors.Is(err, memory.ErrProgramTooLarge))
}

func TestRunCycles(t *testing.T) {
	m := newTestMachine(t,
		0x6105, // ld V1, $05
		0x7103, // add V1, $03
		0xC0FF, // rnd V0, $FF
		0x1206, // jp $206
	)
	assert.NoError(t, m.RunCycles(10))

	c := m.CPU()
	assert.Equal(t, byte(8), c.V[1])
	assert.Equal(t, byte(0x3C), c.V[0])
	assert.Equal(t, uint16(0x206), c.PC)
	assert.Equal(t, uint64(10), c.Cycles())
}

func TestRunCycles_TicksTimers(t *testing.T) {
	m := newTestMachine(t,
		0x6014, // ld V0, $14
		0xF015, // ld DT, V0
		0x1204, // jp $204
	)
	// 6000 Hz clock gives 100 instructions per timer tick
	assert.NoError(t, m.RunCycles(302))
	assert.Equal(t, byte(0x14-3), m.CPU().DelayTimer)
}

func TestRunCycles_Halt(t *testing.T) {
	m := newTestMachine(t,
		0x6001, // ld V0, $01
		0xE0FF, // unsupported
	)
	err := m.RunCycles(5)
	assert.Error(t, err)

	var unsupported *cpu.UnsupportedInstructionError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, uint16(0x202), unsupported.PC)
	assert.Equal(t, uint16(0xE0FF), unsupported.Word)
	assert.Equal(t, uint64(1), m.CPU().Cycles())
}

func TestFrame(t *testing.T) {
	key := keyboard.Key(0xA)
	m := newTestMachine(t,
		0xF00A, // ld V0, K
	)
	m.CPU().DelayTimer = 2
	frontend := &mockFrontend{frames: 1, press: &key}

	running, err := m.frame(frontend)
	assert.NoError(t, err)
	assert.True(t, running)
	assert.Equal(t, byte(1), m.CPU().DelayTimer)
	assert.Equal(t, 1, frontend.rendered)

	// the key set by the frontend is visible to the next instruction
	assert.NoError(t, m.Step())
	assert.Equal(t, byte(0xA), m.CPU().V[0])

	running, err = m.frame(frontend)
	assert.NoError(t, err)
	assert.False(t, running)
	assert.Equal(t, byte(1), m.CPU().DelayTimer)
}

func TestFrame_RenderError(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	frontend := &mockFrontend{frames: 1, renderErr: errRender}

	_, err := m.frame(frontend)
	assert.True(t, errors.Is(err, errRender))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		words   []uint16
		frames  int
		wantErr bool
	}{
		{
			name:   "quit by frontend",
			words:  []uint16{0x1200},
			frames: 3,
		},
		{
			name:    "halt on unsupported instruction",
			words:   []uint16{0xF0FF},
			frames:  1000,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.words...)
			frontend := &mockFrontend{frames: tt.frames}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			err := m.Run(ctx, frontend)
			if tt.wantErr {
				var execErr *cpu.ExecutionError
				assert.True(t, errors.As(err, &execErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.frames, frontend.rendered)
		})
	}
}

func TestRun_MaxFrames(t *testing.T) {
	m := New(log.NewTestLogger(t), Options{ClockSpeed: 1000, MaxFrames: 5})
	assert.NoError(t, m.Load(program(0x1200)))
	frontend := &mockFrontend{frames: 1 << 30}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	assert.NoError(t, m.Run(ctx, frontend))
	assert.Equal(t, 5, frontend.processed)
	assert.Equal(t, 5, frontend.rendered)
}

func TestRun_ContextCancelled(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	frontend := &mockFrontend{frames: 1 << 30}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := m.Run(ctx, frontend)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, m.CPU().Cycles() > 0)
}

func TestDrawReachesFrontend(t *testing.T) {
	m := newTestMachine(t,
		0xA000, // ld I, $000 (glyph 0)
		0xD005, // drw V0, V0, $5
	)
	assert.NoError(t, m.RunCycles(2))

	frontend := &mockFrontend{frames: 1}
	_, err := m.frame(frontend)
	assert.NoError(t, err)
	assert.True(t, frontend.last.Pixel(0, 0))
	assert.False(t, frontend.last.Pixel(4, 0))
	assert.Equal(t, m.Screen(), frontend.last)
}
