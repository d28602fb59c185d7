// Package machine drives the CHIP-8 virtual machine: it owns all components,
// executes instructions at the configured clock speed and services the 60 Hz
// timers and the host frontend.
package machine

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultClockSpeed is the number of instructions executed per second.
	DefaultClockSpeed = 500

	// TimerFrequency is the rate in Hz of the delay and sound timers and of
	// the frontend refresh.
	TimerFrequency = 60
)

// Frontend is the host side of the machine. It is called once per timer tick.
type Frontend interface {
	// ProcessEvents updates the keypad from host input. It returns false
	// when the user requested to quit.
	ProcessEvents(keys *keyboard.Keyboard) bool
	// Render presents the display contents.
	Render(buf display.Buffer) error
}

// Options contains the machine settings.
type Options struct {
	ClockSpeed int         // instructions per second, DefaultClockSpeed if 0
	MaxFrames  int         // stop running after this many frames, 0 runs until quit
	Trace      bool        // log every executed instruction
	Random     func() byte // random source for RND, math/rand if nil
}

// Machine is a complete CHIP-8 system.
type Machine struct {
	logger *log.Logger
	opts   Options

	memory   *memory.Memory
	display  *display.Display
	keyboard *keyboard.Keyboard
	cpu      *cpu.CPU
}

// New returns a new machine in its power on state.
func New(logger *log.Logger, opts Options) *Machine {
	if opts.ClockSpeed <= 0 {
		opts.ClockSpeed = DefaultClockSpeed
	}

	var cpuOptions []cpu.Option
	if opts.Random != nil {
		cpuOptions = append(cpuOptions, cpu.WithRandom(opts.Random))
	}
	if opts.Trace {
		cpuOptions = append(cpuOptions, cpu.WithTrace())
	}

	m := &Machine{
		logger:   logger,
		opts:     opts,
		memory:   memory.New(),
		display:  display.New(),
		keyboard: keyboard.New(),
	}
	m.cpu = cpu.New(logger, m.memory, m.display, cpuOptions...)
	return m
}

// Load resets the machine and loads the program image at the program start address.
func (m *Machine) Load(image []byte) error {
	m.Reset()
	if err := m.memory.LoadProgram(image); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	m.logger.Debug("Program loaded",
		log.Int("size", len(image)),
		log.Hex("start", uint16(memory.ProgramStart)))
	return nil
}

// Reset returns all components to their power on state, the loaded program is lost.
func (m *Machine) Reset() {
	m.memory.Reset()
	m.display.Clear()
	m.keyboard.ReleaseKey()
	m.cpu.Reset()
}

// Step executes a single instruction.
func (m *Machine) Step() error {
	return m.cpu.Step(m.keyboard)
}

// RunCycles executes the given number of instructions without any timing.
// Timers are ticked once for every elapsed 60 Hz period at the configured
// clock speed.
func (m *Machine) RunCycles(cycles int) error {
	perTick := m.cyclesPerTick()
	for i := 1; i <= cycles; i++ {
		if err := m.Step(); err != nil {
			m.logHalt(err)
			return fmt.Errorf("running program: %w", err)
		}
		if i%perTick == 0 {
			m.cpu.TickTimers()
		}
	}
	return nil
}

// Run executes the program until the frontend requests to quit, the frame
// limit is reached, the context is cancelled or an instruction fails.
func (m *Machine) Run(ctx context.Context, frontend Frontend) error {
	clock := time.NewTicker(time.Second / time.Duration(m.opts.ClockSpeed))
	defer clock.Stop()
	timer := time.NewTicker(time.Second / TimerFrequency)
	defer timer.Stop()

	m.logger.Debug("Starting machine", log.Int("clock_speed", m.opts.ClockSpeed))

	var frames int
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timer.C:
			running, err := m.frame(frontend)
			if err != nil {
				return err
			}
			if !running {
				m.logger.Debug("Quit requested", log.Int("cycles", int(m.cpu.Cycles())))
				return nil
			}
			frames++
			if m.opts.MaxFrames > 0 && frames >= m.opts.MaxFrames {
				m.logger.Debug("Frame limit reached", log.Int("cycles", int(m.cpu.Cycles())))
				return nil
			}

		case <-clock.C:
			if err := m.Step(); err != nil {
				m.logHalt(err)
				return fmt.Errorf("running program: %w", err)
			}
		}
	}
}

// frame handles a single 60 Hz tick.
func (m *Machine) frame(frontend Frontend) (bool, error) {
	if !frontend.ProcessEvents(m.keyboard) {
		return false, nil
	}
	m.cpu.TickTimers()
	if err := frontend.Render(m.display.Buffer()); err != nil {
		return false, fmt.Errorf("rendering frame: %w", err)
	}
	return true, nil
}

func (m *Machine) cyclesPerTick() int {
	perTick := m.opts.ClockSpeed / TimerFrequency
	if perTick < 1 {
		return 1
	}
	return perTick
}

// logHalt logs the machine state after a failed instruction.
func (m *Machine) logHalt(err error) {
	c := m.cpu
	word, _ := m.word(c.PC)
	m.logger.Error("Machine halted",
		log.Err(err),
		log.Hex("pc", c.PC),
		log.String("code", instruction.Disassemble(word)),
		log.Hex("i", c.I),
		log.String("registers", fmt.Sprintf("% X", c.V[:])),
		log.Int("stack", len(c.Stack())),
		log.Int("cycles", int(c.Cycles())))
}

func (m *Machine) word(address uint16) (uint16, error) {
	data, err := m.memory.Slice(address, instruction.Size)
	if err != nil {
		return 0, err
	}
	return instruction.Word(data[0], data[1]), nil
}

// CPU returns the processor of the machine.
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}

// Keyboard returns the keypad that the host input writes to.
func (m *Machine) Keyboard() *keyboard.Keyboard {
	return m.keyboard
}

// Screen returns a copy of the display contents.
func (m *Machine) Screen() display.Buffer {
	return m.display.Buffer()
}

// Memory returns the memory of the machine.
func (m *Machine) Memory() *memory.Memory {
	return m.memory
}
