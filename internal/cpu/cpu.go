// Package cpu implements the fetch, decode and execute engine of the CHIP-8 virtual machine.
package cpu

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

const (
	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16

	// FlagRegister is the index of VF, which doubles as carry, borrow and collision flag.
	FlagRegister = 0xF

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
)

// KeyState gives the CPU read-only access to the keypad for the duration of a step.
type KeyState interface {
	IsKeyPressed(key keyboard.Key) bool
	KeyPressed() (keyboard.Key, bool)
}

// Option configures a CPU.
type Option func(*CPU)

// WithRandom sets the source of random bytes used by the RND instruction.
func WithRandom(random func() byte) Option {
	return func(c *CPU) {
		c.random = random
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace() Option {
	return func(c *CPU) {
		c.trace = true
	}
}

// CPU holds the register state of the virtual machine and exclusively owns
// its memory and display.
type CPU struct {
	V  [RegisterCount]byte // general purpose registers V0-VF
	I  uint16              // index register
	PC uint16              // program counter

	DelayTimer byte
	SoundTimer byte // kept for completeness, no sound is produced

	stack   []uint16
	cycles  uint64
	memory  *memory.Memory
	display *display.Display
	logger  *log.Logger
	random  func() byte
	trace   bool
}

// New returns a new CPU operating on the given memory and display.
func New(logger *log.Logger, mem *memory.Memory, disp *display.Display, options ...Option) *CPU {
	c := &CPU{
		memory:  mem,
		display: disp,
		logger:  logger,
		random:  randomByte,
		stack:   make([]uint16, 0, StackDepth),
	}
	for _, option := range options {
		option(c)
	}
	c.Reset()
	return c
}

// Reset sets all registers to their power on state.
// Memory and display are not touched.
func (c *CPU) Reset() {
	c.V = [RegisterCount]byte{}
	c.I = 0
	c.PC = memory.ProgramStart
	c.DelayTimer = 0
	c.SoundTimer = 0
	c.stack = c.stack[:0]
	c.cycles = 0
}

// Step fetches, decodes and executes a single instruction.
// On error no state of the failed instruction has been committed.
func (c *CPU) Step(keys KeyState) error {
	if keys == nil {
		keys = noKeys{}
	}

	word, err := c.fetch()
	if err != nil {
		return &ExecutionError{PC: c.PC, Err: err}
	}

	if c.trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", c.PC),
			log.Hex("opcode", word),
			log.String("code", instruction.Disassemble(word)))
	}

	if err := c.execute(word, instruction.Decode(word), keys); err != nil {
		return &ExecutionError{PC: c.PC, Word: word, Err: err}
	}

	c.cycles++
	return nil
}

// TickTimers decrements the delay and sound timers. It has to be called by
// the driver at 60 Hz, independent of the instruction rate.
func (c *CPU) TickTimers() {
	if c.DelayTimer > 0 {
		c.DelayTimer--
	}
	if c.SoundTimer > 0 {
		c.SoundTimer--
	}
}

// Stack returns a copy of the pending return addresses, most recent last.
func (c *CPU) Stack() []uint16 {
	stack := make([]uint16, len(c.stack))
	copy(stack, c.stack)
	return stack
}

// Cycles returns the number of instructions executed since the last reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// fetch reads the big-endian instruction word at the program counter.
// The program counter is not advanced.
func (c *CPU) fetch() (uint16, error) {
	if err := c.memory.CheckRange(c.PC, instruction.Size); err != nil {
		return 0, err
	}
	hi, err := c.memory.ReadByte(c.PC)
	if err != nil {
		return 0, err
	}
	lo, err := c.memory.ReadByte(c.PC + 1)
	if err != nil {
		return 0, err
	}
	return instruction.Word(hi, lo), nil
}

func randomByte() byte {
	return byte(rand.UintN(256))
}

// noKeys is used when a step is executed without a keypad.
type noKeys struct{}

func (noKeys) IsKeyPressed(keyboard.Key) bool { return false }

func (noKeys) KeyPressed() (keyboard.Key, bool) { return 0, false }
