package cpu

import (
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/memory"
)

// execute dispatches a decoded instruction. Every branch either sets the
// next program counter or returns an error without changing any state.
func (c *CPU) execute(word uint16, f instruction.Fields, keys KeyState) error {
	switch f.Op {
	case 0x0:
		return c.executeSystem(word, f)

	case 0x1: // JP addr
		c.PC = f.NNN

	case 0x2: // CALL addr
		return c.call(f.NNN)

	case 0x3: // SE Vx, byte
		c.skipIf(c.V[f.X] == f.NN)

	case 0x4: // SNE Vx, byte
		c.skipIf(c.V[f.X] != f.NN)

	case 0x5: // SE Vx, Vy
		c.skipIf(c.V[f.X] == c.V[f.Y])

	case 0x6: // LD Vx, byte
		c.V[f.X] = f.NN
		c.next()

	case 0x7: // ADD Vx, byte, does not touch VF
		c.V[f.X] += f.NN
		c.next()

	case 0x8:
		return c.executeALU(word, f)

	case 0x9: // SNE Vx, Vy
		c.skipIf(c.V[f.X] != c.V[f.Y])

	case 0xA: // LD I, addr
		c.I = f.NNN
		c.next()

	case 0xB: // JP V0, addr
		c.PC = uint16(c.V[0]) + f.NNN

	case 0xC: // RND Vx, byte
		c.V[f.X] = c.random() & f.NN
		c.next()

	case 0xD: // DRW Vx, Vy, nibble
		return c.draw(f)

	case 0xE:
		return c.executeKeypad(word, f, keys)

	case 0xF:
		return c.executeMisc(word, f, keys)

	default:
		return c.unsupported(word)
	}

	return nil
}

// executeSystem handles the 0x0 instruction group.
func (c *CPU) executeSystem(word uint16, f instruction.Fields) error {
	switch f.NN {
	case 0xE0: // CLS
		c.display.Clear()
		c.next()
		return nil

	case 0xEE: // RET
		return c.ret()

	default:
		return c.unsupported(word)
	}
}

// executeALU handles the 0x8 register arithmetic group. Result and flag are
// computed from the original operands, the flag is written last so that it
// is kept when the destination is VF itself.
func (c *CPU) executeALU(word uint16, f instruction.Fields) error {
	vx, vy := c.V[f.X], c.V[f.Y]

	switch f.N {
	case 0x0: // LD Vx, Vy
		c.V[f.X] = vy

	case 0x1: // OR Vx, Vy
		c.V[f.X] = vx | vy

	case 0x2: // AND Vx, Vy
		c.V[f.X] = vx & vy

	case 0x3: // XOR Vx, Vy
		c.V[f.X] = vx ^ vy

	case 0x4: // ADD Vx, Vy, VF is only written on carry
		sum := uint16(vx) + uint16(vy)
		c.V[f.X] = byte(sum)
		if sum > 0xFF {
			c.V[FlagRegister] = 1
		}

	case 0x5: // SUB Vx, Vy, VF is set on borrow
		c.setWithFlag(f.X, vx-vy, boolToByte(vy > vx))

	case 0x6: // SHR Vx
		c.setWithFlag(f.X, vx>>1, vx&0x01)

	case 0x7: // SUBN Vx, Vy, VF is set on borrow
		c.setWithFlag(f.X, vy-vx, boolToByte(vx > vy))

	case 0xE: // SHL Vx
		c.setWithFlag(f.X, vx<<1, vx>>7)

	default:
		return c.unsupported(word)
	}

	c.next()
	return nil
}

// executeKeypad handles the 0xE keypad skip group.
func (c *CPU) executeKeypad(word uint16, f instruction.Fields, keys KeyState) error {
	key := keyboard.Key(c.V[f.X])

	switch f.NN {
	case 0x9E: // SKP Vx
		c.skipIf(keys.IsKeyPressed(key))

	case 0xA1: // SKNP Vx
		c.skipIf(!keys.IsKeyPressed(key))

	default:
		return c.unsupported(word)
	}
	return nil
}

// executeMisc handles the 0xF timer, keypad wait, index and memory group.
func (c *CPU) executeMisc(word uint16, f instruction.Fields, keys KeyState) error {
	switch f.NN {
	case 0x07: // LD Vx, DT
		c.V[f.X] = c.DelayTimer

	case 0x0A: // LD Vx, K
		key, ok := keys.KeyPressed()
		if !ok {
			// the instruction is executed again on the next step
			return nil
		}
		c.V[f.X] = byte(key)

	case 0x15: // LD DT, Vx
		c.DelayTimer = c.V[f.X]

	case 0x18: // LD ST, Vx
		c.SoundTimer = c.V[f.X]

	case 0x1E: // ADD I, Vx, no overflow flag
		c.I += uint16(c.V[f.X])

	case 0x29: // LD F, Vx
		c.I = memory.GlyphAddress(c.V[f.X])

	case 0x33: // LD B, Vx
		if err := c.storeBCD(c.V[f.X]); err != nil {
			return err
		}

	case 0x55: // LD [I], Vx
		if err := c.storeRegisters(f.X); err != nil {
			return err
		}

	case 0x65: // LD Vx, [I]
		if err := c.loadRegisters(f.X); err != nil {
			return err
		}

	default:
		return c.unsupported(word)
	}

	c.next()
	return nil
}

// call pushes the return address and jumps to the subroutine.
func (c *CPU) call(address uint16) error {
	if len(c.stack) >= StackDepth {
		return ErrCallStackOverflow
	}
	c.stack = append(c.stack, c.PC+instruction.Size)
	c.PC = address
	return nil
}

// ret pops the most recent return address into the program counter.
func (c *CPU) ret() error {
	if len(c.stack) == 0 {
		return ErrCallStackUnderflow
	}
	last := len(c.stack) - 1
	c.PC = c.stack[last]
	c.stack = c.stack[:last]
	return nil
}

// draw blits a sprite of n rows from memory at I to the display at Vx, Vy.
// VF is set once after all rows, to 1 if any row erased a pixel.
func (c *CPU) draw(f instruction.Fields) error {
	rows, err := c.memory.Slice(c.I, int(f.N))
	if err != nil {
		return err
	}

	x, y := int(c.V[f.X]), int(c.V[f.Y])
	collision := false
	for i, row := range rows {
		if c.display.DrawByte(row, x, y+i) {
			collision = true
		}
	}

	c.V[FlagRegister] = boolToByte(collision)
	c.next()
	return nil
}

// storeBCD writes the hundreds, tens and units digits of value to I, I+1 and I+2.
func (c *CPU) storeBCD(value byte) error {
	digits := [3]byte{value / 100, value / 10 % 10, value % 10}
	if err := c.memory.CheckRange(c.I, len(digits)); err != nil {
		return err
	}
	for i, digit := range digits {
		if err := c.memory.WriteByte(c.I+uint16(i), digit); err != nil {
			return err
		}
	}
	return nil
}

// storeRegisters writes V0..Vx to memory starting at I. I is not changed.
func (c *CPU) storeRegisters(x byte) error {
	count := int(x) + 1
	if err := c.memory.CheckRange(c.I, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := c.memory.WriteByte(c.I+uint16(i), c.V[i]); err != nil {
			return err
		}
	}
	return nil
}

// loadRegisters reads V0..Vx from memory starting at I. I is not changed.
func (c *CPU) loadRegisters(x byte) error {
	values, err := c.memory.Slice(c.I, int(x)+1)
	if err != nil {
		return err
	}
	copy(c.V[:], values)
	return nil
}

// setWithFlag writes the result to Vx first and the flag to VF second.
func (c *CPU) setWithFlag(x, result, flag byte) {
	c.V[x] = result
	c.V[FlagRegister] = flag
}

// skipIf advances the program counter past the next instruction if the
// condition holds, otherwise to the next instruction.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.PC += 2 * instruction.Size
		return
	}
	c.next()
}

// next advances the program counter to the following instruction.
func (c *CPU) next() {
	c.PC += instruction.Size
}

func (c *CPU) unsupported(word uint16) error {
	return &UnsupportedInstructionError{PC: c.PC, Word: word}
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
