package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the opcode table entry matching the instruction word.
func Lookup(word uint16) (chip8.Opcode, bool) {
	opcodes := chip8.Opcodes[int(word>>12)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// Name returns the mnemonic of the instruction word or an empty string if
// the word is not a known instruction.
func Name(word uint16) string {
	op, ok := Lookup(word)
	if !ok || op.Instruction == nil {
		return ""
	}
	return op.Instruction.Name
}

// Disassemble formats the instruction word as assembly code.
// Unknown words are formatted as a data word.
func Disassemble(word uint16) string {
	name := Name(word)
	if name == "" {
		return fmt.Sprintf(".word $%04X", word)
	}
	if params := formatParams(name, word); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// IsSkip returns whether the instruction word conditionally skips the next instruction.
func IsSkip(word uint16) bool {
	name := Name(word)
	return name != "" && chip8.SkipInstructions.Contains(name)
}

// BranchTarget returns the absolute target address of jump, call and
// index load instructions.
func BranchTarget(word uint16) (uint16, bool) {
	switch word & 0xF000 {
	case 0x1000, 0x2000, 0xA000:
		return word & 0x0FFF, true
	}
	return 0, false
}

// formatParams formats the parameters of an instruction.
func formatParams(name string, word uint16) string {
	f := Decode(word)

	switch name {
	case chip8.Cls.Name, chip8.Ret.Name:
		return ""
	case chip8.Jp.Name:
		return formatJump(word)
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", f.NNN)
	case chip8.Se.Name, chip8.Sne.Name:
		return formatCompare(word)
	case chip8.Ld.Name:
		return formatLoad(word)
	case chip8.Add.Name:
		return formatAdd(word)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", f.X, f.Y)
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", f.X)
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", f.X, f.NN)
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", f.X, f.Y, f.N)
	}
	return ""
}

// formatJump formats jump instructions (JP addr, JP V0+addr).
func formatJump(word uint16) string {
	switch word & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", word&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", word&0x0FFF)
	}
	return ""
}

// formatCompare formats comparison instructions (SE, SNE).
func formatCompare(word uint16) string {
	f := Decode(word)
	switch word & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", f.X, f.NN)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", f.X, f.Y)
	}
	return ""
}

// formatLoad formats the load instruction variants.
func formatLoad(word uint16) string {
	f := Decode(word)
	switch word & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", f.X, f.NN)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", f.X, f.Y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", f.NNN)
	case 0xF000:
		return formatLoadF(f)
	}
	return ""
}

// formatLoadF formats the timer, keypad, font and memory block loads.
func formatLoadF(f Fields) string {
	switch f.NN {
	case 0x07:
		return fmt.Sprintf("V%X, DT", f.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", f.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", f.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", f.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", f.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", f.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", f.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", f.X)
	}
	return ""
}

// formatAdd formats add instructions (ADD Vx, byte/Vy, ADD I, Vx).
func formatAdd(word uint16) string {
	f := Decode(word)
	switch word & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", f.X, f.NN)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", f.X, f.Y)
	case 0xF000:
		return fmt.Sprintf("I, V%X", f.X)
	}
	return ""
}
