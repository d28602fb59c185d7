// Package listing writes the disassembly listing of a CHIP-8 program.
package listing

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/set"
)

// Options of the writer.
type Options struct {
	Labels      bool // print labels for jump, call and index targets
	HexComments bool // print the instruction word after the address
}

// DefaultOptions returns the default listing options.
func DefaultOptions() Options {
	return Options{
		Labels:      true,
		HexComments: true,
	}
}

// Writer writes a program listing.
type Writer struct {
	program []byte
	options Options
	writer  io.Writer
	targets set.Set[uint16]
}

// New creates a new writer for the program image that is loaded at the
// program start address.
func New(program []byte, writer io.Writer, options Options) *Writer {
	return &Writer{
		program: program,
		options: options,
		writer:  writer,
		targets: set.New[uint16](),
	}
}

// Write writes one line per instruction word. A trailing odd byte is
// written as data.
func (w *Writer) Write() error {
	if w.options.Labels {
		w.collectTargets()
	}

	for offset := 0; offset < len(w.program); offset += instruction.Size {
		address := uint16(memory.ProgramStart + offset)

		if w.targets.Contains(address) {
			if _, err := fmt.Fprintf(w.writer, "%s:\n", Label(address)); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		if offset+1 == len(w.program) {
			if err := w.writeByte(address, w.program[offset]); err != nil {
				return err
			}
			break
		}

		word := instruction.Word(w.program[offset], w.program[offset+1])
		if err := w.writeWord(address, word); err != nil {
			return err
		}
	}
	return nil
}

// Targets returns the sorted label addresses found in the program.
func (w *Writer) Targets() []uint16 {
	var targets []uint16
	for offset := 0; offset < len(w.program); offset += instruction.Size {
		address := uint16(memory.ProgramStart + offset)
		if w.targets.Contains(address) {
			targets = append(targets, address)
		}
	}
	return targets
}

// Label returns the label name of an address.
func Label(address uint16) string {
	return fmt.Sprintf("_label_%04x", address)
}

// collectTargets collects all branch targets that point to an instruction
// inside of the program.
func (w *Writer) collectTargets() {
	end := memory.ProgramStart + len(w.program)
	for offset := 0; offset+1 < len(w.program); offset += instruction.Size {
		word := instruction.Word(w.program[offset], w.program[offset+1])
		target, ok := instruction.BranchTarget(word)
		if !ok || int(target) < memory.ProgramStart || int(target) >= end {
			continue
		}
		w.targets.Add(target)
	}
}

func (w *Writer) writeWord(address, word uint16) error {
	code := w.code(word)
	// skipped instructions are indented
	if w.skipped(address) {
		code = " " + code
	}

	var err error
	if w.options.HexComments {
		_, err = fmt.Fprintf(w.writer, "%04X  %04X  %s\n", address, word, code)
	} else {
		_, err = fmt.Fprintf(w.writer, "%04X  %s\n", address, code)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// code returns the disassembled instruction, using the label name for
// targets that have a label.
func (w *Writer) code(word uint16) string {
	target, ok := instruction.BranchTarget(word)
	if !ok || !w.targets.Contains(target) {
		return instruction.Disassemble(word)
	}

	name := instruction.Name(word)
	if word&0xF000 == 0xA000 {
		return fmt.Sprintf("%s I, %s", name, Label(target))
	}
	return fmt.Sprintf("%s %s", name, Label(target))
}

func (w *Writer) writeByte(address uint16, b byte) error {
	var err error
	if w.options.HexComments {
		_, err = fmt.Fprintf(w.writer, "%04X  %02X    .byte $%02X\n", address, b, b)
	} else {
		_, err = fmt.Fprintf(w.writer, "%04X  .byte $%02X\n", address, b)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// skipped returns whether the instruction at the address follows a
// conditional skip instruction.
func (w *Writer) skipped(address uint16) bool {
	offset := int(address) - memory.ProgramStart - instruction.Size
	if offset < 0 {
		return false
	}
	return instruction.IsSkip(instruction.Word(w.program[offset], w.program[offset+1]))
}
