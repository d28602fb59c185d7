// Package memory provides the flat byte addressable memory of the CHIP-8 virtual machine.
package memory

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: Built-in hexadecimal font (16 glyphs of 5 bytes)
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: Program image
const (
	// Size is the number of addressable bytes.
	Size = 0x1000

	// ProgramStart is the address where program images are loaded and execution starts.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = Size - ProgramStart
)

// ErrProgramTooLarge is returned when a program image does not fit behind ProgramStart.
var ErrProgramTooLarge = errors.New("program image too large")

// OutOfBoundsError is returned for any access outside of the backing store.
type OutOfBoundsError struct {
	Address int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory address $%04X out of bounds", e.Address)
}

// Memory is the 4KB address space of the virtual machine.
// It is owned by the CPU, the only component mutating it during execution.
type Memory struct {
	data [Size]byte
}

// New returns a new memory instance with the font loaded.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears the memory and reloads the built-in font.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	copy(m.data[FontStart:], Font[:])
}

// ReadByte returns the byte at the given address.
func (m *Memory) ReadByte(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, &OutOfBoundsError{Address: int(address)}
	}
	return m.data[address], nil
}

// WriteByte sets the byte at the given address.
func (m *Memory) WriteByte(address uint16, value byte) error {
	if int(address) >= Size {
		return &OutOfBoundsError{Address: int(address)}
	}
	m.data[address] = value
	return nil
}

// CheckRange verifies that length bytes starting at address are all addressable.
// The returned error carries the first address that is out of bounds.
func (m *Memory) CheckRange(address uint16, length int) error {
	if length <= 0 {
		return nil
	}
	last := int(address) + length - 1
	if last < Size {
		return nil
	}
	first := int(address)
	if first < Size {
		first = Size
	}
	return &OutOfBoundsError{Address: first}
}

// LoadProgram copies a program image to ProgramStart.
// The size is checked before any byte is written.
func (m *Memory) LoadProgram(image []byte) error {
	if len(image) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(image), MaxProgramSize)
	}
	copy(m.data[ProgramStart:], image)
	return nil
}

// Slice returns a copy of length bytes starting at address.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	if err := m.CheckRange(address, length); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	copy(buf, m.data[address:])
	return buf, nil
}
