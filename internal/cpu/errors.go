package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrCallStackOverflow is returned when a call is executed at maximum nesting depth.
	ErrCallStackOverflow = errors.New("call stack overflow")

	// ErrCallStackUnderflow is returned when a return is executed without a pending call.
	ErrCallStackUnderflow = errors.New("call stack underflow")
)

// UnsupportedInstructionError is returned when no opcode matches an instruction word.
type UnsupportedInstructionError struct {
	PC   uint16
	Word uint16
}

func (e *UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("unsupported instruction $%04X", e.Word)
}

// ExecutionError wraps any failure of a step with the address and word of
// the instruction that could not be executed. The CPU state is left as it
// was before the instruction.
type ExecutionError struct {
	PC   uint16
	Word uint16
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing instruction $%04X at $%04X: %v", e.Word, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
