// Package instruction provides decoding and disassembly of CHIP-8 instruction words.
//
// # Instruction Format
//
// All instructions are 2 bytes, stored big-endian. The fields of a word are
// extracted by masking and shifting:
//
//	op  = bits 12-15  primary dispatch key
//	nnn = bits 0-11   12-bit address or literal
//	nn  = bits 0-7    8-bit immediate
//	n   = bits 0-3    4-bit literal, for example the sprite height
//	x   = bits 8-11   register selector
//	y   = bits 4-7    register selector
//
// Decoding never fails, whether a word is a valid instruction is decided by
// the CPU at dispatch time.
//
// # Disassembly
//
// Mnemonics are looked up in the retrogolib CHIP-8 opcode table by matching
// the opcode mask and value, the same way a disassembler identifies opcodes.
// Words that match no opcode are rendered as data.
package instruction
