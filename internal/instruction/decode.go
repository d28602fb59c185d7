package instruction

// Size is the size of an instruction in bytes.
const Size = 2

// Fields contains the bitfields of an instruction word.
type Fields struct {
	Op  byte   // top nibble
	NNN uint16 // 12-bit address
	NN  byte   // 8-bit immediate
	N   byte   // 4-bit literal
	X   byte   // first register selector
	Y   byte   // second register selector
}

// Decode splits an instruction word into its bitfields.
func Decode(word uint16) Fields {
	return Fields{
		Op:  byte(word >> 12),
		NNN: word & 0x0FFF,
		NN:  byte(word & 0x00FF),
		N:   byte(word & 0x000F),
		X:   byte((word & 0x0F00) >> 8),
		Y:   byte((word & 0x00F0) >> 4),
	}
}

// Word combines the two bytes of an instruction in big-endian order.
func Word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
