// Package loader handles ROM file loading operations.
package loader

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// ROM is a program image ready to be loaded into memory.
type ROM struct {
	Name     string
	Data     []byte
	Checksum uint32 // CRC32 of the program image
}

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file at the given path.
func (l *Loader) Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	rom, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, err
	}
	rom.Name = filepath.Base(path)
	return rom, nil
}

// LoadFromBytes converts raw ROM file content to a program image.
// CHIP-8 ROMs have no header, the whole content is the program.
func (l *Loader) LoadFromBytes(data []byte) (*ROM, error) {
	if len(data) > memory.MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d",
			memory.ErrProgramTooLarge, len(data), memory.MaxProgramSize)
	}

	cart, err := cartridge.LoadBuffer(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}

	// the buffer loader pads the image to a full bank, strip the padding
	image := make([]byte, len(data))
	copy(image, cart.PRG)

	return &ROM{
		Data:     image,
		Checksum: crc32.ChecksumIEEE(image),
	}, nil
}
