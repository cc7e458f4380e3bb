package rom

import (
	"encoding/binary"
	"io/fs"
	"iter"
)

const LOAD_ADDRESS = 0x200 // Interpreter address of the first ROM byte.

// Rom is a raw CHIP-8 program image.
type Rom struct {
	Data []byte
}

// Marshal writes the image to name. If writing fails, the file is
// aborted when the file system supports it, so no partial image is left.
func (rom *Rom) Marshal(filesys CreateFS, name string) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	_, err = file.Write(rom.Data)
	if err != nil {
		if aborter, ok := file.(Aborter); ok {
			aborter.Abort()
		} else {
			file.Close()
		}
		return
	}

	err = file.Close()

	return
}

// Unmarshal loads an image from a file system.
func (rom *Rom) Unmarshal(filesys fs.FS, name string) (err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrRomOdd
		return
	}

	rom.Data = data

	return
}

// Words iterates over the load address and big-endian word of each
// opcode in the image.
func (rom *Rom) Words() iter.Seq2[uint16, uint16] {
	return func(yield func(address uint16, word uint16) bool) {
		for n := 0; n+1 < len(rom.Data); n += 2 {
			word := binary.BigEndian.Uint16(rom.Data[n:])
			if !yield(uint16(LOAD_ADDRESS+n), word) {
				return
			}
		}
	}
}
