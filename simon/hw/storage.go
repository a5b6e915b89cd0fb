package hw

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwoodall/go-simon/simon/bit"
)

// storageSize covers the byte offsets the game uses, with some slack so the
// layout can grow without a format change.
const storageSize = 64

// FileStorage is word storage backed by a small binary file, standing in for
// the on-chip EEPROM. Offsets are byte addresses and words are
// stored little-endian. Every write goes straight to disk so the seed
// survives a crash the same way it survives a power cycle.
type FileStorage struct {
	path string
	data []byte
}

// OpenFileStorage loads word storage from path, creating an all-zero image
// if the file does not exist yet.
func OpenFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{
		path: path,
		data: make([]byte, storageSize),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	copy(s.data, raw)
	return s, nil
}

func (s *FileStorage) ReadWord(offset uint16) uint16 {
	lo := int(offset)
	if lo+1 >= len(s.data) {
		return 0
	}
	return bit.Combine(s.data[lo+1], s.data[lo])
}

func (s *FileStorage) WriteWord(offset uint16, value uint16) {
	lo := int(offset)
	if lo+1 >= len(s.data) {
		return
	}
	s.data[lo] = bit.Low(value)
	s.data[lo+1] = bit.High(value)

	if err := os.WriteFile(s.path, s.data, 0644); err != nil {
		slog.Error("Failed to persist word storage", "path", s.path, "error", err)
	}
}
