package hw

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.bin")

	s, err := OpenFileStorage(path)
	assert.NoError(t, err)

	assert.Equal(t, uint16(0), s.ReadWord(SeedOffset), "fresh storage reads zero")

	s.WriteWord(SeedOffset, 0xABCD)
	assert.Equal(t, uint16(0xABCD), s.ReadWord(SeedOffset))
}

func TestFileStoragePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.bin")

	s, err := OpenFileStorage(path)
	assert.NoError(t, err)
	s.WriteWord(SeedOffset, 12345)

	reopened, err := OpenFileStorage(path)
	assert.NoError(t, err)
	assert.Equal(t, uint16(12345), reopened.ReadWord(SeedOffset))
}

func TestFileStorageIgnoresOutOfRangeOffsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.bin")

	s, err := OpenFileStorage(path)
	assert.NoError(t, err)

	s.WriteWord(1000, 0xFFFF)
	assert.Equal(t, uint16(0), s.ReadWord(1000))
}
