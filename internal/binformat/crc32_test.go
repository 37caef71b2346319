package binformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCRC32_StandardVector anchors the engine against the canonical
// CRC-32/IEEE test vector (spec §4.2).
func TestCRC32_StandardVector(t *testing.T) {
	require.Equal(t, uint32(0xCBF43926), CRC32([]byte("123456789")))
}

func TestCRC32_EmptyInput(t *testing.T) {
	require.Equal(t, uint32(0), CRC32(nil))
	require.Equal(t, uint32(0), CRC32([]byte{}))
}

func TestCRC32_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	require.Equal(t, CRC32(data), CRC32(data))
}

func TestCRC32_DetectsSingleBitFlip(t *testing.T) {
	data := []byte("a metadata region payload for testing corruption detection")
	original := CRC32(data)

	corrupted := append([]byte(nil), data...)
	corrupted[10] ^= 0x01

	require.NotEqual(t, original, CRC32(corrupted))
}
