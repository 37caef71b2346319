package binformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

func TestReadWriteUint16(t *testing.T) {
	buf := make([]byte, 8)
	require.NoError(t, WriteUint16(buf, 2, 0xBEEF))

	got, err := ReadUint16(buf, 2)
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), got)
}

func TestReadWriteUint32(t *testing.T) {
	buf := make([]byte, 8)
	require.NoError(t, WriteUint32(buf, 0, 0xDEADBEEF))

	got, err := ReadUint32(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), got)
}

func TestReadWriteUint64(t *testing.T) {
	buf := make([]byte, 16)
	require.NoError(t, WriteUint64(buf, 4, 0x0102030405060708))

	got, err := ReadUint64(buf, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), got)
}

func TestRead_OutOfBounds(t *testing.T) {
	buf := make([]byte, 4)

	_, err := ReadUint16(buf, 3)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))

	_, err = ReadUint32(buf, 1)
	require.Error(t, err)

	_, err = ReadUint64(buf, 0)
	require.Error(t, err)

	_, err = ReadUint16(buf, -1)
	require.Error(t, err)
}

func TestWrite_OutOfBounds(t *testing.T) {
	buf := make([]byte, 4)

	require.Error(t, WriteUint16(buf, 3, 1))
	require.Error(t, WriteUint32(buf, 1, 1))
	require.Error(t, WriteUint64(buf, 0, 1))
}

func TestReadWriteMagic(t *testing.T) {
	buf := make([]byte, 8)
	magic := []byte{0x4D, 0x41, 0x46, 0x46}

	require.NoError(t, WriteMagic(buf, 0, magic))

	ok, err := ReadMagic(buf, 0, magic)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ReadMagic(buf, 0, []byte{0x00, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ReadMagic(buf, 6, magic)
	require.Error(t, err)
}

func TestZeroFillAndIsZero(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}

	require.NoError(t, ZeroFill(buf, 1, 3))
	require.Equal(t, []byte{1, 0, 0, 0, 5, 6}, buf)

	zero, err := IsZero(buf, 1, 3)
	require.NoError(t, err)
	require.True(t, zero)

	zero, err = IsZero(buf, 0, 3)
	require.NoError(t, err)
	require.False(t, zero)

	_, err = IsZero(buf, 4, 10)
	require.Error(t, err)
	var fe *mfaferr.Error
	require.True(t, errors.As(err, &fe))
	require.Equal(t, mfaferr.KindRange, fe.Kind)
}
