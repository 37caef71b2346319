package binformat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

func validHeader() *Header {
	return &Header{
		TotalSize:      200,
		ContentOffset:  ContentOffset,
		MetadataOffset: 80,
		FileCount:      2,
		Version:        CurrentVersion,
		Flags:          0,
	}
}

func TestHeader_WriteThenRead_RoundTrips(t *testing.T) {
	h := validHeader()
	buf, err := h.WriteTo()
	require.NoError(t, err)
	require.Len(t, buf, HeaderSize)

	got, err := ReadHeader(buf, false)
	require.NoError(t, err)
	require.Equal(t, h.TotalSize, got.TotalSize)
	require.Equal(t, uint64(ContentOffset), got.ContentOffset)
	require.Equal(t, h.MetadataOffset, got.MetadataOffset)
	require.Equal(t, h.FileCount, got.FileCount)
	require.Equal(t, uint16(CurrentVersion), got.Version)
	require.Equal(t, h.Flags, got.Flags)
}

func TestHeader_MagicBytes(t *testing.T) {
	buf, err := validHeader().WriteTo()
	require.NoError(t, err)
	require.Equal(t, []byte{0x4D, 0x41, 0x46, 0x46, 0x49, 0x4C, 0x45, 0x01}, buf[0:8])
}

func TestHeader_ReservedBytesAreZero(t *testing.T) {
	buf, err := validHeader().WriteTo()
	require.NoError(t, err)

	zero, err := IsZero(buf, 40, HeaderSize-40)
	require.NoError(t, err)
	require.True(t, zero)
}

func TestReadHeader_RejectsBadMagic(t *testing.T) {
	buf, err := validHeader().WriteTo()
	require.NoError(t, err)
	buf[0] = 0x00

	_, err = ReadHeader(buf, false)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindMagic, mfaferr.KindOf(err))
}

func TestReadHeader_RejectsBadContentOffset(t *testing.T) {
	h := validHeader()
	buf, err := h.WriteTo()
	require.NoError(t, err)
	require.NoError(t, WriteUint64(buf, 16, 65))

	_, err = ReadHeader(buf, false)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindSize, mfaferr.KindOf(err))
}

func TestReadHeader_RejectsOversizedVersion(t *testing.T) {
	buf, err := validHeader().WriteTo()
	require.NoError(t, err)
	require.NoError(t, WriteUint16(buf, 36, 2))

	_, err = ReadHeader(buf, false)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindVersion, mfaferr.KindOf(err))
}

func TestReadHeader_TooShort(t *testing.T) {
	_, err := ReadHeader(make([]byte, 63), false)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindSize, mfaferr.KindOf(err))
}

func TestReadHeader_PermissiveModeToleratesUnknownFlagBits(t *testing.T) {
	h := validHeader()
	h.Flags = 1 << 5
	buf, err := h.WriteTo()
	require.NoError(t, err)
	require.NoError(t, WriteUint16(buf, 38, h.Flags))

	got, err := ReadHeader(buf, false)
	require.NoError(t, err)
	require.Equal(t, uint16(1<<5), got.UnknownFlags())
}

func TestReadHeader_StrictModeRejectsUnknownFlagBits(t *testing.T) {
	h := validHeader()
	buf, err := h.WriteTo()
	require.NoError(t, err)
	require.NoError(t, WriteUint16(buf, 38, 1<<5))

	_, err = ReadHeader(buf, true)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindVersion, mfaferr.KindOf(err))
}

func TestReadHeader_StrictModeRejectsNonZeroReserved(t *testing.T) {
	buf, err := validHeader().WriteTo()
	require.NoError(t, err)
	buf[50] = 0x01

	_, err = ReadHeader(buf, true)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindVersion, mfaferr.KindOf(err))

	_, err = ReadHeader(buf, false)
	require.NoError(t, err)
}

func TestHeader_UnknownFlags_KnownBitsOnly(t *testing.T) {
	h := validHeader()
	h.Flags = FlagCompressed | FlagEncrypted
	require.Equal(t, uint16(0), h.UnknownFlags())
}
