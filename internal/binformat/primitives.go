// Package binformat implements the little-endian binary primitives, the
// CRC-32 checksum engine, and the fixed 64-byte header/trailer codec that
// bracket every archive image.
package binformat

import (
	"encoding/binary"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

// ReadUint16 reads a little-endian uint16 at off, failing with a
// RangeError if the read would cross buf's bounds.
func ReadUint16(buf []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(buf) {
		return 0, mfaferr.New(mfaferr.KindRange, "read uint16 out of bounds")
	}
	return binary.LittleEndian.Uint16(buf[off : off+2]), nil
}

// ReadUint32 reads a little-endian uint32 at off.
func ReadUint32(buf []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, mfaferr.New(mfaferr.KindRange, "read uint32 out of bounds")
	}
	return binary.LittleEndian.Uint32(buf[off : off+4]), nil
}

// ReadUint64 reads a little-endian uint64 at off.
func ReadUint64(buf []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, mfaferr.New(mfaferr.KindRange, "read uint64 out of bounds")
	}
	return binary.LittleEndian.Uint64(buf[off : off+8]), nil
}

// WriteUint16 writes v little-endian at off.
func WriteUint16(buf []byte, off int, v uint16) error {
	if off < 0 || off+2 > len(buf) {
		return mfaferr.New(mfaferr.KindRange, "write uint16 out of bounds")
	}
	binary.LittleEndian.PutUint16(buf[off:off+2], v)
	return nil
}

// WriteUint32 writes v little-endian at off.
func WriteUint32(buf []byte, off int, v uint32) error {
	if off < 0 || off+4 > len(buf) {
		return mfaferr.New(mfaferr.KindRange, "write uint32 out of bounds")
	}
	binary.LittleEndian.PutUint32(buf[off:off+4], v)
	return nil
}

// WriteUint64 writes v little-endian at off.
func WriteUint64(buf []byte, off int, v uint64) error {
	if off < 0 || off+8 > len(buf) {
		return mfaferr.New(mfaferr.KindRange, "write uint64 out of bounds")
	}
	binary.LittleEndian.PutUint64(buf[off:off+8], v)
	return nil
}

// ReadMagic reads n bytes at off and reports whether they equal want.
func ReadMagic(buf []byte, off int, want []byte) (bool, error) {
	if off < 0 || off+len(want) > len(buf) {
		return false, mfaferr.New(mfaferr.KindRange, "read magic out of bounds")
	}
	got := buf[off : off+len(want)]
	for i := range want {
		if got[i] != want[i] {
			return false, nil
		}
	}
	return true, nil
}

// WriteMagic writes magic verbatim at off.
func WriteMagic(buf []byte, off int, magic []byte) error {
	if off < 0 || off+len(magic) > len(buf) {
		return mfaferr.New(mfaferr.KindRange, "write magic out of bounds")
	}
	copy(buf[off:off+len(magic)], magic)
	return nil
}

// ZeroFill zeros n bytes at off, used for reserved regions on encode.
func ZeroFill(buf []byte, off, n int) error {
	if off < 0 || off+n > len(buf) {
		return mfaferr.New(mfaferr.KindRange, "zero-fill out of bounds")
	}
	clear(buf[off : off+n])
	return nil
}

// IsZero reports whether n bytes at off are all zero, used to apply the
// forward-compatibility tolerance policy (spec invariant I8) to reserved
// regions encountered on decode.
func IsZero(buf []byte, off, n int) (bool, error) {
	if off < 0 || off+n > len(buf) {
		return false, mfaferr.New(mfaferr.KindRange, "zero-check out of bounds")
	}
	for _, b := range buf[off : off+n] {
		if b != 0 {
			return false, nil
		}
	}
	return true, nil
}
