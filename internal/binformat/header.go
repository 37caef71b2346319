package binformat

import (
	"github.com/scigolib/mfaf/internal/mfaferr"
)

const (
	// HeaderSize is the fixed size in bytes of the header region.
	HeaderSize = 64
	// ContentOffset is the fixed start of the content region (spec I1).
	ContentOffset = 64
	// CurrentVersion is the only version this implementation produces.
	CurrentVersion = 1
	// MaxSupportedVersion is the highest version this decoder accepts.
	MaxSupportedVersion = 1

	// FlagCompressed marks the content region as zstd-compressed. The
	// core validates this bit but does not implement the transform
	// (spec §1, §9).
	FlagCompressed uint16 = 1 << 0
	// FlagEncrypted marks the content and metadata regions as
	// ciphertext. Same scope note as FlagCompressed.
	FlagEncrypted uint16 = 1 << 1
	// knownFlags is the mask of flag bits this implementation
	// recognizes; anything outside it is a reserved/unknown bit.
	knownFlags = FlagCompressed | FlagEncrypted
)

// headerMagic is the 8-byte sentinel at the start of every archive.
var headerMagic = []byte{0x4D, 0x41, 0x46, 0x46, 0x49, 0x4C, 0x45, 0x01}

// Header is a typed view over the archive's fixed 64-byte header.
type Header struct {
	TotalSize      uint64
	ContentOffset  uint64
	MetadataOffset uint64
	FileCount      uint32
	Version        uint16
	Flags          uint16
}

// ReadHeader parses and validates a 64-byte header buffer. strict
// rejects unknown reserved flag bits and non-zero reserved bytes instead
// of tolerating them.
func ReadHeader(buf []byte, strict bool) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, mfaferr.New(mfaferr.KindSize, "header buffer shorter than 64 bytes")
	}

	ok, err := ReadMagic(buf, 0, headerMagic)
	if err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindMagic, "reading header magic", err)
	}
	if !ok {
		return nil, mfaferr.New(mfaferr.KindMagic, "header magic mismatch")
	}

	h := &Header{}
	if h.TotalSize, err = ReadUint64(buf, 8); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading totalSize", err)
	}
	if h.ContentOffset, err = ReadUint64(buf, 16); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading contentOffset", err)
	}
	if h.ContentOffset != ContentOffset {
		return nil, mfaferr.New(mfaferr.KindSize, "contentOffset is not 64")
	}
	if h.MetadataOffset, err = ReadUint64(buf, 24); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading metadataOffset", err)
	}
	if h.FileCount, err = ReadUint32(buf, 32); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading fileCount", err)
	}
	version, err := ReadUint16(buf, 36)
	if err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindVersion, "reading version", err)
	}
	h.Version = version
	if h.Version > MaxSupportedVersion {
		return nil, mfaferr.New(mfaferr.KindVersion, "archive version exceeds implementation maximum")
	}
	flags, err := ReadUint16(buf, 38)
	if err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindVersion, "reading flags", err)
	}
	h.Flags = flags

	if strict && h.Flags&^knownFlags != 0 {
		return nil, mfaferr.New(mfaferr.KindVersion, "reserved flag bits set under strict mode")
	}

	if strict {
		zero, err := IsZero(buf, 40, HeaderSize-40)
		if err != nil {
			return nil, mfaferr.Wrap(mfaferr.KindRange, "checking header reserved region", err)
		}
		if !zero {
			return nil, mfaferr.New(mfaferr.KindVersion, "non-zero reserved header bytes under strict mode")
		}
	}

	return h, nil
}

// UnknownFlags returns the subset of Flags outside the bits this
// implementation recognizes (bit 0: compressed, bit 1: encrypted).
func (h *Header) UnknownFlags() uint16 {
	return h.Flags &^ knownFlags
}

// WriteTo serializes the header into a fresh 64-byte buffer.
func (h *Header) WriteTo() ([]byte, error) {
	buf := make([]byte, HeaderSize)

	if err := WriteMagic(buf, 0, headerMagic); err != nil {
		return nil, err
	}
	if err := WriteUint64(buf, 8, h.TotalSize); err != nil {
		return nil, err
	}
	if err := WriteUint64(buf, 16, ContentOffset); err != nil {
		return nil, err
	}
	if err := WriteUint64(buf, 24, h.MetadataOffset); err != nil {
		return nil, err
	}
	if err := WriteUint32(buf, 32, h.FileCount); err != nil {
		return nil, err
	}
	if err := WriteUint16(buf, 36, CurrentVersion); err != nil {
		return nil, err
	}
	if err := WriteUint16(buf, 38, h.Flags); err != nil {
		return nil, err
	}
	if err := ZeroFill(buf, 40, HeaderSize-40); err != nil {
		return nil, err
	}

	return buf, nil
}
