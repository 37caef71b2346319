package binformat

import "github.com/scigolib/mfaf/internal/mfaferr"

// TrailerSize is the fixed size in bytes of the trailer region.
const TrailerSize = 64

// trailerMagic is the 8-byte sentinel at the start of the trailer.
var trailerMagic = []byte{0x45, 0x4E, 0x44, 0x4D, 0x41, 0x46, 0x00, 0x00}

// Trailer is a typed view over the archive's fixed 64-byte trailer.
type Trailer struct {
	MetadataEnd uint64
	Checksum    uint32
}

// ReadTrailer parses and validates a 64-byte trailer buffer.
func ReadTrailer(buf []byte, strict bool) (*Trailer, error) {
	if len(buf) < TrailerSize {
		return nil, mfaferr.New(mfaferr.KindSize, "trailer buffer shorter than 64 bytes")
	}

	ok, err := ReadMagic(buf, 0, trailerMagic)
	if err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindMagic, "reading trailer magic", err)
	}
	if !ok {
		return nil, mfaferr.New(mfaferr.KindMagic, "trailer magic mismatch")
	}

	tr := &Trailer{}
	if tr.MetadataEnd, err = ReadUint64(buf, 8); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading metadataEnd", err)
	}
	if tr.Checksum, err = ReadUint32(buf, 16); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindCrc, "reading checksum", err)
	}

	if strict {
		zero, err := IsZero(buf, 20, TrailerSize-20)
		if err != nil {
			return nil, mfaferr.Wrap(mfaferr.KindRange, "checking trailer reserved region", err)
		}
		if !zero {
			return nil, mfaferr.New(mfaferr.KindVersion, "non-zero reserved trailer bytes under strict mode")
		}
	}

	return tr, nil
}

// WriteTo serializes the trailer into a fresh 64-byte buffer.
func (tr *Trailer) WriteTo() ([]byte, error) {
	buf := make([]byte, TrailerSize)

	if err := WriteMagic(buf, 0, trailerMagic); err != nil {
		return nil, err
	}
	if err := WriteUint64(buf, 8, tr.MetadataEnd); err != nil {
		return nil, err
	}
	if err := WriteUint32(buf, 16, tr.Checksum); err != nil {
		return nil, err
	}
	if err := ZeroFill(buf, 20, TrailerSize-20); err != nil {
		return nil, err
	}

	return buf, nil
}
