package codec

import (
	"io"

	"github.com/scigolib/mfaf/internal/binformat"
	"github.com/scigolib/mfaf/internal/mfaferr"
	"github.com/scigolib/mfaf/internal/metadata"
	"github.com/scigolib/mfaf/internal/utils"
)

// Decoded is a validated view over an archive image: the parsed header
// and trailer, the typed records in file order, and random access over
// the content region. It is read-only; nothing here mutates the
// underlying source.
type Decoded struct {
	Header  *binformat.Header
	Trailer *binformat.Trailer
	Records []metadata.Record

	source io.ReaderAt
}

// Content returns the raw bytes for the half-open range [offset,
// offset+size), read on demand from the underlying source. Safe to
// call repeatedly; it never mutates the source or caches the result.
func (d *Decoded) Content(offset, size uint64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, size)
	n, err := d.source.ReadAt(buf, int64(offset))
	if err != nil && !(err == io.EOF && uint64(n) == size) {
		return nil, mfaferr.Wrap(mfaferr.KindRange, "reading content region", err)
	}
	return buf, nil
}

type bytesReaderAt struct {
	data []byte
}

func (b bytesReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.data)) {
		return 0, mfaferr.New(mfaferr.KindRange, "read offset out of bounds")
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// DecodeBytes validates and parses an archive image held entirely in
// memory (eager mode).
func DecodeBytes(data []byte, opts Options) (*Decoded, error) {
	return decode(bytesReaderAt{data}, int64(len(data)), opts)
}

// Decode validates and parses an archive image behind a random-access
// source of known total length (lazy mode): content ranges are read on
// demand via Decoded.Content rather than materialized up front.
func Decode(r io.ReaderAt, size int64, opts Options) (*Decoded, error) {
	return decode(r, size, opts)
}

func decode(r io.ReaderAt, size int64, opts Options) (*Decoded, error) {
	if size < int64(binformat.HeaderSize+binformat.TrailerSize) {
		return nil, mfaferr.New(mfaferr.KindSize, "archive shorter than header+trailer")
	}
	L := uint64(size)

	trailerBuf := utils.GetBuffer(binformat.TrailerSize)
	defer utils.ReleaseBuffer(trailerBuf)
	if _, err := r.ReadAt(trailerBuf, size-int64(binformat.TrailerSize)); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading trailer", err)
	}
	trailer, err := binformat.ReadTrailer(trailerBuf, opts.Strict)
	if err != nil {
		return nil, err
	}
	opts.log("trailer parsed", "metadataEnd", trailer.MetadataEnd, "checksum", trailer.Checksum)

	headerBuf := utils.GetBuffer(binformat.HeaderSize)
	defer utils.ReleaseBuffer(headerBuf)
	if _, err := r.ReadAt(headerBuf, 0); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "reading header", err)
	}
	header, err := binformat.ReadHeader(headerBuf, opts.Strict)
	if err != nil {
		return nil, err
	}
	opts.log("header parsed", "totalSize", header.TotalSize, "fileCount", header.FileCount)
	if unknown := header.UnknownFlags(); unknown != 0 {
		opts.log("warning: reserved flag bits set", "unknownFlags", unknown)
	}

	if header.TotalSize != L {
		return nil, mfaferr.New(mfaferr.KindSize, "totalSize does not match actual archive length")
	}
	metadataEndPlusTrailer, err := utils.SafeAdd(trailer.MetadataEnd, binformat.TrailerSize)
	if err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindSize, "computing metadataEnd+trailer", err)
	}
	if metadataEndPlusTrailer != L {
		return nil, mfaferr.New(mfaferr.KindSize, "metadataEnd+trailer does not match archive length")
	}
	if !(binformat.ContentOffset <= header.MetadataOffset &&
		header.MetadataOffset <= trailer.MetadataEnd &&
		trailer.MetadataEnd <= L-binformat.TrailerSize) {
		return nil, mfaferr.New(mfaferr.KindSize, "metadataOffset/metadataEnd ordering violates archive bounds")
	}

	if err := utils.ValidateCount(header.FileCount, opts.MaxEntries, "fileCount"); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindRange, "validating fileCount", err)
	}

	metadataLen := trailer.MetadataEnd - header.MetadataOffset
	if err := utils.ValidateBufferSize(metadataLen, opts.MaxMetadataBytes, "metadataLen"); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindRange, "validating metadata region size", err)
	}
	m := make([]byte, metadataLen)
	if metadataLen > 0 {
		if _, err := r.ReadAt(m, int64(header.MetadataOffset)); err != nil {
			return nil, mfaferr.Wrap(mfaferr.KindMessagePack, "reading metadata region", err)
		}
	}

	checksum := binformat.CRC32(m)
	if checksum != trailer.Checksum {
		return nil, mfaferr.New(mfaferr.KindCrc, "metadata checksum mismatch")
	}
	opts.log("checksum verified", "bytes", len(m))

	records, err := metadata.Decode(m)
	if err != nil {
		return nil, err
	}
	if uint32(len(records)) != header.FileCount {
		return nil, mfaferr.New(mfaferr.KindSize, "decoded entry count does not match fileCount")
	}

	if err := metadata.Validate(records, header.MetadataOffset); err != nil {
		return nil, err
	}

	return &Decoded{
		Header:  header,
		Trailer: trailer,
		Records: records,
		source:  r,
	}, nil
}
