package codec

import (
	"io"

	"github.com/scigolib/mfaf/internal/binformat"
	"github.com/scigolib/mfaf/internal/mfaferr"
	"github.com/scigolib/mfaf/internal/metadata"
	"github.com/scigolib/mfaf/internal/utils"
)

// Encode writes entries to w as a complete archive image in a single
// pass: header, concatenated content, metadata, trailer. Offsets are
// assigned in input order with no reordering, compaction, or
// deduplication; every field the trailer and header carry is computed
// before the first byte is written.
func Encode(w io.Writer, entries []Entry, flags uint16, opts Options) error {
	if len(entries) > int(^uint32(0)) {
		return mfaferr.New(mfaferr.KindRange, "entry count exceeds uint32 range")
	}

	records := make([]metadata.Record, len(entries))
	cursor := uint64(binformat.ContentOffset)
	seen := make(map[string]struct{}, len(entries))

	for i, e := range entries {
		if e.Name == "" {
			return mfaferr.New(mfaferr.KindRange, "entry name must not be empty")
		}
		if _, dup := seen[e.Name]; dup {
			return mfaferr.New(mfaferr.KindNameConflict, "duplicate entry name \""+e.Name+"\"")
		}
		seen[e.Name] = struct{}{}

		mime := e.Mime
		if mime == "" {
			mime = metadata.DefaultMimeType
		}

		attrs, err := metadata.ConvertAttributes(e.Attributes, 1)
		if err != nil {
			return mfaferr.Wrap(mfaferr.KindRange, "converting attributes for entry \""+e.Name+"\"", err)
		}

		size := uint64(len(e.Content))
		offset := cursor
		next, err := utils.SafeAdd(cursor, size)
		if err != nil {
			return mfaferr.Wrap(mfaferr.KindRange, "accumulating content offsets", err)
		}
		cursor = next

		records[i] = metadata.Record{
			Name:   e.Name,
			Offset: offset,
			Size:   size,
			Mime:   mime,
			Attrs:  attrs,
		}
	}

	metadataOffset := cursor

	m, err := metadata.Encode(records)
	if err != nil {
		return err
	}
	opts.log("metadata encoded", "bytes", len(m), "entries", len(records))

	checksum := binformat.CRC32(m)

	metadataEnd, err := utils.SafeAdd(metadataOffset, uint64(len(m)))
	if err != nil {
		return mfaferr.Wrap(mfaferr.KindRange, "computing metadataEnd", err)
	}
	totalSize, err := utils.SafeAdd(metadataEnd, binformat.TrailerSize)
	if err != nil {
		return mfaferr.Wrap(mfaferr.KindRange, "computing totalSize", err)
	}

	header := &binformat.Header{
		TotalSize:      totalSize,
		ContentOffset:  binformat.ContentOffset,
		MetadataOffset: metadataOffset,
		FileCount:      uint32(len(records)),
		Version:        binformat.CurrentVersion,
		Flags:          flags,
	}
	headerBytes, err := header.WriteTo()
	if err != nil {
		return mfaferr.Wrap(mfaferr.KindSize, "writing header", err)
	}
	if _, err := w.Write(headerBytes); err != nil {
		return mfaferr.Wrap(mfaferr.KindSize, "writing header to sink", err)
	}
	opts.log("header written", "totalSize", totalSize, "fileCount", len(records))

	for i, e := range entries {
		if len(e.Content) == 0 {
			continue
		}
		if _, err := w.Write(e.Content); err != nil {
			return mfaferr.Wrap(mfaferr.KindSize, "writing content for entry \""+records[i].Name+"\"", err)
		}
	}
	opts.log("content streamed", "bytes", cursor-binformat.ContentOffset)

	if _, err := w.Write(m); err != nil {
		return mfaferr.Wrap(mfaferr.KindMessagePack, "writing metadata to sink", err)
	}

	trailer := &binformat.Trailer{MetadataEnd: metadataEnd, Checksum: checksum}
	trailerBytes, err := trailer.WriteTo()
	if err != nil {
		return mfaferr.Wrap(mfaferr.KindSize, "writing trailer", err)
	}
	if _, err := w.Write(trailerBytes); err != nil {
		return mfaferr.Wrap(mfaferr.KindSize, "writing trailer to sink", err)
	}
	opts.log("trailer written", "metadataEnd", metadataEnd, "checksum", checksum)

	return nil
}
