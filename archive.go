// Package mfaf implements the Multi-File Archive Format: a single-file
// binary container that aggregates named byte streams with per-entry
// metadata, random access, integrity verification via CRC-32, and
// forward-compatible MessagePack metadata.
package mfaf

import (
	"io"

	"github.com/scigolib/mfaf/internal/codec"
	"github.com/scigolib/mfaf/internal/mfaferr"
	"github.com/scigolib/mfaf/internal/metadata"
)

// Archive is an ordered collection of Entries. A freshly constructed
// Archive is build-only; Add appends entries in the order they should
// be serialized. A loaded Archive's entries reflect exactly what Load
// parsed and cannot be changed in place; Save on a loaded Archive writes
// them back out, reading any content not held in memory from the source.
type Archive struct {
	config  archiveConfig
	entries []Entry
	byName  map[string]int
	decoded *codec.Decoded
}

// New returns an empty Archive ready for Add and Save.
func New(opts ...Option) *Archive {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Archive{
		config: cfg,
		byName: make(map[string]int),
	}
}

// Add appends entry to the archive. It rejects an empty name with
// RangeError and a name already present in the archive with NameConflict.
func (a *Archive) Add(entry Entry) error {
	if entry.Name == "" {
		return mfaferr.New(mfaferr.KindRange, "entry name must not be empty")
	}
	if _, dup := a.byName[entry.Name]; dup {
		return mfaferr.New(mfaferr.KindNameConflict, "duplicate entry name \""+entry.Name+"\"")
	}
	a.byName[entry.Name] = len(a.entries)
	a.entries = append(a.entries, entry)
	return nil
}

// Names returns entry names in archive (serialization) order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.entries))
	for i, e := range a.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the named entry and true, or a zero Entry and false if
// no such entry exists. For a loaded archive in lazy mode, the
// returned Entry's Content is fetched eagerly; use Extract to stream
// without materializing it on the Entry itself.
func (a *Archive) Get(name string) (Entry, bool) {
	idx, ok := a.byName[name]
	if !ok {
		return Entry{}, false
	}
	e := a.entries[idx]
	if e.Content == nil && a.decoded != nil {
		content, err := a.decoded.Content(e.offset, e.size)
		if err != nil {
			return Entry{}, false
		}
		e.Content = content
	}
	return e, true
}

// Extract writes the named entry's content to w. It returns an error
// if the entry does not exist or the underlying read fails.
func (a *Archive) Extract(name string, w io.Writer) error {
	idx, ok := a.byName[name]
	if !ok {
		return mfaferr.New(mfaferr.KindRange, "no such entry \""+name+"\"")
	}
	e := a.entries[idx]
	content := e.Content
	if content == nil && a.decoded != nil {
		c, err := a.decoded.Content(e.offset, e.size)
		if err != nil {
			return mfaferr.Wrap(mfaferr.KindRange, "extracting entry \""+name+"\"", err)
		}
		content = c
	}
	if _, err := w.Write(content); err != nil {
		return mfaferr.Wrap(mfaferr.KindSize, "writing extracted content for \""+name+"\"", err)
	}
	return nil
}

// Save writes the archive as a complete image to w, in the order
// entries were added. Saving is deterministic: identical entries in
// identical order always produce byte-identical output.
func (a *Archive) Save(w io.Writer) error {
	codecEntries := make([]codec.Entry, len(a.entries))
	for i, e := range a.entries {
		content := e.Content
		if content == nil && a.decoded != nil {
			c, err := a.decoded.Content(e.offset, e.size)
			if err != nil {
				return mfaferr.Wrap(mfaferr.KindRange, "reading content for entry \""+e.Name+"\" during save", err)
			}
			content = c
		}
		codecEntries[i] = codec.Entry{
			Name:       e.Name,
			Content:    content,
			Mime:       e.MimeType,
			Attributes: e.Attributes,
		}
	}
	return codec.Encode(w, codecEntries, 0, a.config.toCodecOptions())
}

// LoadBytes parses an archive image held entirely in memory (eager
// mode): Get and Extract never touch the source again.
func LoadBytes(data []byte, opts ...Option) (*Archive, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	decoded, err := codec.DecodeBytes(data, cfg.toCodecOptions())
	if err != nil {
		return nil, err
	}
	return fromDecoded(cfg, decoded, true), nil
}

// Load parses an archive image behind a random-access source of known
// total length (lazy mode): entry content is read on demand from
// source via Get/Extract/Save rather than materialized up front.
func Load(source io.ReaderAt, size int64, opts ...Option) (*Archive, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	decoded, err := codec.Decode(source, size, cfg.toCodecOptions())
	if err != nil {
		return nil, err
	}
	return fromDecoded(cfg, decoded, false), nil
}

func fromDecoded(cfg archiveConfig, decoded *codec.Decoded, eager bool) *Archive {
	a := &Archive{
		config:  cfg,
		byName:  make(map[string]int, len(decoded.Records)),
		decoded: decoded,
	}
	a.entries = make([]Entry, len(decoded.Records))
	for i, rec := range decoded.Records {
		e := Entry{
			Name:       rec.Name,
			MimeType:   rec.Mime,
			Attributes: metadata.ToInterface(rec.Attrs),
			offset:     rec.Offset,
			size:       rec.Size,
		}
		if eager {
			// Content is read once here and cached; an eager archive
			// never needs to touch the source again.
			content, err := decoded.Content(rec.Offset, rec.Size)
			if err == nil {
				e.Content = content
			}
		}
		a.entries[i] = e
		a.byName[rec.Name] = i
	}
	return a
}
