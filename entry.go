package mfaf

import "github.com/scigolib/mfaf/internal/metadata"

// DefaultMimeType is substituted for an Entry whose MimeType is empty.
const DefaultMimeType = metadata.DefaultMimeType

// Entry is a single named byte stream within an Archive, plus the
// metadata that travels with it. It is immutable once added: Archive
// has no operation that replaces or removes an entry.
type Entry struct {
	// Name is the entry's logical identifier, unique within its
	// Archive. Must be non-empty.
	Name string
	// Content is the entry's raw payload.
	Content []byte
	// MimeType defaults to "application/octet-stream" when empty.
	MimeType string
	// Attributes is a mapping from string key to scalar (string,
	// integer, float, bool, nil) or nested mapping, at most three
	// levels deep including the root.
	Attributes map[string]interface{}

	offset uint64
	size   uint64
}

// Offset reports the entry's byte offset within the content region.
// It is set only on entries of a loaded Archive; for an entry built by
// the caller it stays zero, including after Save.
func (e Entry) Offset() uint64 { return e.offset }

// Size reports the entry's content length in bytes as recorded in the
// loaded metadata. Like Offset, it is zero for an entry built by the
// caller.
func (e Entry) Size() uint64 { return e.size }
