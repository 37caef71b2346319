// Package codec implements the encoder and decoder that assemble and
// parse an archive image: header, content region, metadata region, and
// trailer, in that order.
package codec

import "go.uber.org/zap"

// DefaultMaxEntries bounds the fileCount a decoder will trust before
// allocating a records slice, guarding against a malformed count field
// driving a pathological allocation.
const DefaultMaxEntries = 1 << 20

// DefaultMaxMetadataBytes bounds the metadata region size a decoder will
// trust before allocating a buffer for it, guarding against a malformed
// metadataOffset/metadataEnd pair driving a pathological allocation.
const DefaultMaxMetadataBytes = 64 << 20

// Options controls encode/decode behavior. The zero value is a usable,
// permissive default except for MaxEntries and MaxMetadataBytes, which
// callers should leave at the constructor-provided default rather than
// zero.
type Options struct {
	// Strict rejects unknown reserved header flag bits and non-zero
	// reserved header/trailer bytes instead of tolerating them.
	Strict bool
	// Logger receives Debug-level structured log lines at each region
	// boundary. Nil disables logging entirely; there is no default
	// logger and no global logging state.
	Logger *zap.SugaredLogger
	// MaxEntries caps the fileCount a decoder will trust.
	MaxEntries uint32
	// MaxMetadataBytes caps the metadata region size a decoder will
	// trust.
	MaxMetadataBytes uint64
}

// DefaultOptions returns the Options a caller gets when none are
// supplied explicitly.
func DefaultOptions() Options {
	return Options{MaxEntries: DefaultMaxEntries, MaxMetadataBytes: DefaultMaxMetadataBytes}
}

func (o Options) log(msg string, kv ...interface{}) {
	if o.Logger == nil {
		return
	}
	o.Logger.Debugw(msg, kv...)
}
