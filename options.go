package mfaf

import (
	"go.uber.org/zap"

	"github.com/scigolib/mfaf/internal/codec"
)

// Option configures an Archive at construction time.
type Option func(*archiveConfig)

type archiveConfig struct {
	strict           bool
	logger           *zap.SugaredLogger
	maxEntries       uint32
	maxMetadataBytes uint64
}

func defaultConfig() archiveConfig {
	return archiveConfig{
		maxEntries:       codec.DefaultMaxEntries,
		maxMetadataBytes: codec.DefaultMaxMetadataBytes,
	}
}

// WithStrict rejects unknown reserved header flag bits and non-zero
// reserved header/trailer bytes on Load instead of tolerating them.
func WithStrict(strict bool) Option {
	return func(c *archiveConfig) { c.strict = strict }
}

// WithLogger attaches a structured logger that receives Debug-level
// lines at each region boundary during Save and Load. A nil logger (the
// default) disables logging entirely.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *archiveConfig) { c.logger = logger }
}

// WithMaxEntries bounds the fileCount a Load call will trust before
// allocating a records slice, guarding against a malformed count field.
func WithMaxEntries(max uint32) Option {
	return func(c *archiveConfig) { c.maxEntries = max }
}

// WithMaxMetadataBytes bounds the metadata region size a Load call will
// trust before allocating a buffer for it, guarding against a malformed
// metadataOffset/metadataEnd pair.
func WithMaxMetadataBytes(max uint64) Option {
	return func(c *archiveConfig) { c.maxMetadataBytes = max }
}

func (c archiveConfig) toCodecOptions() codec.Options {
	return codec.Options{
		Strict:           c.strict,
		Logger:           c.logger,
		MaxEntries:       c.maxEntries,
		MaxMetadataBytes: c.maxMetadataBytes,
	}
}
