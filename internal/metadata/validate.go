package metadata

import (
	"fmt"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

// Validate enforces the semantic rules spec §4.5 places on a decoded
// record set, given metadataOffset, the absolute file offset at which
// the content region ends. Structural and type-level failures are
// handled earlier, in parseRecord; this pass only rejects records that
// parse cleanly but describe an impossible or overlapping layout.
func Validate(records []Record, metadataOffset uint64) error {
	seenNames := make(map[string]struct{}, len(records))

	type span struct {
		start, end uint64 // end is exclusive
		name       string
	}
	spans := make([]span, 0, len(records))

	for _, r := range records {
		if r.Name == "" {
			return mfaferr.New(mfaferr.KindRange, "entry name must not be empty")
		}
		if _, dup := seenNames[r.Name]; dup {
			return mfaferr.New(mfaferr.KindRange, fmt.Sprintf("duplicate entry name %q", r.Name))
		}
		seenNames[r.Name] = struct{}{}

		end := r.Offset + r.Size
		if end < r.Offset {
			return mfaferr.New(mfaferr.KindRange, fmt.Sprintf("entry %q offset+size overflows", r.Name))
		}
		if r.Offset < 64 {
			return mfaferr.New(mfaferr.KindRange, fmt.Sprintf("entry %q offset precedes content region", r.Name))
		}
		if end > metadataOffset {
			return mfaferr.New(mfaferr.KindRange, fmt.Sprintf("entry %q extends past content region", r.Name))
		}

		spans = append(spans, span{start: r.Offset, end: end, name: r.Name})
	}

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			if a.start < b.end && b.start < a.end {
				return mfaferr.New(mfaferr.KindRange, fmt.Sprintf("entries %q and %q overlap", a.name, b.name))
			}
		}
	}

	return nil
}
