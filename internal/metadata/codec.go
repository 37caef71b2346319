package metadata

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

// Encode serializes the metadata root: an array of maps, one per
// record, each carrying exactly the five keys spec §4.3 names. Records
// are lowered to plain map[string]interface{} values by hand, rather
// than relying on msgpack's struct-tag-driven encoding, so the wire
// shape (map, not array, with these exact five keys) is explicit and
// does not depend on the library's struct-encoding default. Map keys
// are sorted during encoding (SetSortMapKeys) so that two calls with
// identical input always produce byte-identical output — Go map
// iteration order is randomized, and the metadata region's bytes feed
// directly into the CRC the trailer carries.
func Encode(records []Record) ([]byte, error) {
	wire := make([]map[string]interface{}, len(records))
	for i, r := range records {
		attrs := r.Attrs
		if attrs == nil {
			attrs = map[string]Value{}
		}
		wire[i] = map[string]interface{}{
			"n": r.Name,
			"o": r.Offset,
			"s": r.Size,
			"m": r.Mime,
			"a": ToInterface(attrs),
		}
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(wire); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindMessagePack, "encoding metadata array", err)
	}
	return buf.Bytes(), nil
}

// Decode parses the metadata region into validated Records. It decodes
// generically first (into []map[string]interface{}) so that a missing
// required key ("n", "o", or "s") can be reported distinctly from a
// semantic range violation, which Validate catches separately.
func Decode(data []byte) ([]Record, error) {
	var raw []map[string]interface{}
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, mfaferr.Wrap(mfaferr.KindMessagePack, "decoding metadata array", err)
	}

	records := make([]Record, len(raw))
	for i, rm := range raw {
		rec, err := parseRecord(rm)
		if err != nil {
			return nil, mfaferr.Wrap(mfaferr.KindMessagePack, "parsing metadata entry", err)
		}
		records[i] = rec
	}
	return records, nil
}

func parseRecord(rm map[string]interface{}) (Record, error) {
	name, ok := rm["n"].(string)
	if !ok {
		return Record{}, mfaferr.New(mfaferr.KindMessagePack, "entry missing required key \"n\"")
	}

	offset, err := toUint64(rm["o"])
	if err != nil {
		return Record{}, mfaferr.Wrap(mfaferr.KindMessagePack, "entry missing or malformed key \"o\"", err)
	}
	size, err := toUint64(rm["s"])
	if err != nil {
		return Record{}, mfaferr.Wrap(mfaferr.KindMessagePack, "entry missing or malformed key \"s\"", err)
	}

	mime, ok := rm["m"].(string)
	if !ok || mime == "" {
		mime = DefaultMimeType
	}

	attrs, err := ConvertAttributes(rm["a"], 1)
	if err != nil {
		return Record{}, err
	}

	// Unknown keys (anything beyond n/o/s/m/a) are silently ignored —
	// they were never copied out of rm.
	return Record{Name: name, Offset: offset, Size: size, Mime: mime, Attrs: attrs}, nil
}

func toUint64(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int64:
		if t < 0 {
			return 0, mfaferr.New(mfaferr.KindMessagePack, "negative value for unsigned field")
		}
		return uint64(t), nil
	case uint32:
		return uint64(t), nil
	case int32:
		if t < 0 {
			return 0, mfaferr.New(mfaferr.KindMessagePack, "negative value for unsigned field")
		}
		return uint64(t), nil
	case uint8:
		return uint64(t), nil
	case int8:
		if t < 0 {
			return 0, mfaferr.New(mfaferr.KindMessagePack, "negative value for unsigned field")
		}
		return uint64(t), nil
	case uint16:
		return uint64(t), nil
	case int16:
		if t < 0 {
			return 0, mfaferr.New(mfaferr.KindMessagePack, "negative value for unsigned field")
		}
		return uint64(t), nil
	case int:
		if t < 0 {
			return 0, mfaferr.New(mfaferr.KindMessagePack, "negative value for unsigned field")
		}
		return uint64(t), nil
	default:
		return 0, mfaferr.New(mfaferr.KindMessagePack, "value is not an integer")
	}
}
