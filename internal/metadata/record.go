package metadata

// DefaultMimeType is substituted when a decoded record omits "m" (spec
// §4.3 default table).
const DefaultMimeType = "application/octet-stream"

// Record is the validated, typed per-entry descriptor decoded from (or
// about to be encoded into) one element of the metadata array. The
// msgpack tags are the short wire keys spec §4.3 mandates; the canonical
// encoder always emits all five.
type Record struct {
	Name   string           `msgpack:"n"`
	Offset uint64           `msgpack:"o"`
	Size   uint64           `msgpack:"s"`
	Mime   string           `msgpack:"m"`
	Attrs  map[string]Value `msgpack:"a"`
}
