package codec

// Entry is the codec-level view of an archive member: plain data, no
// façade behavior. The root package converts to and from its exported
// Entry type at the boundary.
type Entry struct {
	Name       string
	Content    []byte
	Mime       string
	Attributes map[string]interface{}
}
