package chunk

// Type is a 4-character PNG chunk type tag, modeled as a closed tagged
// variant: the recognized constants below compare by value, and
// Recognized reports whether a type read off the wire is one of them.
type Type struct {
	slug string
}

func (t Type) String() string { return t.slug }

// IsCritical reports whether the type's first letter is uppercase, the
// PNG convention for "a decoder that doesn't understand this chunk must
// fail" as opposed to an ancillary chunk that can be skipped.
func (t Type) IsCritical() bool {
	c := t.slug[0]
	return c >= 'A' && c <= 'Z'
}

// FromBytes builds a Type from the 4 raw type bytes read off the wire,
// without validating that it is one of the recognized constants.
func FromBytes(b [4]byte) Type { return Type{string(b[:])} }

var (
	IHDR = Type{"IHDR"}
	PLTE = Type{"PLTE"}
	IDAT = Type{"IDAT"}
	IEND = Type{"IEND"}
	TRNS = Type{"tRNS"}
	PHYS = Type{"pHYs"}
	TEXT = Type{"tEXt"}
)

// Recognized is the closed set of chunk types this decoder has a
// handler for. Anything else falls through to the ancillary-skip /
// critical-fail rule in IsCritical.
var Recognized = map[Type]bool{
	IHDR: true, PLTE: true, IDAT: true, IEND: true,
	TRNS: true, PHYS: true, TEXT: true,
}
