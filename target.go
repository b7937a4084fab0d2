package dbuscodegen

// A Target supplies the textual conventions of the output language:
// how each wire type is named, how it's passed as a read-only or
// pointer-indirected value, and what token identifies its wire type
// to the runtime's open_container/append_basic intrinsics.
//
// Target is the one collaborator this package assumes rather than
// builds: a single generation call is scoped to one target syntax,
// but the core deliberately does not bind itself to any one output
// language at the type-naming layer. [CTarget] is the only
// implementation provided here, emitting C-flavored type text.
type Target interface {
	// TypeOf returns the output-language type used to hold a value of
	// the basic, struct, or dict-entry type at cur. TypeOf is never
	// called with a cursor positioned at an array: the array generator
	// derives its own input type by rewriting the recursively
	// generated element type, rather than asking the Target for an
	// array type directly.
	TypeOf(cur Cursor) string

	// TypeConstant returns the wire-protocol type-constant token for
	// tag: the second argument to append_basic for a basic type, or
	// the container-type argument to open_container for a struct or
	// dict entry.
	TypeConstant(tag Tag) string

	// Pointer wraps t with one additional level of pointer
	// indirection.
	Pointer(t string) string

	// Const marks t as a promise that the generated code will not
	// mutate the referenced value. Const is idempotent: applying it
	// to a type it has already wrapped returns that type unchanged,
	// so repeated wrapping across nested array levels adds exactly
	// one pointer per level without re-stacking redundant qualifiers.
	Const(t string) string
}
